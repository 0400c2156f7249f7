package models

import "time"

// Reminder schedules a notification about a task. TaskID is not checked against the
// tasks table. Notified is stored as an integer flag.
type Reminder struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"userId"`
	TaskID       int64     `db:"task_id" json:"taskId"`
	ReminderTime time.Time `db:"reminder_time" json:"reminderTime"`
	Notified     bool      `db:"notified" json:"notified"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
