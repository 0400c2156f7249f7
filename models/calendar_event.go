package models

import (
	"regexp"
	"time"
)

// DefaultEventColor is applied when an event is created without a color.
const DefaultEventColor = "#3b82f6"

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether c is a #rrggbb hex color.
func ValidColor(c string) bool {
	return hexColorRe.MatchString(c)
}

// CalendarEvent is a dated entry on a user's calendar, optionally linked to a task.
type CalendarEvent struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"userId"`
	TaskID      *int64     `db:"task_id" json:"taskId,omitempty"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	StartDate   time.Time  `db:"start_date" json:"startDate"`
	EndDate     *time.Time `db:"end_date" json:"endDate,omitempty"`
	Color       string     `db:"color" json:"color"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
