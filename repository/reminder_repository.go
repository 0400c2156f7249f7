package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"taskPlanner/models"
)

// ReminderRepository stores reminders. Clients can only create, list and delete them;
// the notified flag is written by the dispatcher.
type ReminderRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewReminderRepository(db *sql.DB) *ReminderRepository {
	return &ReminderRepository{db: db, now: utcNow}
}

// NewReminder holds the fields of a reminder to insert.
type NewReminder struct {
	TaskID       int64
	ReminderTime time.Time
}

const reminderColumns = `id, user_id, task_id, reminder_time, notified, created_at`

// ListByUser returns the user's reminders ordered by reminder time.
func (r *ReminderRepository) ListByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	if r.db == nil {
		return []models.Reminder{}, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE user_id = ? ORDER BY reminder_time ASC, id ASC`, userID)
	if err != nil {
		return []models.Reminder{}, storeError("list reminders", err)
	}
	defer rows.Close()
	return scanReminderRows(rows)
}

func (r *ReminderRepository) GetByID(ctx context.Context, userID, id int64) (*models.Reminder, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rem, err := scanReminder(r.db.QueryRowContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = ? AND user_id = ?`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storeError("get reminder", err)
	}
	return rem, nil
}

// Create inserts a reminder owned by userID. The referenced task is not checked.
func (r *ReminderRepository) Create(ctx context.Context, userID int64, in NewReminder) (*models.Reminder, error) {
	if in.ReminderTime.IsZero() {
		return nil, invalid("reminder time is required")
	}
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `INSERT INTO reminders (user_id, task_id, reminder_time, notified, created_at) VALUES (?,?,?,0,?)`,
		userID, in.TaskID, formatTime(in.ReminderTime), formatTime(r.now()))
	if err != nil {
		return nil, storeError("create reminder", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeError("create reminder", err)
	}
	return r.GetByID(ctx, userID, id)
}

// Delete removes the user's reminder.
func (r *ReminderRepository) Delete(ctx context.Context, userID, id int64) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return storeError("delete reminder", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DueCursor marks the last reminder seen while paging through due reminders. The zero
// value starts from the oldest.
type DueCursor struct {
	ReminderTime time.Time
	ID           int64
}

// After returns the cursor positioned just past r.
func After(r models.Reminder) DueCursor {
	return DueCursor{ReminderTime: r.ReminderTime, ID: r.ID}
}

// ListDue returns up to limit unnotified reminders, across all users, whose time is at or
// before now and which sort after the cursor, oldest first.
func (r *ReminderRepository) ListDue(ctx context.Context, now time.Time, after DueCursor, limit int) ([]models.Reminder, error) {
	if limit <= 0 {
		limit = 100
	}
	if r.db == nil {
		return []models.Reminder{}, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	at := formatTime(after.ReminderTime)
	rows, err := r.db.QueryContext(ctx, `SELECT `+reminderColumns+` FROM reminders
		WHERE notified = 0 AND reminder_time <= ? AND (reminder_time > ? OR (reminder_time = ? AND id > ?))
		ORDER BY reminder_time ASC, id ASC LIMIT ?`,
		formatTime(now), at, at, after.ID, limit)
	if err != nil {
		return []models.Reminder{}, storeError("list due reminders", err)
	}
	defer rows.Close()
	return scanReminderRows(rows)
}

// MarkNotified sets the notified flag. It reports false when the reminder was already
// notified or no longer exists.
func (r *ReminderRepository) MarkNotified(ctx context.Context, id int64) (bool, error) {
	if r.db == nil {
		return false, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE reminders SET notified = 1 WHERE id = ? AND notified = 0`, id)
	if err != nil {
		return false, storeError("mark reminder notified", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func scanReminderRows(rows *sql.Rows) ([]models.Reminder, error) {
	out := []models.Reminder{}
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return []models.Reminder{}, storeError("scan reminder", err)
		}
		out = append(out, *rem)
	}
	if err := rows.Err(); err != nil {
		return []models.Reminder{}, storeError("list reminders", err)
	}
	return out, nil
}

func scanReminder(s rowScanner) (*models.Reminder, error) {
	var (
		rem                     models.Reminder
		reminderTime, createdAt string
		notified                int
	)
	if err := s.Scan(&rem.ID, &rem.UserID, &rem.TaskID, &reminderTime, &notified, &createdAt); err != nil {
		return nil, err
	}
	rem.Notified = notified != 0
	var err error
	if rem.ReminderTime, err = parseTime(reminderTime); err != nil {
		return nil, err
	}
	if rem.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &rem, nil
}
