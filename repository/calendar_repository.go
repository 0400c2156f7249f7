package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"taskPlanner/models"
)

// CalendarRepository is the owner-scoped store for calendar events.
type CalendarRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewCalendarRepository(db *sql.DB) *CalendarRepository {
	return &CalendarRepository{db: db, now: utcNow}
}

// NewEvent holds the fields of an event to insert. Color is stored as given.
type NewEvent struct {
	TaskID      *int64
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	Color       string
}

// EventPatch holds a partial update. Nil fields are left untouched; the linked task
// cannot be changed after creation.
type EventPatch struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Color       *string
}

const eventColumns = `id, user_id, task_id, title, description, start_date, end_date, color, created_at, updated_at`

// ListByUser returns the user's events ordered by start date.
func (r *CalendarRepository) ListByUser(ctx context.Context, userID int64) ([]models.CalendarEvent, error) {
	out := []models.CalendarEvent{}
	if r.db == nil {
		return out, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM calendar_events WHERE user_id = ? ORDER BY start_date ASC, id ASC`, userID)
	if err != nil {
		return out, storeError("list events", err)
	}
	defer rows.Close()
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return []models.CalendarEvent{}, storeError("scan event", err)
		}
		out = append(out, *ev)
	}
	if err := rows.Err(); err != nil {
		return []models.CalendarEvent{}, storeError("list events", err)
	}
	return out, nil
}

func (r *CalendarRepository) GetByID(ctx context.Context, userID, id int64) (*models.CalendarEvent, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	ev, err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM calendar_events WHERE id = ? AND user_id = ?`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storeError("get event", err)
	}
	return ev, nil
}

// Create inserts an event owned by userID and returns the stored row.
func (r *CalendarRepository) Create(ctx context.Context, userID int64, e NewEvent) (*models.CalendarEvent, error) {
	if strings.TrimSpace(e.Title) == "" {
		return nil, invalid("event title is required")
	}
	if e.StartDate.IsZero() {
		return nil, invalid("event start date is required")
	}
	if !models.ValidColor(e.Color) {
		return nil, invalid("event color %q", e.Color)
	}
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	now := formatTime(r.now())
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO calendar_events (user_id, task_id, title, description, start_date, end_date, color, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?,?)`,
		userID, e.TaskID, e.Title, e.Description, formatTime(e.StartDate), formatTimePtr(e.EndDate), e.Color, now, now)
	if err != nil {
		return nil, storeError("create event", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeError("create event", err)
	}
	return r.GetByID(ctx, userID, id)
}

// Update applies the non-nil fields of patch to the user's event and returns the stored row.
func (r *CalendarRepository) Update(ctx context.Context, userID, id int64, patch EventPatch) (*models.CalendarEvent, error) {
	var set []string
	var args []any
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, invalid("event title must not be empty")
		}
		set = append(set, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.StartDate != nil {
		set = append(set, "start_date = ?")
		args = append(args, formatTime(*patch.StartDate))
	}
	if patch.EndDate != nil {
		set = append(set, "end_date = ?")
		args = append(args, formatTime(*patch.EndDate))
	}
	if patch.Color != nil {
		if !models.ValidColor(*patch.Color) {
			return nil, invalid("event color %q", *patch.Color)
		}
		set = append(set, "color = ?")
		args = append(args, *patch.Color)
	}
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	set = append(set, "updated_at = ?")
	args = append(args, formatTime(r.now()), id, userID)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE calendar_events SET `+strings.Join(set, ", ")+` WHERE id = ? AND user_id = ?`, args...)
	if err != nil {
		return nil, storeError("update event", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, userID, id)
}

// Delete removes the user's event.
func (r *CalendarRepository) Delete(ctx context.Context, userID, id int64) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return storeError("delete event", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEvent(s rowScanner) (*models.CalendarEvent, error) {
	var (
		ev                   models.CalendarEvent
		taskID               sql.NullInt64
		description, endDate sql.NullString
		startDate            string
		createdAt, updatedAt string
	)
	if err := s.Scan(&ev.ID, &ev.UserID, &taskID, &ev.Title, &description, &startDate, &endDate, &ev.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if taskID.Valid {
		v := taskID.Int64
		ev.TaskID = &v
	}
	ev.Description = nullString(description)
	var err error
	if ev.StartDate, err = parseTime(startDate); err != nil {
		return nil, err
	}
	if ev.EndDate, err = parseNullTime(endDate); err != nil {
		return nil, err
	}
	if ev.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if ev.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &ev, nil
}
