package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"taskPlanner/models"
)

// TaskRepository is the owner-scoped store for Task entities.
type TaskRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewTaskRepository creates a TaskRepository. A nil db yields a repository in degraded mode.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db, now: utcNow}
}

// NewTask holds the fields of a task to insert. Status and Priority are stored as given.
type NewTask struct {
	Title       string
	Description *string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *time.Time
}

// TaskPatch holds a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	DueDate     *time.Time
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil && p.DueDate == nil
}

const taskColumns = `id, user_id, title, description, status, priority, due_date, created_at, updated_at`

// ListByUser returns the user's tasks ordered by creation time ascending.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	out := []models.Task{}
	if r.db == nil {
		return out, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return out, storeError("list tasks", err)
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return []models.Task{}, storeError("scan task", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return []models.Task{}, storeError("list tasks", err)
	}
	return out, nil
}

// GetByID fetches one of the user's tasks. Returns ErrNotFound when the task does not exist
// or belongs to another user.
func (r *TaskRepository) GetByID(ctx context.Context, userID, id int64) (*models.Task, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	t, err := scanTask(r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storeError("get task", err)
	}
	return t, nil
}

// Create inserts a task owned by userID and returns the stored row.
func (r *TaskRepository) Create(ctx context.Context, userID int64, t NewTask) (*models.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return nil, invalid("task title is required")
	}
	if !t.Status.Valid() {
		return nil, invalid("task status %q", t.Status)
	}
	if !t.Priority.Valid() {
		return nil, invalid("task priority %q", t.Priority)
	}
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	now := formatTime(r.now())
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, title, description, status, priority, due_date, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?)`,
		userID, t.Title, t.Description, string(t.Status), string(t.Priority), formatTimePtr(t.DueDate), now, now)
	if err != nil {
		return nil, storeError("create task", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeError("create task", err)
	}
	return r.GetByID(ctx, userID, id)
}

// Update applies the non-nil fields of patch to the user's task and returns the stored row.
// user_id and created_at are never written; updated_at always advances.
func (r *TaskRepository) Update(ctx context.Context, userID, id int64, patch TaskPatch) (*models.Task, error) {
	var set []string
	var args []any
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, invalid("task title must not be empty")
		}
		set = append(set, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, invalid("task status %q", *patch.Status)
		}
		set = append(set, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, invalid("task priority %q", *patch.Priority)
		}
		set = append(set, "priority = ?")
		args = append(args, string(*patch.Priority))
	}
	if patch.DueDate != nil {
		set = append(set, "due_date = ?")
		args = append(args, formatTime(*patch.DueDate))
	}
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	set = append(set, "updated_at = ?")
	args = append(args, formatTime(r.now()), id, userID)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET `+strings.Join(set, ", ")+` WHERE id = ? AND user_id = ?`, args...)
	if err != nil {
		return nil, storeError("update task", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, userID, id)
}

// Delete removes the user's task. Reminders and events referencing it are left in place.
func (r *TaskRepository) Delete(ctx context.Context, userID, id int64) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return storeError("delete task", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns the user's task counts grouped by status.
func (r *TaskRepository) CountByStatus(ctx context.Context, userID int64) (models.TaskCounts, error) {
	var counts models.TaskCounts
	if r.db == nil {
		return counts, ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks WHERE user_id = ? GROUP BY status`, userID)
	if err != nil {
		return counts, storeError("count tasks", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return models.TaskCounts{}, storeError("scan task count", err)
		}
		counts.Add(models.TaskStatus(status), n)
	}
	if err := rows.Err(); err != nil {
		return models.TaskCounts{}, storeError("count tasks", err)
	}
	return counts, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (*models.Task, error) {
	var (
		t                    models.Task
		description, dueDate sql.NullString
		status, priority     string
		createdAt, updatedAt string
	)
	if err := s.Scan(&t.ID, &t.UserID, &t.Title, &description, &status, &priority, &dueDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.Description = nullString(description)
	t.Status = models.TaskStatus(status)
	t.Priority = models.TaskPriority(priority)
	var err error
	if t.DueDate, err = parseNullTime(dueDate); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
