package models

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the progress of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every status in display order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts a wire value into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	st := TaskStatus(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("invalid status %q (want pending, in-progress or completed)", s)
	}
	return st, nil
}

// TaskPriority ranks tasks.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// ParseTaskPriority converts a wire value into a TaskPriority.
func ParseTaskPriority(s string) (TaskPriority, error) {
	p := TaskPriority(strings.TrimSpace(s))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (want low, medium or high)", s)
	}
	return p, nil
}

// Task is a unit of work owned by exactly one user.
// Description and DueDate are nullable in the DB.
type Task struct {
	ID          int64        `db:"id" json:"id"`
	UserID      int64        `db:"user_id" json:"userId"`
	Title       string       `db:"title" json:"title"`
	Description *string      `db:"description" json:"description,omitempty"`
	Status      TaskStatus   `db:"status" json:"status"`
	Priority    TaskPriority `db:"priority" json:"priority"`
	DueDate     *time.Time   `db:"due_date" json:"dueDate,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updatedAt"`
}

// TaskCounts summarises a user's tasks by status.
type TaskCounts struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

// Add records n tasks with the given status.
func (c *TaskCounts) Add(s TaskStatus, n int) {
	switch s {
	case TaskStatusPending:
		c.Pending += n
	case TaskStatusInProgress:
		c.InProgress += n
	case TaskStatusCompleted:
		c.Completed += n
	}
	c.Total += n
}
