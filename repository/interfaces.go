package repository

import (
	"context"
	"time"

	"taskPlanner/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Upsert(ctx context.Context, p UpsertUserParams) (*models.User, error)
	GetByOpenID(ctx context.Context, openID string) (*models.User, error)
}

// TaskRepositoryI defines owner-scoped operations on Task entities.
type TaskRepositoryI interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Task, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Task, error)
	Create(ctx context.Context, userID int64, t NewTask) (*models.Task, error)
	Update(ctx context.Context, userID, id int64, patch TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, userID, id int64) error
	CountByStatus(ctx context.Context, userID int64) (models.TaskCounts, error)
}

// ReminderRepositoryI defines operations on Reminder entities.
type ReminderRepositoryI interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Reminder, error)
	Create(ctx context.Context, userID int64, in NewReminder) (*models.Reminder, error)
	Delete(ctx context.Context, userID, id int64) error
	ListDue(ctx context.Context, now time.Time, after DueCursor, limit int) ([]models.Reminder, error)
	MarkNotified(ctx context.Context, id int64) (bool, error)
}

// CalendarRepositoryI defines owner-scoped operations on CalendarEvent entities.
type CalendarRepositoryI interface {
	ListByUser(ctx context.Context, userID int64) ([]models.CalendarEvent, error)
	GetByID(ctx context.Context, userID, id int64) (*models.CalendarEvent, error)
	Create(ctx context.Context, userID int64, e NewEvent) (*models.CalendarEvent, error)
	Update(ctx context.Context, userID, id int64, patch EventPatch) (*models.CalendarEvent, error)
	Delete(ctx context.Context, userID, id int64) error
}

var (
	_ UserRepositoryI     = (*UserRepository)(nil)
	_ TaskRepositoryI     = (*TaskRepository)(nil)
	_ ReminderRepositoryI = (*ReminderRepository)(nil)
	_ CalendarRepositoryI = (*CalendarRepository)(nil)
)
