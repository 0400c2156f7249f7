package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskPlanner/internal/testutil"
	"taskPlanner/models"
)

func strPtr(s string) *string { return &s }

func TestTaskRepository_Lifecycle(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "taskrepo")
	repo := NewTaskRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, 1, NewTask{
		Title:    "Buy milk",
		Status:   models.TaskStatusPending,
		Priority: models.TaskPriorityMedium,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, models.TaskStatusPending, created.Status)
	assert.Equal(t, models.TaskPriorityMedium, created.Priority)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.DueDate)

	completed := models.TaskStatusCompleted
	updated, err := repo.Update(ctx, 1, created.ID, TaskPatch{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, updated.Status)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.DueDate, updated.DueDate)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	require.NoError(t, repo.Delete(ctx, 1, created.ID))
	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTaskRepository_PartialUpdateKeepsOtherFields(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "taskrepopartial")
	repo := NewTaskRepository(d)
	ctx := context.Background()

	due := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	created, err := repo.Create(ctx, 7, NewTask{
		Title:       "Write report",
		Description: strPtr("quarterly numbers"),
		Status:      models.TaskStatusPending,
		Priority:    models.TaskPriorityHigh,
		DueDate:     &due,
	})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)
	assert.True(t, created.DueDate.Equal(due))

	inProgress := models.TaskStatusInProgress
	updated, err := repo.Update(ctx, 7, created.ID, TaskPatch{Status: &inProgress})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, updated.Status)
	assert.Equal(t, "Write report", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "quarterly numbers", *updated.Description)
	assert.Equal(t, models.TaskPriorityHigh, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(due))

	newDue := due.Add(48 * time.Hour)
	updated, err = repo.Update(ctx, 7, created.ID, TaskPatch{Title: strPtr("Write final report"), DueDate: &newDue})
	require.NoError(t, err)
	assert.Equal(t, "Write final report", updated.Title)
	assert.Equal(t, models.TaskStatusInProgress, updated.Status)
	assert.True(t, updated.DueDate.Equal(newDue))
}

func TestTaskRepository_OwnershipScoping(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "taskrepoowner")
	repo := NewTaskRepository(d)
	ctx := context.Background()

	mine, err := repo.Create(ctx, 1, NewTask{Title: "mine", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow})
	require.NoError(t, err)
	_, err = repo.Create(ctx, 2, NewTask{Title: "theirs", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow})
	require.NoError(t, err)

	done := models.TaskStatusCompleted
	_, err = repo.Update(ctx, 2, mine.ID, TaskPatch{Status: &done})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 2, mine.ID), ErrNotFound)
	_, err = repo.GetByID(ctx, 2, mine.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	still, err := repo.GetByID(ctx, 1, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, still.Status)
	assert.Equal(t, int64(1), still.UserID)

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].Title)
}

func TestTaskRepository_ListOrderedByCreation(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "taskrepoorder")
	repo := NewTaskRepository(d)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	step := 0
	// Clock runs backwards relative to ids to prove ordering uses created_at.
	repo.now = func() time.Time { step++; return base.Add(time.Duration(10-step) * time.Minute) }
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, 3, NewTask{Title: title, Status: models.TaskStatusPending, Priority: models.TaskPriorityMedium})
		require.NoError(t, err)
	}
	list, err := repo.ListByUser(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{list[0].Title, list[1].Title, list[2].Title})
}

func TestTaskRepository_RejectsInvalidValues(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "taskrepoinvalid")
	repo := NewTaskRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, 1, NewTask{Title: "", Status: models.TaskStatusPending, Priority: models.TaskPriorityMedium})
	assert.ErrorIs(t, err, ErrInvalidValue)
	// The storage layer does not apply defaults.
	_, err = repo.Create(ctx, 1, NewTask{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidValue)

	created, err := repo.Create(ctx, 1, NewTask{Title: "x", Status: models.TaskStatusPending, Priority: models.TaskPriorityMedium})
	require.NoError(t, err)
	bogus := models.TaskPriority("urgent")
	_, err = repo.Update(ctx, 1, created.ID, TaskPatch{Priority: &bogus})
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = repo.Update(ctx, 1, created.ID, TaskPatch{Title: strPtr("  ")})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestTaskRepository_CountByStatus(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "taskrepocount")
	repo := NewTaskRepository(d)
	ctx := context.Background()

	for _, st := range []models.TaskStatus{models.TaskStatusPending, models.TaskStatusPending, models.TaskStatusCompleted, models.TaskStatusInProgress} {
		_, err := repo.Create(ctx, 4, NewTask{Title: "t", Status: st, Priority: models.TaskPriorityMedium})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, 5, NewTask{Title: "other", Status: models.TaskStatusCompleted, Priority: models.TaskPriorityMedium})
	require.NoError(t, err)

	counts, err := repo.CountByStatus(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCounts{Total: 4, Pending: 2, InProgress: 1, Completed: 1}, counts)
}

func TestTaskRepository_DegradedMode(t *testing.T) {
	repo := NewTaskRepository(nil)
	ctx := context.Background()

	list, err := repo.ListByUser(ctx, 1)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = repo.Create(ctx, 1, NewTask{Title: "x", Status: models.TaskStatusPending, Priority: models.TaskPriorityMedium})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	done := models.TaskStatusCompleted
	_, err = repo.Update(ctx, 1, 1, TaskPatch{Status: &done})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Delete(ctx, 1, 1), ErrStoreUnavailable)
}

func TestTaskRepository_ClosedStoreIsUnavailable(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "taskrepoclosed")
	repo := NewTaskRepository(d)
	require.NoError(t, d.Close())

	list, err := repo.ListByUser(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, list)
}
