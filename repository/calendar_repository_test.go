package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskPlanner/internal/testutil"
	"taskPlanner/models"
)

func TestCalendarRepository_CRUD(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "calendarrepo")
	repo := NewCalendarRepository(d)
	ctx := context.Background()

	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	taskID := int64(42)

	ev, err := repo.Create(ctx, 1, NewEvent{
		TaskID:      &taskID,
		Title:       "Team Meeting",
		Description: strPtr("Weekly sync"),
		StartDate:   start,
		EndDate:     &end,
		Color:       models.DefaultEventColor,
	})
	require.NoError(t, err)
	assert.Equal(t, "Team Meeting", ev.Title)
	require.NotNil(t, ev.TaskID)
	assert.Equal(t, int64(42), *ev.TaskID)
	assert.True(t, ev.StartDate.Equal(start))
	require.NotNil(t, ev.EndDate)
	assert.True(t, ev.EndDate.Equal(end))
	assert.Equal(t, models.DefaultEventColor, ev.Color)

	updated, err := repo.Update(ctx, 1, ev.ID, EventPatch{Title: strPtr("Updated Meeting")})
	require.NoError(t, err)
	assert.Equal(t, "Updated Meeting", updated.Title)
	assert.Equal(t, "Weekly sync", *updated.Description)
	assert.True(t, updated.StartDate.Equal(start))
	assert.Equal(t, models.DefaultEventColor, updated.Color)
	assert.Equal(t, ev.TaskID, updated.TaskID)

	_, err = repo.Update(ctx, 2, ev.ID, EventPatch{Color: strPtr("#000000")})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Update(ctx, 1, ev.ID, EventPatch{Color: strPtr("blue")})
	assert.ErrorIs(t, err, ErrInvalidValue)

	assert.ErrorIs(t, repo.Delete(ctx, 2, ev.ID), ErrNotFound)
	require.NoError(t, repo.Delete(ctx, 1, ev.ID))
	_, err = repo.GetByID(ctx, 1, ev.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCalendarRepository_ListOrderedByStart(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "calendarrepoorder")
	repo := NewCalendarRepository(d)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, offset := range []int{5, 1, 3} {
		_, err := repo.Create(ctx, 1, NewEvent{Title: "e", StartDate: base.AddDate(0, 0, offset), Color: "#ff0000"})
		require.NoError(t, err)
	}
	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 2, list[0].StartDate.Day())
	assert.Equal(t, 4, list[1].StartDate.Day())
	assert.Equal(t, 6, list[2].StartDate.Day())
	assert.Nil(t, list[0].TaskID)
	assert.Nil(t, list[0].EndDate)
}

func TestCalendarRepository_DegradedMode(t *testing.T) {
	repo := NewCalendarRepository(nil)
	ctx := context.Background()

	list, err := repo.ListByUser(ctx, 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = repo.Create(ctx, 1, NewEvent{Title: "x", StartDate: time.Now(), Color: models.DefaultEventColor})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = repo.Update(ctx, 1, 1, EventPatch{Title: strPtr("y")})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Delete(ctx, 1, 1), ErrStoreUnavailable)
}
