package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pmc-dev/pmc/internal/models"
)

func TestTimeEntryStartStop(t *testing.T) {
	database := openTestDB(t)
	tasks := NewTaskRepository(database)
	times := NewTimeEntryRepository(database)
	ctx := context.Background()

	task := createTestTask(t, tasks, "timed work", "acme", models.PriorityMedium)

	entry, err := times.Start(ctx, task.ID, "pairing")
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	require.Nil(t, entry.End)

	// A second open timer for the same task is rejected.
	_, err = times.Start(ctx, task.ID, "")
	require.ErrorIs(t, err, ErrTimerRunning)

	require.NoError(t, times.Stop(ctx, task.ID))

	entries, err := times.ListForDay(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "pairing", entries[0].Note)
	require.NotNil(t, entries[0].End)
}

func TestTimeEntryStopWithoutTimer(t *testing.T) {
	database := openTestDB(t)
	times := NewTimeEntryRepository(database)

	require.ErrorIs(t, times.Stop(context.Background(), "no-task"), ErrTimeEntryNotFound)
}

func TestTimeEntryStartValidation(t *testing.T) {
	database := openTestDB(t)
	times := NewTimeEntryRepository(database)

	_, err := times.Start(context.Background(), "", "note")
	require.ErrorIs(t, err, models.ErrInvalidTimeEntry)
}

func TestTimeEntryListForDayBounds(t *testing.T) {
	database := openTestDB(t)
	tasks := NewTaskRepository(database)
	times := NewTimeEntryRepository(database)
	ctx := context.Background()

	task := createTestTask(t, tasks, "bounded", "", models.PriorityMedium)
	_, err := times.Start(ctx, task.ID, "")
	require.NoError(t, err)

	yesterday, err := times.ListForDay(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Empty(t, yesterday)
}
