package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/clocklog/internal/clock"
	"github.com/alexanderramin/clocklog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_JournalsRawEntries(t *testing.T) {
	_, uow := testutil.NewTestDB(t)
	store := NewSQLiteStore(uow, clock.Fixed(storeNow))
	ctx := context.Background()

	require.NoError(t, store.AppendRawEntry(ctx, "09:00 Standup", true))
	require.NoError(t, store.AppendRawEntry(ctx, "Review .7", false))
	require.Error(t, store.AppendRawEntry(ctx, "no time here", true))

	raw, err := store.RawEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 Standup", "Review .7"}, raw)
}

func TestSQLiteStore_AppendRollsBackOnFailure(t *testing.T) {
	database, uow := testutil.NewTestDB(t)
	ctx := context.Background()

	seed := NewSQLiteStore(uow, clock.Fixed(storeNow))
	require.NoError(t, seed.AppendEntry(ctx, testutil.NewTestTask("A"), testutil.NewTestRecord(testutil.At(0, 9, 0))))

	// The running record is stopped and task B inserted before the record insert fails.
	injected := errors.New("disk full")
	failingUoW := &testutil.FailingExecUoW{DB: database, Match: "INSERT INTO records", Err: injected}
	failing := NewSQLiteStore(failingUoW, clock.Fixed(storeNow))
	err := failing.AppendEntry(ctx, testutil.NewTestTask("B"), testutil.NewTestRecord(testutil.At(0, 10, 0)))
	require.ErrorIs(t, err, injected)
	require.True(t, failingUoW.Failed)

	acts, err := seed.LoadActivities(ctx)
	require.NoError(t, err)
	require.Len(t, acts, 1, "task B must be rolled back")
	assert.True(t, acts[0].Records[0].Running(), "stop must be rolled back")
}

func TestSQLiteStore_TaskRowsUseStoreClock(t *testing.T) {
	database, uow := testutil.NewTestDB(t)
	store := NewSQLiteStore(uow, clock.Fixed(storeNow))
	ctx := context.Background()

	require.NoError(t, store.AppendEntry(ctx, testutil.NewTestTask("A"), testutil.NewTestRecord(testutil.At(0, 9, 0))))
	require.NoError(t, store.AppendRawEntry(ctx, "10:00 B", true))

	rows, err := database.Query(`SELECT created_at FROM tasks ORDER BY seq`)
	require.NoError(t, err)
	defer rows.Close()
	var stamps []string
	for rows.Next() {
		var s string
		require.NoError(t, rows.Scan(&s))
		stamps = append(stamps, s)
	}
	require.NoError(t, rows.Err())
	want := timeString(storeNow.UTC())
	assert.Equal(t, []string{want, want}, stamps)
}

func TestSQLiteStore_CorruptTags(t *testing.T) {
	database, uow := testutil.NewTestDB(t)
	_, err := database.Exec(`INSERT INTO tasks (key, title, tags, seq, created_at) VALUES ('k', 'A', 'not json', 1, '2022-10-10T10:00:00Z')`)
	require.NoError(t, err)

	store := NewSQLiteStore(uow, nil)
	_, err = store.LoadActivities(context.Background())
	assert.ErrorIs(t, err, ErrCorrupt)
}
