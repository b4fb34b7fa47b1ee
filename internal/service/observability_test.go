package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alexanderramin/clocklog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_LogsDroppedWrites(t *testing.T) {
	var buf bytes.Buffer
	store := &testutil.FakeStorage{RawErr: errors.New("disk full")}
	repo := NewRecordRepository(store, NewLogUseCaseObserver(&buf, slog.LevelInfo))

	repo.AddRaw(context.Background(), "11:00 Standup", true)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "msg=record_dropped")
	assert.Contains(t, out, "use_case=add_raw")
	assert.Contains(t, out, `entry="11:00 Standup"`)
	assert.Contains(t, out, `error="disk full"`)
}

func TestLogUseCaseObserver_FailedQueryIsWarning(t *testing.T) {
	var buf bytes.Buffer
	store := &testutil.FakeStorage{LoadErr: errors.New("unreadable")}
	repo := NewRecordRepository(store, NewLogUseCaseObserver(&buf, slog.LevelWarn))

	_, err := repo.FilterByTag(context.Background(), []string{"work"})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=record_query")
	assert.Contains(t, out, "use_case=filter_by_tag")
}

func TestLogUseCaseObserver_LevelFiltersSuccess(t *testing.T) {
	var buf bytes.Buffer
	repo := NewRecordRepository(&testutil.FakeStorage{}, NewLogUseCaseObserver(&buf, slog.LevelWarn))

	repo.AddRecord(context.Background(), testutil.NewTestTask("A"), testutil.NewTestRecord(testutil.Day))
	_, err := repo.Activities(context.Background())
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

func TestLogUseCaseObserver_SuccessfulWriteIsInfo(t *testing.T) {
	var buf bytes.Buffer
	repo := NewRecordRepository(&testutil.FakeStorage{}, NewLogUseCaseObserver(&buf, slog.LevelInfo))

	repo.AddRecord(context.Background(), testutil.NewTestTask("A", testutil.WithTags("work")), testutil.NewTestRecord(testutil.Day))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=record_write")
	assert.Contains(t, out, `task="A +work"`)
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))
}

func TestNewRecordRepository_NilObserverFallsBackToNoop(t *testing.T) {
	repo := NewRecordRepository(&testutil.FakeStorage{RawErr: errors.New("boom")}, nil)
	assert.NotPanics(t, func() {
		repo.AddRaw(context.Background(), "x", false)
	})
}

func TestNewRecordRepository_NotifiesEveryObserver(t *testing.T) {
	var first, second []UseCaseEvent
	repo := NewRecordRepository(&testutil.FakeStorage{},
		ObserverFunc(func(_ context.Context, e UseCaseEvent) { first = append(first, e) }),
		nil,
		ObserverFunc(func(_ context.Context, e UseCaseEvent) { second = append(second, e) }),
	)

	repo.AddRaw(context.Background(), "11:00 Standup", true)
	_, err := repo.FilterByDate(context.Background(), testutil.Day)
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, "add_raw", first[0].Name)
	assert.True(t, first[0].Write)
	assert.Equal(t, "filter_by_date", first[1].Name)
	assert.False(t, first[1].Write)
}
