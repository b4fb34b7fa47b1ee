// Package storage persists activities and their records.
//
// Backends own the durable copy of the data. Every call loads and saves the
// full state, so callers never hold onto stale activities between calls.
package storage

import (
	"context"
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
)

// Storage is the capability set the record repository depends on.
type Storage interface {
	// LoadActivities returns every stored activity in storage order.
	LoadActivities(ctx context.Context) ([]domain.Activity, error)
	// AppendEntry adds record under task, creating the activity when no
	// stored task matches. Each call appends.
	AppendEntry(ctx context.Context, task domain.Task, record domain.Record) error
	// AppendRawEntry parses text as a raw entry and appends the result.
	// When parseTime is set the text must start with an HH:MM token.
	AppendRawEntry(ctx context.Context, text string, parseTime bool) error
}

// appendTo applies the shared append semantics to an in-memory activity
// list: running records started at or before the new record are stopped,
// then the record joins the matching activity or a new one at the end.
// Tags the matching task lacks are added to it.
func appendTo(activities []domain.Activity, task domain.Task, record domain.Record) []domain.Activity {
	domain.StopRunningIn(activities, record.StartTime)
	if i := domain.FindTask(activities, task); i >= 0 {
		activities[i].MergeTags(task.Tags)
		activities[i].AddRecord(record)
		return activities
	}
	return append(activities, domain.NewActivity(task, record))
}

// resolveEntry turns a parsed raw entry into the task to append to. An
// ID-only entry must name a task that already exists.
func resolveEntry(activities []domain.Activity, e Entry) (domain.Task, error) {
	if e.Title != "" {
		return domain.NewTask(e.Title, e.Tags, e.ID), nil
	}
	i := domain.FindTaskByID(activities, e.ID)
	if i < 0 {
		return domain.Task{}, ErrUnknownTask
	}
	existing := activities[i].Task
	return domain.NewTask(existing.Title, append(append([]string(nil), existing.Tags...), e.Tags...), existing.ID), nil
}

func timeString(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
