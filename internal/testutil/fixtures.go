package testutil

import (
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
)

// Day is the reference date used across fixtures: Monday 2022-10-10, UTC.
var Day = time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC)

// At returns Day shifted by days at the given wall-clock hour and minute.
func At(days, hour, minute int) time.Time {
	return Day.AddDate(0, 0, days).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// Task options
type TaskOption func(*domain.Task)

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) {
		t.Tags = tags
	}
}

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func NewTestTask(title string, opts ...TaskOption) domain.Task {
	t := domain.Task{Title: title}
	for _, opt := range opts {
		opt(&t)
	}
	return domain.NewTask(t.Title, t.Tags, t.ID)
}

// Record options
type RecordOption func(*domain.Record)

func WithEnd(end time.Time) RecordOption {
	return func(r *domain.Record) {
		r.EndTime = &end
	}
}

func WithLength(d time.Duration) RecordOption {
	return func(r *domain.Record) {
		end := r.StartTime.Add(d)
		r.EndTime = &end
	}
}

func NewTestRecord(start time.Time, opts ...RecordOption) domain.Record {
	r := domain.Record{StartTime: start}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func NewTestActivity(task domain.Task, records ...domain.Record) domain.Activity {
	return domain.NewActivity(task, records...)
}
