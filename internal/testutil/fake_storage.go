package testutil

import (
	"context"

	"github.com/alexanderramin/clocklog/internal/domain"
)

// AppendCall captures one structured append.
type AppendCall struct {
	Task   domain.Task
	Record domain.Record
}

// RawCall captures one raw append.
type RawCall struct {
	Text      string
	ParseTime bool
}

// FakeStorage is an in-memory stand-in for a storage backend. It records
// every call and returns the configured errors instead of touching data.
type FakeStorage struct {
	Activities []domain.Activity

	LoadErr   error
	AppendErr error
	RawErr    error

	LoadCalls   int
	AppendCalls []AppendCall
	RawCalls    []RawCall
}

func (f *FakeStorage) LoadActivities(context.Context) ([]domain.Activity, error) {
	f.LoadCalls++
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	out := make([]domain.Activity, len(f.Activities))
	for i, a := range f.Activities {
		out[i] = domain.NewActivity(a.Task, a.Records...)
	}
	return out, nil
}

func (f *FakeStorage) AppendEntry(_ context.Context, task domain.Task, record domain.Record) error {
	f.AppendCalls = append(f.AppendCalls, AppendCall{Task: task, Record: record})
	return f.AppendErr
}

func (f *FakeStorage) AppendRawEntry(_ context.Context, text string, parseTime bool) error {
	f.RawCalls = append(f.RawCalls, RawCall{Text: text, ParseTime: parseTime})
	return f.RawErr
}
