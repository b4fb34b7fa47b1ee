package service

import (
	"context"
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
	"github.com/alexanderramin/clocklog/internal/storage"
)

type recordRepository struct {
	store    storage.Storage
	observer UseCaseObserver
}

// NewRecordRepository wraps store. The repository keeps no state between
// calls: every query loads fresh activities from the store.
func NewRecordRepository(store storage.Storage, observers ...UseCaseObserver) RecordRepository {
	return &recordRepository{store: store, observer: combineObservers(observers)}
}

func (r *recordRepository) AddRaw(ctx context.Context, entryText string, parseTime bool) {
	startedAt := time.Now()
	err := r.store.AppendRawEntry(ctx, entryText, parseTime)
	r.observeWrite(ctx, "add_raw", startedAt, err, map[string]any{
		"entry":      entryText,
		"parse_time": parseTime,
	})
	// Write failures stop at the observer.
}

func (r *recordRepository) AddRecord(ctx context.Context, task domain.Task, record domain.Record) {
	startedAt := time.Now()
	err := r.store.AppendEntry(ctx, task, record)
	r.observeWrite(ctx, "add_record", startedAt, err, map[string]any{
		"task":    task.Label(),
		"start":   record.StartTime.Format(time.RFC3339),
		"running": record.Running(),
	})
}

func (r *recordRepository) FilterByTag(ctx context.Context, tags []string) ([]domain.Activity, error) {
	startedAt := time.Now()
	acts, err := r.store.LoadActivities(ctx)
	if err != nil {
		r.observe(ctx, "filter_by_tag", startedAt, err, map[string]any{"tags": tags})
		return nil, err
	}

	var matched []domain.Activity
	for _, a := range acts {
		if a.Task.HasTags(tags) {
			matched = append(matched, a)
		}
	}
	r.observe(ctx, "filter_by_tag", startedAt, nil, map[string]any{
		"tags":    tags,
		"matched": len(matched),
	})
	return matched, nil
}

func (r *recordRepository) FilterByDate(ctx context.Context, date time.Time) ([]domain.Activity, error) {
	startedAt := time.Now()
	day := date.Format(time.DateOnly)
	acts, err := r.store.LoadActivities(ctx)
	if err != nil {
		r.observe(ctx, "filter_by_date", startedAt, err, map[string]any{"date": day})
		return nil, err
	}

	var matched []domain.Activity
	for _, a := range acts {
		records := a.RecordsOn(date)
		if len(records) == 0 {
			continue
		}
		matched = append(matched, domain.Activity{Task: a.Task, Records: records})
	}
	r.observe(ctx, "filter_by_date", startedAt, nil, map[string]any{
		"date":    day,
		"matched": len(matched),
	})
	return matched, nil
}

func (r *recordRepository) Activities(ctx context.Context) ([]domain.Activity, error) {
	startedAt := time.Now()
	acts, err := r.store.LoadActivities(ctx)
	r.observe(ctx, "activities", startedAt, err, map[string]any{"count": len(acts)})
	return acts, err
}

func (r *recordRepository) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	r.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     name,
		Duration: time.Since(startedAt),
		Err:      err,
		Fields:   fields,
	})
}

func (r *recordRepository) observeWrite(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	r.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     name,
		Write:    true,
		Duration: time.Since(startedAt),
		Err:      err,
		Fields:   fields,
	})
}
