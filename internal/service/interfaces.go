package service

import (
	"context"
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
)

// RecordRepository is the single entry point for logging and querying
// work records. Write methods never report failures to the caller; read
// methods return storage failures unchanged.
type RecordRepository interface {
	// AddRaw forwards a free-text entry to storage. parseTime defaults to
	// true at the CLI: the text then starts with an HH:MM token.
	AddRaw(ctx context.Context, entryText string, parseTime bool)
	AddRecord(ctx context.Context, task domain.Task, record domain.Record)
	FilterByTag(ctx context.Context, tags []string) ([]domain.Activity, error)
	FilterByDate(ctx context.Context, date time.Time) ([]domain.Activity, error)
	Activities(ctx context.Context) ([]domain.Activity, error)
}
