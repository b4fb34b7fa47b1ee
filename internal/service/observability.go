package service

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"
)

// UseCaseEvent describes one completed repository call.
type UseCaseEvent struct {
	Name string
	// Write is set for appends, whose errors never reach the caller.
	Write    bool
	Duration time.Duration
	Err      error
	Fields   map[string]any
}

// UseCaseObserver receives an event after every repository call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// ObserverFunc adapts a function to UseCaseObserver.
type ObserverFunc func(ctx context.Context, event UseCaseEvent)

func (f ObserverFunc) ObserveUseCase(ctx context.Context, event UseCaseEvent) { f(ctx, event) }

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes events to w as slog text records at or above
// level. Dropped writes log at ERROR and failed queries at WARN. Successful
// writes log at INFO and successful queries at DEBUG.
func NewLogUseCaseObserver(w io.Writer, level slog.Level) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	msg, level := "record_query", slog.LevelDebug
	if event.Write {
		msg, level = "record_write", slog.LevelInfo
	}

	attrs := make([]slog.Attr, 0, 3+len(event.Fields))
	attrs = append(attrs,
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
	)
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		level = slog.LevelWarn
		if event.Write {
			msg, level = "record_dropped", slog.LevelError
		}
	}
	o.logger.LogAttrs(ctx, level, msg, attrs...)
}

type multiObserver []UseCaseObserver

func (m multiObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range m {
		obs.ObserveUseCase(ctx, event)
	}
}

// combineObservers drops nil observers and falls back to a no-op.
func combineObservers(observers []UseCaseObserver) UseCaseObserver {
	var live multiObserver
	for _, obs := range observers {
		if obs != nil {
			live = append(live, obs)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	}
	return live
}
