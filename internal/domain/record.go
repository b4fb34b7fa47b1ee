package domain

import (
	"errors"
	"time"
)

// ErrEndBeforeStart is returned when a record would end before it starts.
var ErrEndBeforeStart = errors.New("record end time is before start time")

// Record is a single logged interval. A nil EndTime means the record is
// still running.
type Record struct {
	StartTime time.Time
	EndTime   *time.Time
}

// NewRecord validates and builds a Record.
func NewRecord(start time.Time, end *time.Time) (Record, error) {
	if end != nil && end.Before(start) {
		return Record{}, ErrEndBeforeStart
	}
	return Record{StartTime: start, EndTime: end}, nil
}

// Running reports whether the record has no end time yet.
func (r Record) Running() bool {
	return r.EndTime == nil
}

// Duration returns the length of the record. A running record counts the
// time elapsed up to now; it never goes negative.
func (r Record) Duration(now time.Time) time.Duration {
	end := now
	if r.EndTime != nil {
		end = *r.EndTime
	}
	d := end.Sub(r.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// StartsOn reports whether the record starts on the calendar date of day,
// evaluated in day's location. The time of day of day is ignored.
func (r Record) StartsOn(day time.Time) bool {
	y1, m1, d1 := r.StartTime.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Stop ends a running record at end. It is a no-op for finished records and
// for an end that precedes the start.
func (r *Record) Stop(end time.Time) bool {
	if !r.Running() || end.Before(r.StartTime) {
		return false
	}
	r.EndTime = &end
	return true
}
