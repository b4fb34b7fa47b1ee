package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entry is the parsed form of a raw text line such as
// "11:00 Write report +work +writing .42".
type Entry struct {
	Start time.Time
	Title string
	Tags  []string
	ID    string
}

// ParseEntry parses a raw entry. With parseTime the first token must be a
// 24h H:MM or HH:MM time, placed on now's calendar date; otherwise the entry
// starts at now. Tokens prefixed with '+' are tags, a token prefixed with '.'
// is the task ID (the last one wins), and the rest forms the title.
func ParseEntry(text string, parseTime bool, now time.Time) (Entry, error) {
	fields := strings.Fields(text)
	e := Entry{Start: now}

	if parseTime {
		if len(fields) == 0 {
			return Entry{}, ErrMissingTime
		}
		start, err := ParseClock(fields[0], now)
		if err != nil {
			return Entry{}, err
		}
		e.Start = start
		fields = fields[1:]
	}

	var title []string
	for _, f := range fields {
		switch {
		case len(f) > 1 && f[0] == '+':
			e.Tags = append(e.Tags, f[1:])
		case len(f) > 1 && f[0] == '.':
			e.ID = f[1:]
		default:
			title = append(title, f)
		}
	}
	e.Title = strings.Join(title, " ")

	if e.Title == "" && e.ID == "" {
		return Entry{}, fmt.Errorf("%q: %w", text, ErrMalformedEntry)
	}
	return e, nil
}

// ParseClock reads an H:MM or HH:MM token as a time on day's calendar date.
func ParseClock(token string, day time.Time) (time.Time, error) {
	h, m, ok := strings.Cut(token, ":")
	if !ok || len(h) < 1 || len(h) > 2 || len(m) != 2 || !allDigits(h) || !allDigits(m) {
		return time.Time{}, fmt.Errorf("%q: %w", token, ErrMissingTime)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("%q: %w", token, ErrMissingTime)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%q: %w", token, ErrMissingTime)
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, hour, minute, 0, 0, day.Location()), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
