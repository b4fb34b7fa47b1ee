package storage

import (
	"database/sql"
	"time"
)

// parseNullableTime parses an optional RFC3339 column. NULL and empty
// strings yield nil.
func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite
// storage: SQL NULL for nil, otherwise the RFC3339 text.
func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return timeString(*t)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
