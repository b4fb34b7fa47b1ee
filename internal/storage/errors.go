package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEntry means a raw entry names neither a title nor a task ID.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrMissingTime means a raw entry was expected to start with HH:MM.
	ErrMissingTime = errors.New("entry does not start with a HH:MM time")
	// ErrUnknownTask means a raw entry referenced a task ID that is not stored.
	ErrUnknownTask = errors.New("unknown task id")
	// ErrCorrupt means the backing data could not be decoded.
	ErrCorrupt = errors.New("corrupt backing store")
)

// Error describes a failed storage operation.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Path: path, Err: err}
}
