package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/clocklog/internal/storage"
	"github.com/alexanderramin/clocklog/internal/timeutil"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*timeValue)(nil)
	_ pflag.Value = (*dateValue)(nil)
)

// timeValue is a flag accepting HH:MM (today), "2006-01-02 15:04" or RFC3339.
type timeValue struct {
	now func() time.Time
	t   *time.Time
}

func (v *timeValue) String() string {
	if v.t == nil {
		return ""
	}
	return v.t.Format("2006-01-02 15:04")
}

func (v *timeValue) Set(s string) error {
	s = strings.TrimSpace(s)
	now := v.now()
	if t, err := storage.ParseClock(s, now); err == nil {
		v.t = &t
		return nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, now.Location()); err == nil {
		v.t = &t
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		v.t = &t
		return nil
	}
	return fmt.Errorf("use HH:MM, \"YYYY-MM-DD HH:MM\" or RFC3339")
}

func (v *timeValue) Type() string { return "time" }

// dateValue is a flag accepting today, yesterday or YYYY-MM-DD. The zero
// value means today.
type dateValue struct {
	now func() time.Time
	t   *time.Time
}

func (v *dateValue) String() string {
	if v.t == nil {
		return "today"
	}
	return v.t.Format(time.DateOnly)
}

func (v *dateValue) Set(s string) error {
	now := v.now()
	var t time.Time
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		t = timeutil.Midnight(now)
	case "yesterday":
		t = timeutil.Midnight(now).AddDate(0, 0, -1)
	default:
		parsed, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), now.Location())
		if err != nil {
			return fmt.Errorf("use YYYY-MM-DD, today or yesterday")
		}
		t = parsed
	}
	v.t = &t
	return nil
}

func (v *dateValue) Type() string { return "date" }

// Get returns the chosen date, defaulting to today.
func (v *dateValue) Get() time.Time {
	if v.t == nil {
		return timeutil.Midnight(v.now())
	}
	return *v.t
}
