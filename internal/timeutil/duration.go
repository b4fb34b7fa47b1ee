// Package timeutil holds the duration and calendar arithmetic used by reports.
package timeutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
)

// SumRecords adds up record durations. Running records count up to now.
func SumRecords(records []domain.Record, now time.Time) time.Duration {
	var total time.Duration
	for _, r := range records {
		total += r.Duration(now)
	}
	return total
}

// SumActivities adds up the durations of every record of every activity.
func SumActivities(activities []domain.Activity, now time.Time) time.Duration {
	var total time.Duration
	for _, a := range activities {
		total += a.Duration(now)
	}
	return total
}

// FormatDuration renders d as HH:MM. The value is rounded to the nearest
// minute first (halves round away from zero), hours are not wrapped at 24
// and are padded to at least two digits.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int64(d / time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, total/60, total%60)
}

// Duration renders the summed duration of records.
func Duration(records []domain.Record, now time.Time) string {
	return FormatDuration(SumRecords(records, now))
}

// ActivitiesDuration renders the summed duration of all activities.
func ActivitiesDuration(activities []domain.Activity, now time.Time) string {
	return FormatDuration(SumActivities(activities, now))
}
