package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
	"github.com/stretchr/testify/assert"
)

var fmtNow = time.Date(2022, 10, 10, 18, 0, 0, 0, time.UTC)

func fmtActivities() []domain.Activity {
	end := time.Date(2022, 10, 10, 11, 0, 0, 0, time.UTC)
	return []domain.Activity{
		domain.NewActivity(domain.NewTask("Write report", []string{"work"}, "42"),
			domain.Record{StartTime: time.Date(2022, 10, 10, 9, 0, 0, 0, time.UTC), EndTime: &end}),
		domain.NewActivity(domain.NewTask("Reading", nil, ""),
			domain.Record{StartTime: time.Date(2022, 10, 10, 17, 0, 0, 0, time.UTC)}),
	}
}

func TestFormatActivities(t *testing.T) {
	out := FormatActivities("Tags", fmtActivities(), fmtNow)
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "+work")
	assert.Contains(t, out, "02:00")
	assert.Contains(t, out, "01:00")
	assert.Contains(t, out, "03:00")
	assert.Contains(t, out, " 67%")
}

func TestFormatActivities_Empty(t *testing.T) {
	assert.Contains(t, FormatActivities("Tags", nil, fmtNow), "No activities found.")
}

func TestFormatDay(t *testing.T) {
	out := FormatDay(fmtNow, fmtActivities(), fmtNow)
	assert.Contains(t, out, "DAY · TODAY")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "11:00")
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "03:00")
}

func TestFormatWeek(t *testing.T) {
	days := []WeekDay{
		{Date: time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC), Activities: fmtActivities()},
		{Date: time.Date(2022, 10, 11, 0, 0, 0, 0, time.UTC)},
	}
	out := FormatWeek(2022, 41, days, fmtNow)
	assert.Contains(t, out, "WEEK 41 · 2022")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "2022-10-11")
	assert.Contains(t, out, "Write report, Reading")
	assert.Contains(t, out, "03:00")
}
