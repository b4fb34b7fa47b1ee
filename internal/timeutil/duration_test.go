package timeutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{10*time.Hour + 11*time.Minute, "10:11"},
		{0, "00:00"},
		{5 * time.Minute, "00:05"},
		{30 * time.Second, "00:01"},
		{29 * time.Second, "00:00"},
		{59*time.Minute + 30*time.Second, "01:00"},
		{125*time.Hour + 3*time.Minute, "125:03"},
		{-90 * time.Minute, "-01:30"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDuration(tc.in))
		})
	}
}

func TestDuration_SumsRecords(t *testing.T) {
	day := time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC)
	end1 := day.Add(11 * time.Hour)
	now := day.Add(14 * time.Hour)
	records := []domain.Record{
		{StartTime: day.Add(9 * time.Hour), EndTime: &end1},
		{StartTime: day.Add(13*time.Hour + 49*time.Minute)},
	}
	assert.Equal(t, "02:11", Duration(records, now))
}

func TestActivitiesDuration(t *testing.T) {
	day := time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC)
	end := day.Add(10 * time.Hour)
	acts := []domain.Activity{
		domain.NewActivity(domain.NewTask("A", nil, ""), domain.Record{StartTime: day.Add(9 * time.Hour), EndTime: &end}),
		domain.NewActivity(domain.NewTask("B", nil, ""), domain.Record{StartTime: day.Add(9*time.Hour + 30*time.Minute), EndTime: &end}),
		domain.NewActivity(domain.NewTask("C", nil, "")),
	}
	assert.Equal(t, "01:30", ActivitiesDuration(acts, end))
}
