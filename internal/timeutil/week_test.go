package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	// 2022-10-12 is a Wednesday.
	wed := date(2022, 10, 12)
	assert.Equal(t, time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(wed, time.Monday))
	assert.Equal(t, time.Date(2022, 10, 9, 0, 0, 0, 0, time.UTC), StartOfWeek(wed, time.Sunday))
	assert.Equal(t, time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(date(2022, 10, 10), time.Monday))
}

func TestDayOfSameWeek(t *testing.T) {
	wed := date(2022, 10, 12)
	assert.Equal(t, time.Date(2022, 10, 16, 0, 0, 0, 0, time.UTC), DayOfSameWeek(wed, time.Sunday, time.Monday))
	assert.Equal(t, time.Date(2022, 10, 9, 0, 0, 0, 0, time.UTC), DayOfSameWeek(wed, time.Sunday, time.Sunday))
	assert.Equal(t, time.Date(2022, 10, 14, 0, 0, 0, 0, time.UTC), DayOfSameWeek(wed, time.Friday, time.Monday))
}

func TestWeekNumber_MondayMatchesISOWeek(t *testing.T) {
	start := time.Date(2019, 12, 1, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 5*366; d++ {
		day := start.AddDate(0, 0, d)
		wantYear, wantWeek := day.ISOWeek()
		gotYear, gotWeek := WeekNumber(day, time.Monday)
		if !assert.Equal(t, wantYear, gotYear, day.Format("2006-01-02")) || !assert.Equal(t, wantWeek, gotWeek, day.Format("2006-01-02")) {
			return
		}
	}
}

func TestWeekNumber_SundayStart(t *testing.T) {
	// 2023-01-01 is a Sunday: its Sunday-based week holds Jan 1-7, all in 2023.
	year, week := WeekNumber(date(2023, 1, 1), time.Sunday)
	assert.Equal(t, 2023, year)
	assert.Equal(t, 1, week)

	// With Monday weeks the same day still belongs to 2022's last week.
	year, week = WeekNumber(date(2023, 1, 1), time.Monday)
	assert.Equal(t, 2022, year)
	assert.Equal(t, 52, week)
}
