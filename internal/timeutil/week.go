package timeutil

import "time"

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the first day of the week containing t,
// for weeks beginning on weekStart.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	diff := (7 + int(t.Weekday()) - int(weekStart)) % 7
	return Midnight(t).AddDate(0, 0, -diff)
}

// DayOfSameWeek returns midnight of the given weekday within the week that
// contains t, for weeks beginning on weekStart.
func DayOfSameWeek(t time.Time, day time.Weekday, weekStart time.Weekday) time.Time {
	offset := (7 + int(day) - int(weekStart)) % 7
	return StartOfWeek(t, weekStart).AddDate(0, 0, offset)
}

// WeekNumber numbers t's week using the first-four-day-week rule: a week
// belongs to the year that holds at least four of its days. The returned
// year can differ from t.Year() around new year. With time.Monday this is
// the ISO 8601 week.
func WeekNumber(t time.Time, weekStart time.Weekday) (year, week int) {
	// The fourth day of a week always lies in the year owning that week.
	anchor := StartOfWeek(t, weekStart).AddDate(0, 0, 3)
	return anchor.Year(), (anchor.YearDay()-1)/7 + 1
}
