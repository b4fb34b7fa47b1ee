package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/clocklog/internal/domain"
	"github.com/alexanderramin/clocklog/internal/timeutil"
)

// FormatActivities renders one row per activity with its total duration and
// share of the overall total.
func FormatActivities(title string, acts []domain.Activity, now time.Time) string {
	if len(acts) == 0 {
		return RenderBox(title, Dim("No activities found."))
	}

	total := timeutil.SumActivities(acts, now)
	headers := []string{"TASK", "TAGS", "ID", "RECORDS", "DURATION", "SHARE"}
	rows := make([][]string, 0, len(acts))
	for _, a := range acts {
		d := a.Duration(now)
		rows = append(rows, []string{
			a.Task.Title,
			Tags(a.Task.Tags),
			Dim(domain.CoalesceStr(a.Task.ID, "--")),
			fmt.Sprintf("%d", len(a.Records)),
			Duration(d),
			RenderShare(float64(d), float64(total), 12),
		})
	}
	footer := []string{"Total", "", "", "", timeutil.FormatDuration(total), ""}
	return RenderBox(title, RenderTable(headers, rows, footer...))
}

// FormatDay renders the records of a single day in start order per activity.
func FormatDay(day time.Time, acts []domain.Activity, now time.Time) string {
	title := "Day · " + HumanDateFrom(day, now)
	if len(acts) == 0 {
		return RenderBox(title, Dim("Nothing logged."))
	}

	headers := []string{"START", "END", "TASK", "TAGS", "DURATION"}
	var rows [][]string
	for _, a := range acts {
		for _, r := range a.Records {
			end := Running()
			if r.EndTime != nil {
				end = ClockTime(*r.EndTime, day.Location())
			}
			rows = append(rows, []string{
				ClockTime(r.StartTime, day.Location()),
				end,
				a.Task.Title,
				Tags(a.Task.Tags),
				Duration(r.Duration(now)),
			})
		}
	}
	footer := []string{"", "", "Total", "", timeutil.ActivitiesDuration(acts, now)}
	return RenderBox(title, RenderTable(headers, rows, footer...))
}

// WeekDay is one row of a week summary.
type WeekDay struct {
	Date       time.Time
	Activities []domain.Activity
}

// FormatWeek renders per-day totals for a week.
func FormatWeek(year, week int, days []WeekDay, now time.Time) string {
	headers := []string{"DAY", "DATE", "ACTIVITIES", "DURATION"}
	rows := make([][]string, 0, len(days))
	var total time.Duration
	for _, d := range days {
		sum := timeutil.SumActivities(d.Activities, now)
		total += sum
		titles := make([]string, 0, len(d.Activities))
		for _, a := range d.Activities {
			titles = append(titles, a.Task.Title)
		}
		rows = append(rows, []string{
			d.Date.Weekday().String()[:3],
			d.Date.Format(time.DateOnly),
			Dim(strings.Join(titles, ", ")),
			Duration(sum),
		})
	}
	footer := []string{"Total", "", "", timeutil.FormatDuration(total)}
	return RenderBox(fmt.Sprintf("Week %d · %d", week, year), RenderTable(headers, rows, footer...))
}
