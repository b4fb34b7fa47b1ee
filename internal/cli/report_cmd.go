package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/clocklog/internal/cli/formatter"
	"github.com/alexanderramin/clocklog/internal/timeutil"
	"github.com/spf13/cobra"
)

func newTagsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tags TAG...",
		Short: "Total the activities carrying every given tag",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := make([]string, len(args))
			labels := make([]string, len(args))
			for i, a := range args {
				tags[i] = strings.TrimPrefix(a, "+")
				labels[i] = "+" + tags[i]
			}
			acts, err := app.Records.FilterByTag(cmd.Context(), tags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActivities("Tags "+strings.Join(labels, " "), acts, app.now()))
			return nil
		},
	}
}

func newDayCmd(app *App) *cobra.Command {
	date := &dateValue{now: app.now}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the records started on a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := date.Get()
			acts, err := app.Records.FilterByDate(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(day, acts, app.now()))
			return nil
		},
	}

	cmd.Flags().Var(date, "date", "Day to show (YYYY-MM-DD, today, yesterday)")
	return cmd
}

func newWeekCmd(app *App) *cobra.Command {
	date := &dateValue{now: app.now}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show per-day totals for the week containing a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := date.Get()
			days := make([]formatter.WeekDay, 0, 7)
			for i := 0; i < 7; i++ {
				weekday := time.Weekday((int(app.WeekStart) + i) % 7)
				day := timeutil.DayOfSameWeek(ref, weekday, app.WeekStart)
				acts, err := app.Records.FilterByDate(cmd.Context(), day)
				if err != nil {
					return err
				}
				days = append(days, formatter.WeekDay{Date: day, Activities: acts})
			}
			year, week := timeutil.WeekNumber(ref, app.WeekStart)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeek(year, week, days, app.now()))
			return nil
		},
	}

	cmd.Flags().Var(date, "date", "Any day of the week to show (YYYY-MM-DD, today, yesterday)")
	return cmd
}

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Total every activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			acts, err := app.Records.Activities(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActivities("All activities", acts, app.now()))
			return nil
		},
	}
}
