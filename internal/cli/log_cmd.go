package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/clocklog/internal/domain"
	"github.com/alexanderramin/clocklog/internal/timeutil"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var title, id string
	var tags []string
	start := &timeValue{now: app.now}
	end := &timeValue{now: app.now}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a record for a task with explicit start and end",
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt := app.now()
			if start.t != nil {
				startAt = *start.t
			}
			record, err := domain.NewRecord(startAt, end.t)
			if err != nil {
				return err
			}
			for i, tag := range tags {
				tags[i] = strings.TrimPrefix(tag, "+")
			}
			task := domain.NewTask(title, tags, id)
			if task.Title == "" {
				return fmt.Errorf("--title must not be blank")
			}

			app.Records.AddRecord(cmd.Context(), task, record)

			length := "running"
			if !record.Running() {
				length = timeutil.FormatDuration(record.Duration(startAt))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted: %s at %s (%s)\n",
				task.Label(), record.StartTime.Format("2006-01-02 15:04"), length)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Task tag (repeatable)")
	cmd.Flags().StringVar(&id, "id", "", "Task id")
	cmd.Flags().Var(start, "start", "Start time (HH:MM today, \"YYYY-MM-DD HH:MM\" or RFC3339; default now)")
	cmd.Flags().Var(end, "end", "End time; omit to leave the record running")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
