package cli

import (
	"time"

	"github.com/alexanderramin/clocklog/internal/clock"
	"github.com/alexanderramin/clocklog/internal/service"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands need.
type App struct {
	Records   service.RecordRepository
	Clock     clock.Clock
	WeekStart time.Weekday

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// PromptEntry asks for a raw entry line when none was given.
	PromptEntry func(parseTime bool) (string, error)
}

func (a *App) now() time.Time {
	return clock.Or(a.Clock).Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "clocklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "clocklog",
		Short:        "Log work against tagged tasks and total it by tag, day or week",
		SilenceUsage: true,
	}

	root.AddCommand(
		newAddCmd(app),
		newLogCmd(app),
		newTagsCmd(app),
		newDayCmd(app),
		newWeekCmd(app),
		newReportCmd(app),
	)

	return root
}
