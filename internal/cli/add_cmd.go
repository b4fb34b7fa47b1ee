package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var noTime bool

	cmd := &cobra.Command{
		Use:   "add [HH:MM] TEXT...",
		Short: "Log a raw entry such as \"11:00 Write report +work .42\"",
		Long: `Log a raw entry. The entry starts with an HH:MM time unless --no-time is
given, in which case it starts now. Words prefixed with + are tags, a word
prefixed with . is the task id, everything else is the task title. An entry
with only an id continues the task with that id.

Starting an entry stops whatever was running.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parseTime := !noTime
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				if app.PromptEntry == nil || !app.interactive() {
					return fmt.Errorf("entry text is required")
				}
				var err error
				if text, err = app.PromptEntry(parseTime); err != nil {
					return err
				}
			}

			// Failures are logged by the repository, not returned.
			app.Records.AddRaw(cmd.Context(), text, parseTime)
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted: %s\n", text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noTime, "no-time", false, "Start the entry now instead of reading a leading HH:MM")
	return cmd
}
