package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/clocklog/internal/cli/formatter"
	"github.com/alexanderramin/clocklog/internal/storage"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// clocklogHuhTheme returns a huh theme using the formatter palette.
func clocklogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// entryValidator checks that s parses as a raw entry. Task ids cannot be
// checked here; storage resolves them.
func entryValidator(parseTime bool, now func() time.Time) func(string) error {
	return func(s string) error {
		if _, err := storage.ParseEntry(s, parseTime, now()); err != nil {
			if parseTime {
				return fmt.Errorf("start with HH:MM, then a title or .id")
			}
			return fmt.Errorf("enter a title or .id")
		}
		return nil
	}
}

// entryForm builds the single-field form used by "add" without arguments.
func entryForm(parseTime bool, now func() time.Time, value *string) *huh.Form {
	placeholder := "11:00 Write report +work .42"
	if !parseTime {
		placeholder = "Write report +work .42"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Entry").
				Description("+tag adds a tag, .id names the task").
				Placeholder(placeholder).
				Value(value).
				Validate(entryValidator(parseTime, now)),
		),
	).WithTheme(clocklogHuhTheme()).WithShowHelp(false)
}

// HuhEntryPrompter returns a PromptEntry implementation backed by a huh form.
func HuhEntryPrompter(now func() time.Time) func(parseTime bool) (string, error) {
	return func(parseTime bool) (string, error) {
		var text string
		if err := entryForm(parseTime, now, &text).Run(); err != nil {
			return "", err
		}
		return text, nil
	}
}
