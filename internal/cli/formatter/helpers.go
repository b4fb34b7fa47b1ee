package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/clocklog/internal/timeutil"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDateFrom returns "Today", "Yesterday" or a "Mon Jan 2, 2006" date
// relative to now.
func HumanDateFrom(t, now time.Time) string {
	t = t.In(now.Location())
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon Jan 2, 2006")
}

// ClockTime renders the wall-clock part of t as 15:04 in loc.
func ClockTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// Tags renders a tag list as "+a +b", dimmed, or "--" when empty.
func Tags(tags []string) string {
	if len(tags) == 0 {
		return StyleDim.Render("--")
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "+" + t
	}
	return StylePurple.Render(strings.Join(parts, " "))
}

// Duration renders d as HH:MM in the foreground style.
func Duration(d time.Duration) string {
	return StyleFg.Render(timeutil.FormatDuration(d))
}
