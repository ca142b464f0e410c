package tui

import (
	"fmt"
	"strings"

	"github.com/lininnin/mindtrack/internal/constants"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MindTrack · Today So Far"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("refresh failed: %v", m.err)))
		b.WriteString("\n\n")
	}
	if !m.reminderAt.IsZero() {
		b.WriteString(reminderStyle.Render(
			fmt.Sprintf("⏰ %s: time for a wellness check-in (mindtrack wellness log)", m.reminderAt.Format(constants.TimeFormat))))
		b.WriteString("\n\n")
	}

	b.WriteString(sectionStyle.Render("Goals"))
	b.WriteString("\n")
	if len(m.snapshot.Goals) == 0 {
		b.WriteString(mutedStyle.Render("  none selected for today"))
		b.WriteString("\n")
	}
	for _, g := range m.snapshot.Goals {
		fmt.Fprintf(&b, "  %s %s %s\n", g.Name, mutedStyle.Render("["+g.Period+"]"), g.Progress)
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Completed"))
	b.WriteString("\n")
	if len(m.snapshot.CompletedItems) == 0 {
		b.WriteString(mutedStyle.Render("  nothing completed yet"))
		b.WriteString("\n")
	}
	for _, item := range m.snapshot.CompletedItems {
		fmt.Fprintf(&b, "  %s %s %s\n", mutedStyle.Render(string(item.Type)), item.Name, mutedStyle.Render("("+item.Category+")"))
	}
	fmt.Fprintf(&b, "\n  Task completion rate: %d%%\n", m.snapshot.CompletionRate)

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Wellness"))
	b.WriteString("\n")
	if len(m.snapshot.WellnessEntries) == 0 {
		b.WriteString(mutedStyle.Render("  no entries logged today"))
		b.WriteString("\n")
	}
	for _, w := range m.snapshot.WellnessEntries {
		fmt.Fprintf(&b, "  %s mood=%s stress=%d energy=%d fatigue=%d\n",
			w.Time, w.Mood, w.Stress, w.Energy, w.Fatigue)
	}

	if !m.refreshedAt.IsZero() {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("last refresh " + m.refreshedAt.Format(constants.TimeFormat)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}
