package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gesnake/internal/storage"
)

var summaryTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	MarginBottom(1)

// RenderSummary renders the rounds of a run as a table followed by totals.
// It is printed after the program exits, whichever frontend was used.
func RenderSummary(rounds []storage.Round, st storage.Stats) string {
	if len(rounds) == 0 {
		return "No rounds played.\n"
	}

	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Gestures", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Ended by", Width: 9},
	}

	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Gestures),
			r.Duration().Round(time.Second).String(),
			string(r.Reason),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed summary
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("SESSION SUMMARY"))
	b.WriteRune('\n')
	b.WriteString(t.View())
	b.WriteRune('\n')
	b.WriteString(fmt.Sprintf("Rounds %d  Best %d  Average %.1f  Gestures %d\n",
		st.Rounds, st.Best, st.Average, st.Gestures))
	return b.String()
}
