package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"wanderly/internal/itinerary"
)

var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

// printer renders with lipgloss styles only when color is on, so piped
// output stays free of escape codes.
type printer struct {
	w     io.Writer
	color bool
}

func (p printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func outcomeStyle(o itinerary.Outcome) lipgloss.Style {
	switch o {
	case itinerary.OutcomeApplied:
		return styleGreen
	case itinerary.OutcomeNotFound, itinerary.OutcomeAmbiguous:
		return styleYellow
	default:
		return styleRed
	}
}

func (p printer) result(res itinerary.Result) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(outcomeStyle(res.Outcome), "["+string(res.Outcome)+"]"), res.Message)
}

func (p printer) itinerary(days itinerary.Itinerary) {
	for _, d := range days {
		header := fmt.Sprintf("Day %d", d.Day)
		if d.Date != "" && d.Date != header {
			header += " · " + d.Date
		}
		fmt.Fprintln(p.w, p.paint(styleHeader, header))
		if len(d.Activities) == 0 {
			fmt.Fprintln(p.w, p.paint(styleDim, "  (nothing planned)"))
			continue
		}
		for _, a := range d.Activities {
			line := fmt.Sprintf("  %-8s %s", a.Time, a.Title)
			if loc := strings.TrimSpace(a.Location); loc != "" {
				line += p.paint(styleDim, " @ "+loc)
			}
			fmt.Fprintln(p.w, line)
		}
	}
}
