package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tripplan/tripplan-terminal/pkg/ui"
)

type navTab struct {
	label string
	view  sessionState
}

var navTabs = []navTab{
	{label: "Plan", view: formView},
	{label: "Results", view: resultsView},
}

const (
	headerPaddingLeft = 1
	tabGap            = 1
	// The title occupies row 0, tabs rows 1 and 2
	tabRowTop    = 1
	headerHeight = 3
)

var (
	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive)).
			Bold(true).
			Padding(0, 1)
)

func tabWidth(t navTab) int {
	return lipgloss.Width(t.label) + 2
}

// tabAt returns the index of the tab under column x, or -1
func tabAt(x int) int {
	col := headerPaddingLeft
	for i, t := range navTabs {
		w := tabWidth(t)
		if x >= col && x < col+w {
			return i
		}
		col += w + tabGap
	}
	return -1
}

// liftRows converts a hover transform into whole terminal rows
func liftRows(t ui.Transform) int {
	if t.Lifted() {
		return 1
	}
	return 0
}

// renderHeader draws the title line and a two-row tab strip. A hovered tab
// sits on the upper row, every other tab on the lower one.
func renderHeader(width int, active sessionState, hovered int) string {
	title := logoStyle.Render("✈ tripplan")

	var upper, lower strings.Builder
	pad := strings.Repeat(" ", headerPaddingLeft)
	upper.WriteString(pad)
	lower.WriteString(pad)

	for i, t := range navTabs {
		if i > 0 {
			gap := strings.Repeat(" ", tabGap)
			upper.WriteString(gap)
			lower.WriteString(gap)
		}

		style := tabStyle
		if t.view == active {
			style = activeTabStyle
		}
		label := style.Render(t.label)
		blank := strings.Repeat(" ", tabWidth(t))

		event := ui.PointerLeave
		if i == hovered {
			event = ui.PointerEnter
		}
		if liftRows(ui.NavHover(event)) > 0 {
			upper.WriteString(label)
			lower.WriteString(blank)
		} else {
			upper.WriteString(blank)
			lower.WriteString(label)
		}
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingLeft(headerPaddingLeft).Render(title),
		upper.String(),
		lower.String(),
	)
	return lipgloss.NewStyle().Width(width).Render(header)
}
