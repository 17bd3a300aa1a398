package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle is the heading drawn at the top of each pane, with an optional
// dim detail after it ("Results  12 cities").
type ViewTitle struct {
	text   string
	detail string
}

func NewViewTitle(text string) *ViewTitle {
	return &ViewTitle{text: text}
}

// WithDetail sets the dim text shown after the title
func (v *ViewTitle) WithDetail(detail string) *ViewTitle {
	v.detail = detail
	return v
}

func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorActive)).
		Bold(true).
		Padding(0, 1)

	title := titleStyle.Render(v.text)
	if v.detail == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", DescriptionStyle.Render(v.detail))
}
