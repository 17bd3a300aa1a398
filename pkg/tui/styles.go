package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by the header, the form and the results pane
const (
	ColorActive   = "37"  // teal accent for focus and the active tab
	ColorInactive = "240" // unfocused labels
	ColorSelected = "236" // cursor row background
	ColorNormal   = "245"
	ColorDim      = "241"
	ColorVeryDim  = "242"
	ColorWhite    = "255"
	ColorError    = "196"
)

var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	// Submit button, normal and disabled while a search runs
	ButtonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 2)

	ButtonFocusedStyle = ButtonStyle.
				Underline(true)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorSelected)).
				Foreground(lipgloss.Color(ColorVeryDim)).
				Padding(0, 2)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("23")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// FieldLabelStyle highlights the label of the focused form field
func FieldLabelStyle(focused bool) lipgloss.Style {
	color := ColorInactive
	if focused {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// CheckboxStyle colors an experience checkbox with its badge color when checked
func CheckboxStyle(checked bool, color string) lipgloss.Style {
	if !checked {
		return NormalStyle
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)
}
