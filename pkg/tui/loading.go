package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingIndicator shows a spinner while a search is in flight
type LoadingIndicator struct {
	Active  bool
	Spinner spinner.Model
	Label   string
}

// NewLoadingIndicator creates a new loading indicator with spinner
func NewLoadingIndicator() *LoadingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &LoadingIndicator{
		Spinner: s,
		Label:   "Finding cities...",
	}
}

// Start shows the indicator and starts the spinner
func (l *LoadingIndicator) Start() tea.Cmd {
	l.Active = true
	return l.Spinner.Tick
}

// Stop hides the indicator. Pending ticks are dropped by Update.
func (l *LoadingIndicator) Stop() {
	l.Active = false
}

// Update handles spinner ticks while active
func (l *LoadingIndicator) Update(msg tea.Msg) (bool, tea.Cmd) {
	if !l.Active {
		return false, nil
	}

	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.Spinner, cmd = l.Spinner.Update(tick)
		return true, cmd
	}

	return false, nil
}

// View renders the spinner and label
func (l *LoadingIndicator) View() string {
	if !l.Active {
		return ""
	}
	return fmt.Sprintf("%s %s", l.Spinner.View(), DescriptionStyle.Render(l.Label))
}
