package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tripplan/tripplan-terminal/pkg/models"
	"github.com/tripplan/tripplan-terminal/pkg/render"
	"github.com/tripplan/tripplan-terminal/pkg/ui"
)

// clipboardWriter is swapped out in tests
var clipboardWriter = clipboard.WriteAll

// ResultsModel shows city cards in a scrolling pane. Cards fade in as they
// enter the reveal zone of the pane.
type ResultsModel struct {
	viewport  viewport.Model
	results   models.ResultList
	elements  []ui.Element
	opts      render.TerminalOptions
	threshold float64
	hasData   bool
}

// NewResultsModel creates an empty results pane
func NewResultsModel(settings *models.Settings) *ResultsModel {
	threshold := settings.UI.RevealThreshold
	if threshold <= 0 {
		threshold = ui.DefaultRevealThreshold
	}
	return &ResultsModel{
		viewport: viewport.New(80, 20),
		opts: render.TerminalOptions{
			Options:   render.Options{ShowRank: settings.UI.ShowRank},
			Catalogue: settings.ExperienceTypes,
		},
		threshold: threshold,
	}
}

func (m *ResultsModel) Init() tea.Cmd {
	return nil
}

// SetSize resizes the pane and re-runs the reveal check
func (m *ResultsModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.opts.Width = width - 2
	m.refresh()
}

// SetResults replaces the shown cards and scrolls back to the top
func (m *ResultsModel) SetResults(list models.ResultList) {
	m.results = list
	m.hasData = true
	m.elements = make([]ui.Element, len(list))
	for i := range list {
		m.elements[i].ID = fmt.Sprintf("city-%d", i)
	}
	m.viewport.GotoTop()
	m.refresh()
}

// Revealed reports which cards have been revealed so far
func (m *ResultsModel) Revealed() []bool {
	out := make([]bool, len(m.elements))
	for i, el := range m.elements {
		out[i] = el.HasClass(ui.VisibleClass)
	}
	return out
}

// refresh lays the cards out, runs the reveal rule against the current
// scroll position and redraws.
func (m *ResultsModel) refresh() {
	if !m.hasData {
		return
	}

	m.opts.Revealed = m.Revealed()
	cards := render.Cards(m.results, m.opts)

	if len(m.elements) > 0 {
		heights := make([]int, len(cards))
		for i, c := range cards {
			heights[i] = lipgloss.Height(c)
		}
		for i, r := range ui.StackRects(heights, m.viewport.YOffset) {
			m.elements[i].Rect = r
		}
		m.elements = ui.RevealWithThreshold(m.elements, float64(m.viewport.Height), m.threshold)

		m.opts.Revealed = m.Revealed()
		cards = render.Cards(m.results, m.opts)
	}

	offset := m.viewport.YOffset
	m.viewport.SetContent(strings.Join(cards, "\n"))
	m.viewport.SetYOffset(offset)
}

func (m *ResultsModel) copyResults() tea.Cmd {
	text := render.PlainText(m.results, m.opts.Options)
	count := len(m.results)
	return func() tea.Msg {
		if err := clipboardWriter(text); err != nil {
			return StatusMsg(fmt.Sprintf("✗ Failed to copy to clipboard: %v", err))
		}
		return StatusMsg(fmt.Sprintf("✓ Copied %d cities to clipboard", count))
	}
}

func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return SwitchViewMsg{view: formView}
			}
		case "y":
			if m.hasData {
				return m, m.copyResults()
			}
			return m, nil
		}
		m.viewport, cmd = m.viewport.Update(msg)
		m.refresh()
		return m, cmd

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		m.refresh()
		return m, cmd
	}

	return m, nil
}

func (m *ResultsModel) View() string {
	if !m.hasData {
		return ContentPaddingStyle.Render(DescriptionStyle.Render("No search yet. Fill in the form on the Plan tab."))
	}

	title := NewViewTitle("Results").WithDetail(fmt.Sprintf("%d cities", len(m.results)))
	footer := DescriptionStyle.Render("↑/↓ scroll • y: copy • esc: back to form")
	return ContentPaddingStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title.View(), m.viewport.View(), footer))
}
