// Package tui is the interactive trip planner: a form, a results pane and
// a tab strip, driven by the shared ui.FormHandler.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tripplan/tripplan-terminal/pkg/models"
	"github.com/tripplan/tripplan-terminal/pkg/ui"
)

type sessionState int

const (
	formView sessionState = iota
	resultsView
)

// Submitter runs one form submission
type Submitter interface {
	Submit(ctx context.Context, in ui.FormInput) ui.SubmitResult
}

type App struct {
	state     sessionState
	form      *FormModel
	results   *ResultsModel
	handler   Submitter
	ctx       context.Context
	cancel    context.CancelFunc // aborts an in-flight search on quit
	loading   bool
	hovered   int
	width     int
	height    int
	statusMsg string
}

// NewApp builds the TUI around a submit handler and the loaded settings
func NewApp(ctx context.Context, handler Submitter, settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &App{
		state:   formView,
		form:    NewFormModel(settings.ExperienceTypes),
		results: NewResultsModel(settings),
		handler: handler,
		ctx:     ctx,
		cancel:  cancel,
		hovered: -1,
	}
}

func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

// submitDoneMsg carries the outcome of a submission back to the event loop
type submitDoneMsg struct {
	result ui.SubmitResult
}

func (a *App) runSubmit(input ui.FormInput) tea.Cmd {
	handler, ctx := a.handler, a.ctx
	return func() tea.Msg {
		return submitDoneMsg{result: handler.Submit(ctx, input)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetSize(msg.Width, msg.Height)
		// header, pane title, footer and status line
		a.results.SetSize(msg.Width-2, msg.Height-headerHeight-4)
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			a.cancel()
			return a, tea.Quit
		case tea.KeyF1:
			return a, switchTo(formView)
		case tea.KeyF2:
			return a, switchTo(resultsView)
		}

	case tea.MouseMsg:
		if handled, cmd := a.handleHeaderMouse(msg); handled {
			return a, cmd
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		a.state = msg.view
		return a, nil

	case submitRequestedMsg:
		if a.loading {
			a.statusMsg = ui.MsgBusy
			return a, nil
		}
		a.loading = true
		a.statusMsg = ""
		a.form.ClearNotice()
		return a, tea.Batch(a.form.SetLoading(true), a.runSubmit(msg.input))

	case submitDoneMsg:
		a.loading = false
		a.form.SetLoading(false)
		return a, a.handleResult(msg.result)

	case spinner.TickMsg:
		// the form owns the spinner even while the results tab is shown
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.state {
	case formView:
		a.form, cmd = a.form.Update(msg)
	case resultsView:
		a.results, cmd = a.results.Update(msg)
	}
	return a, cmd
}

func (a *App) handleResult(res ui.SubmitResult) tea.Cmd {
	switch res.Kind {
	case ui.KindResults:
		a.results.SetResults(res.Results)
		a.state = resultsView
		if len(res.Results) == 0 {
			a.statusMsg = "No matching cities"
		} else {
			a.statusMsg = fmt.Sprintf("Found %d cities", len(res.Results))
		}
	case ui.KindBusy:
		a.statusMsg = res.Message
	default:
		a.form.SetNotice(res)
		a.state = formView
	}
	return nil
}

func (a *App) handleHeaderMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	onTabs := msg.Y >= tabRowTop && msg.Y < headerHeight
	idx := -1
	if onTabs {
		idx = tabAt(msg.X)
	}
	a.hovered = idx

	if idx >= 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return true, switchTo(navTabs[idx].view)
	}
	return onTabs, nil
}

func switchTo(view sessionState) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: view}
	}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case formView:
		content = a.form.View()
	case resultsView:
		content = a.results.View()
	default:
		content = "Unknown view"
	}

	content = lipgloss.JoinVertical(lipgloss.Left, renderHeader(a.width, a.state, a.hovered), content)

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusBarStyle.Render(a.statusMsg))
	}

	return content
}

// Messages for communication between views
type StatusMsg string

type SwitchViewMsg struct {
	view sessionState
}
