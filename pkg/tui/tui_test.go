package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripplan/tripplan-terminal/pkg/models"
	"github.com/tripplan/tripplan-terminal/pkg/planner"
	"github.com/tripplan/tripplan-terminal/pkg/ui"
)

type stubSubmitter struct {
	inputs []ui.FormInput
	result ui.SubmitResult
}

func (s *stubSubmitter) Submit(ctx context.Context, in ui.FormInput) ui.SubmitResult {
	s.inputs = append(s.inputs, in)
	return s.result
}

func key(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(m *FormModel, s string) *FormModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func newTestApp(sub *stubSubmitter) *App {
	app := NewApp(context.Background(), sub, models.DefaultSettings())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

// drain runs a command and feeds every resulting message back into the app
func drain(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				drain(t, app, c)
			}
			return
		}
		// spinner ticks would loop forever
		if _, ok := msg.(submitDoneMsg); !ok {
			if _, ok := msg.(submitRequestedMsg); !ok {
				if _, ok := msg.(SwitchViewMsg); !ok {
					return
				}
			}
		}
		_, cmd = app.Update(msg)
	}
}

func TestFormInputCollectsCheckedTypesInOrder(t *testing.T) {
	m := NewFormModel(models.DefaultExperienceTypes())

	m = typeText(m, "15000")
	m, _ = m.Update(key("tab"))
	m = typeText(m, "6")
	m, _ = m.Update(key("tab"))

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("space")) // Heritage (3)
	m.cursor = 0
	m, _ = m.Update(key("x")) // Beach (1)

	in := m.Input()
	assert.Equal(t, "15000", in.Budget)
	assert.Equal(t, "6", in.Duration)
	assert.Equal(t, []string{"1", "3"}, in.Experience)
}

func TestFormHintsWhileTyping(t *testing.T) {
	m := NewFormModel(models.DefaultExperienceTypes())
	assert.NotContains(t, m.View(), planner.HintBudget)

	m = typeText(m, "-5")
	assert.Contains(t, m.View(), planner.HintBudget)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.NotContains(t, m.View(), planner.HintBudget, "an empty field is not flagged")

	m = typeText(m, "2500")
	assert.NotContains(t, m.View(), planner.HintBudget)

	m, _ = m.Update(key("tab"))
	m = typeText(m, "0")
	assert.Contains(t, m.View(), planner.HintDuration)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(m, "4")
	assert.NotContains(t, m.View(), planner.HintDuration)
}

func TestFormToggleTwiceUnchecks(t *testing.T) {
	m := NewFormModel(models.DefaultExperienceTypes())
	m.focus = fieldExperience
	m.updateFocus()

	m, _ = m.Update(key("space"))
	m, _ = m.Update(key("space"))
	assert.Empty(t, m.Input().Experience)
}

func TestFormEnterEmitsSubmit(t *testing.T) {
	m := NewFormModel(models.DefaultExperienceTypes())
	m = typeText(m, "100")

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(submitRequestedMsg)
	require.True(t, ok)
	assert.Equal(t, "100", msg.input.Budget)
}

func TestFormSubmitDisabledWhileLoading(t *testing.T) {
	m := NewFormModel(models.DefaultExperienceTypes())
	m.SetLoading(true)

	_, cmd := m.Update(key("ctrl+s"))
	if cmd != nil {
		_, isSubmit := cmd().(submitRequestedMsg)
		assert.False(t, isSubmit)
	}
	assert.Contains(t, m.View(), "Finding cities")
}

func TestFormNoticeFocusesField(t *testing.T) {
	m := NewFormModel(models.DefaultExperienceTypes())
	m.SetNotice(ui.SubmitResult{Kind: ui.KindValidation, Message: planner.MsgNoExperience, Field: planner.FieldExperience})

	assert.Equal(t, fieldExperience, m.focus)
	assert.Contains(t, m.View(), planner.MsgNoExperience)

	m.SetNotice(ui.SubmitResult{Kind: ui.KindHTTP, Message: "bad input"})
	assert.Contains(t, m.View(), "Error: bad input")
}

func TestAppSubmitShowsResults(t *testing.T) {
	sub := &stubSubmitter{result: ui.SubmitResult{
		Kind: ui.KindResults,
		Results: models.ResultList{
			{Name: "Goa", MatchScore: models.Float64(87.5), MatchingTypes: []string{"Beach"}},
			{Name: "Hampi", MatchScore: models.Float64(50), MatchingTypes: []string{"Heritage"}},
		},
	}}
	app := newTestApp(sub)

	_, cmd := app.Update(submitRequestedMsg{input: ui.FormInput{Budget: "1", Duration: "1", Experience: []string{"1"}}})
	assert.True(t, app.loading)
	drain(t, app, cmd)

	require.Len(t, sub.inputs, 1)
	assert.False(t, app.loading)
	assert.Equal(t, resultsView, app.state)
	assert.Equal(t, "Found 2 cities", app.statusMsg)

	view := app.View()
	assert.Contains(t, view, "Goa")
	assert.Contains(t, view, "87.50% match")
}

func TestAppSubmitFailureStaysOnForm(t *testing.T) {
	sub := &stubSubmitter{result: ui.SubmitResult{Kind: ui.KindTimeout, Message: "The request timed out after 30s. Please try again."}}
	app := newTestApp(sub)

	_, cmd := app.Update(submitRequestedMsg{})
	drain(t, app, cmd)

	assert.Equal(t, formView, app.state)
	assert.Contains(t, app.View(), "timed out")

	// Form stays usable: a second submission goes through
	sub.result = ui.SubmitResult{Kind: ui.KindResults, Results: models.ResultList{}}
	_, cmd = app.Update(submitRequestedMsg{})
	drain(t, app, cmd)
	assert.Len(t, sub.inputs, 2)
	assert.Equal(t, resultsView, app.state)
	assert.Equal(t, "No matching cities", app.statusMsg)
}

func TestAppSpinnerKeepsTickingOnResultsTab(t *testing.T) {
	app := newTestApp(&stubSubmitter{})
	start := app.form.SetLoading(true)
	require.NotNil(t, start)
	app.loading = true

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyF2})
	drain(t, app, cmd)
	require.Equal(t, resultsView, app.state)

	before := app.form.loader.Spinner.View()
	_, next := app.Update(start())
	assert.NotNil(t, next, "tick must schedule the next frame")
	assert.NotEqual(t, before, app.form.loader.Spinner.View())
}

// waitingSubmitter blocks until the request context ends
type waitingSubmitter struct{}

func (waitingSubmitter) Submit(ctx context.Context, in ui.FormInput) ui.SubmitResult {
	<-ctx.Done()
	return ui.SubmitResult{Kind: ui.KindError, Message: ctx.Err().Error()}
}

func TestAppCtrlCCancelsInFlightSearch(t *testing.T) {
	app := NewApp(context.Background(), waitingSubmitter{}, models.DefaultSettings())

	done := make(chan tea.Msg, 1)
	run := app.runSubmit(ui.FormInput{})
	go func() { done <- run() }()

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	select {
	case msg := <-done:
		res := msg.(submitDoneMsg).result
		assert.Equal(t, context.Canceled.Error(), res.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("search was not cancelled on quit")
	}
}

func TestAppIgnoresSubmitWhileLoading(t *testing.T) {
	sub := &stubSubmitter{}
	app := newTestApp(sub)
	app.loading = true

	_, cmd := app.Update(submitRequestedMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, ui.MsgBusy, app.statusMsg)
	assert.Empty(t, sub.inputs)
}

func TestResultsRevealOnScroll(t *testing.T) {
	list := make(models.ResultList, 12)
	for i := range list {
		list[i] = models.CityResult{Name: "City", MatchScore: models.Float64(10), MatchingTypes: []string{"Beach"}}
	}

	m := NewResultsModel(models.DefaultSettings())
	m.SetSize(60, 12)
	m.SetResults(list)

	revealed := m.Revealed()
	assert.True(t, revealed[0])
	assert.False(t, revealed[len(revealed)-1])

	m.viewport.GotoBottom()
	m.refresh()

	for i, r := range m.Revealed() {
		if i >= len(list)-2 {
			assert.True(t, r, "card %d should be revealed at the bottom", i)
		}
	}
	// First card stays revealed after scrolling past it
	assert.True(t, m.Revealed()[0])
}

func TestResultsCopy(t *testing.T) {
	var copied string
	orig := clipboardWriter
	clipboardWriter = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWriter = orig })

	m := NewResultsModel(models.DefaultSettings())
	m.SetSize(60, 20)
	m.SetResults(models.ResultList{{Name: "Goa", MatchScore: models.Float64(87.5)}})

	_, cmd := m.Update(key("y"))
	require.NotNil(t, cmd)
	status, ok := cmd().(StatusMsg)
	require.True(t, ok)
	assert.Contains(t, string(status), "Copied 1 cities")
	assert.Contains(t, copied, "Goa (87.50% match)")

	clipboardWriter = func(string) error { return errors.New("no display") }
	status = m.copyResults()().(StatusMsg)
	assert.Contains(t, string(status), "no display")
}

func TestResultsEscReturnsToForm(t *testing.T) {
	m := NewResultsModel(models.DefaultSettings())
	_, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchViewMsg{view: formView}, cmd())
}

func TestHeaderHoverLiftsTab(t *testing.T) {
	resting := renderHeader(80, formView, -1)
	lines := strings.Split(resting, "\n")
	require.GreaterOrEqual(t, len(lines), headerHeight)
	assert.NotContains(t, lines[1], "Results")
	assert.Contains(t, lines[2], "Results")

	hovered := renderHeader(80, formView, 1)
	lines = strings.Split(hovered, "\n")
	assert.Contains(t, lines[1], "Results")
	assert.NotContains(t, lines[2], "Results")
	assert.Contains(t, lines[2], "Plan")
}

func TestTabAt(t *testing.T) {
	assert.Equal(t, -1, tabAt(0))
	assert.Equal(t, 0, tabAt(headerPaddingLeft))
	assert.Equal(t, 1, tabAt(headerPaddingLeft+tabWidth(navTabs[0])+tabGap))
	assert.Equal(t, -1, tabAt(200))
}

func TestAppMouseHoverAndClick(t *testing.T) {
	app := newTestApp(&stubSubmitter{})
	x := headerPaddingLeft + tabWidth(navTabs[0]) + tabGap

	app.Update(tea.MouseMsg{X: x, Y: tabRowTop + 1, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, app.hovered)

	_, cmd := app.Update(tea.MouseMsg{X: x, Y: tabRowTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, resultsView, app.state)

	app.Update(tea.MouseMsg{X: 0, Y: 20, Action: tea.MouseActionMotion})
	assert.Equal(t, -1, app.hovered)
}
