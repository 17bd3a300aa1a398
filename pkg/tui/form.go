package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tripplan/tripplan-terminal/pkg/models"
	"github.com/tripplan/tripplan-terminal/pkg/planner"
	"github.com/tripplan/tripplan-terminal/pkg/render"
	"github.com/tripplan/tripplan-terminal/pkg/ui"
)

const (
	fieldBudget = iota
	fieldDuration
	fieldExperience
	fieldSubmit
	fieldCount
)

// submitRequestedMsg asks the app to run the form handler
type submitRequestedMsg struct {
	input ui.FormInput
}

// FormModel is the trip form: two numeric inputs, experience checkboxes and a submit button
type FormModel struct {
	budget   textinput.Model
	duration textinput.Model
	types    []models.ExperienceType
	checked  map[int]bool
	cursor   int // highlighted experience type
	focus    int
	loading  bool
	loader   *LoadingIndicator
	width    int

	notice      string
	noticeError bool
	noticeField planner.Field
}

// NewFormModel creates the form for a catalogue of experience types
func NewFormModel(types []models.ExperienceType) *FormModel {
	budget := textinput.New()
	budget.Placeholder = "e.g. 25000"
	budget.CharLimit = 12
	budget.Width = 20
	budget.Prompt = "> "
	budget.Validate = planner.CheckBudgetInput

	duration := textinput.New()
	duration.Placeholder = "days"
	duration.CharLimit = 4
	duration.Width = 20
	duration.Prompt = "> "
	duration.Validate = planner.CheckDurationInput

	m := &FormModel{
		budget:   budget,
		duration: duration,
		types:    models.SortExperienceTypes(types),
		checked:  make(map[int]bool),
		loader:   NewLoadingIndicator(),
	}
	m.updateFocus()
	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the width used for notices
func (m *FormModel) SetSize(width, height int) {
	m.width = width
}

// Input returns the current raw form state in catalogue order
func (m *FormModel) Input() ui.FormInput {
	var selected []string
	for _, t := range m.types {
		if m.checked[t.ID] {
			selected = append(selected, strconv.Itoa(t.ID))
		}
	}
	return ui.FormInput{
		Budget:     m.budget.Value(),
		Duration:   m.duration.Value(),
		Experience: selected,
	}
}

// SetLoading disables the submit control while a search runs
func (m *FormModel) SetLoading(loading bool) tea.Cmd {
	m.loading = loading
	if loading {
		return m.loader.Start()
	}
	m.loader.Stop()
	return nil
}

// SetNotice shows a validation or error card under the form
func (m *FormModel) SetNotice(res ui.SubmitResult) {
	m.notice = res.Message
	m.noticeError = res.Kind != ui.KindValidation
	m.noticeField = res.Field
	if res.Kind == ui.KindValidation {
		m.focusField(res.Field)
	}
}

// ClearNotice removes any card shown under the form
func (m *FormModel) ClearNotice() {
	m.notice = ""
	m.noticeField = ""
}

func (m *FormModel) focusField(f planner.Field) {
	switch f {
	case planner.FieldBudget:
		m.focus = fieldBudget
	case planner.FieldDuration:
		m.focus = fieldDuration
	case planner.FieldExperience:
		m.focus = fieldExperience
	}
	m.updateFocus()
}

func (m *FormModel) updateFocus() {
	m.budget.Blur()
	m.duration.Blur()
	switch m.focus {
	case fieldBudget:
		m.budget.Focus()
	case fieldDuration:
		m.duration.Focus()
	}
}

func (m *FormModel) next() {
	m.focus = (m.focus + 1) % fieldCount
	m.updateFocus()
}

func (m *FormModel) prev() {
	m.focus = (m.focus + fieldCount - 1) % fieldCount
	m.updateFocus()
}

func (m *FormModel) toggle() {
	if len(m.types) == 0 {
		return
	}
	id := m.types[m.cursor].ID
	m.checked[id] = !m.checked[id]
}

func (m *FormModel) submit() tea.Cmd {
	if m.loading {
		return nil
	}
	input := m.Input()
	return func() tea.Msg {
		return submitRequestedMsg{input: input}
	}
}

func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	if handled, cmd := m.loader.Update(msg); handled {
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.String() {
	case "ctrl+s":
		return m, m.submit()

	case "tab":
		m.next()
		return m, nil

	case "shift+tab":
		m.prev()
		return m, nil

	case "enter":
		if m.focus == fieldExperience {
			m.toggle()
			return m, nil
		}
		return m, m.submit()
	}

	if m.focus == fieldExperience {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.prev()
			}
		case "down", "j":
			if m.cursor < len(m.types)-1 {
				m.cursor++
			} else {
				m.next()
			}
		case " ", "x":
			m.toggle()
		}
		return m, nil
	}

	switch key.String() {
	case "up":
		m.prev()
		return m, nil
	case "down":
		m.next()
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m *FormModel) updateInputs(msg tea.Msg) (*FormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldBudget:
		m.budget, cmd = m.budget.Update(msg)
	case fieldDuration:
		m.duration, cmd = m.duration.Update(msg)
	}
	// keep Err in step with the value after every edit
	m.budget.Err = m.budget.Validate(m.budget.Value())
	m.duration.Err = m.duration.Validate(m.duration.Value())
	return m, cmd
}

// inputHint renders the as-you-type error under a field, if any
func inputHint(in textinput.Model) string {
	if in.Err == nil {
		return ""
	}
	return "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(in.Err.Error())
}

func (m *FormModel) label(text string, field int, errField planner.Field) string {
	style := FieldLabelStyle(m.focus == field)
	if m.notice != "" && m.noticeField == errField {
		style = style.Foreground(lipgloss.Color(ColorError))
	}
	return style.Render(text)
}

func (m *FormModel) View() string {
	var b strings.Builder

	b.WriteString(NewViewTitle("Plan a trip").View())
	b.WriteString("\n\n")

	b.WriteString(m.label("Budget", fieldBudget, planner.FieldBudget))
	b.WriteString("\n")
	b.WriteString(m.budget.View())
	b.WriteString(inputHint(m.budget))
	b.WriteString("\n\n")

	b.WriteString(m.label("Duration (days)", fieldDuration, planner.FieldDuration))
	b.WriteString("\n")
	b.WriteString(m.duration.View())
	b.WriteString(inputHint(m.duration))
	b.WriteString("\n\n")

	b.WriteString(m.label("Place types", fieldExperience, planner.FieldExperience))
	b.WriteString("\n")
	for i, t := range m.types {
		box := "[ ]"
		if m.checked[t.ID] {
			box = "[x]"
		}
		line := box + " " + t.Name
		style := CheckboxStyle(m.checked[t.ID], models.GetExperienceColor(t.Name, t.Color))
		if m.focus == fieldExperience && i == m.cursor {
			style = SelectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(ButtonDisabledStyle.Render("Find cities"))
		b.WriteString("  ")
		b.WriteString(m.loader.View())
	case m.focus == fieldSubmit:
		b.WriteString(ButtonFocusedStyle.Render("Find cities"))
	default:
		b.WriteString(ButtonStyle.Render("Find cities"))
	}
	b.WriteString("\n")

	if m.notice != "" {
		width := m.width - 2
		if width <= 0 || width > 70 {
			width = 70
		}
		b.WriteString("\n")
		if m.noticeError {
			b.WriteString(render.ErrorCard(m.notice, width))
		} else {
			b.WriteString(render.MessageCard(m.notice, width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(DescriptionStyle.Render("tab: next field • space: toggle • enter/ctrl+s: search • ctrl+c: quit"))

	return ContentPaddingStyle.Render(b.String())
}
