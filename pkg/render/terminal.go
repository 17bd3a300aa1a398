package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

// Color constants
const (
	ColorActive  = "170" // Purple/magenta for city names
	ColorDim     = "241" // Dimmer gray
	ColorVeryDim = "242" // Even dimmer gray
	ColorBorder  = "243" // Border gray
	ColorWarning = "214" // Orange/yellow for middling scores
	ColorSuccess = "28"  // Green for strong matches
	ColorError   = "196" // Red for errors
	ColorDark    = "235" // Dark text on badges
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)

	hiddenCardStyle = cardStyle.
			BorderForeground(lipgloss.Color(ColorVeryDim)).
			Foreground(lipgloss.Color(ColorVeryDim))

	errorCardStyle = cardStyle.
			BorderForeground(lipgloss.Color(ColorError))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	errorTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))
)

// TerminalOptions extends Options with layout and color information
type TerminalOptions struct {
	Options
	Width int
	// Catalogue supplies badge colors for matching types by name
	Catalogue []models.ExperienceType
	// Revealed marks which cards have scrolled into view; nil shows all
	Revealed []bool
}

// scoreStyle picks a badge color from the strength of the match
func scoreStyle(score float64) lipgloss.Style {
	color := ColorDim
	switch {
	case score >= 75:
		color = ColorSuccess
	case score >= 40:
		color = ColorWarning
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("255")).
		Bold(true).
		Padding(0, 1)
}

func typeColor(name string, catalogue []models.ExperienceType) string {
	for _, t := range catalogue {
		if strings.EqualFold(t.Name, name) {
			return models.GetExperienceColor(t.Name, t.Color)
		}
	}
	return models.GetExperienceColor(name, "")
}

// Cards renders each city as a bordered terminal card.
// The empty list renders a single "no matches" card.
func Cards(list models.ResultList, opts TerminalOptions) []string {
	width := opts.Width
	if width < 20 {
		width = 20
	}
	inner := width - 4 // border + padding

	if len(list) == 0 {
		body := nameStyle.Render(EmptyTitle) + "\n" +
			labelStyle.Render(wordwrap.String(EmptyHint, inner))
		return []string{cardStyle.Width(width - 2).Render(body)}
	}

	cards := make([]string, len(list))
	for i, c := range list {
		var b strings.Builder

		if opts.ShowRank {
			b.WriteString(rankStyle.Render(RankLabel(i)) + " ")
		}
		b.WriteString(nameStyle.Render(c.DisplayName()))
		b.WriteString("  ")
		b.WriteString(scoreStyle(c.Score()).Render(MatchLabel(c)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Matching types: "))
		b.WriteString(typeBadges(c, opts.Catalogue, inner))

		style := cardStyle
		if opts.Revealed != nil && (i >= len(opts.Revealed) || !opts.Revealed[i]) {
			style = hiddenCardStyle
		}
		cards[i] = style.Width(width - 2).Render(b.String())
	}
	return cards
}

func typeBadges(c models.CityResult, catalogue []models.ExperienceType, width int) string {
	label := TypesLabel(c)
	if label == TypesPlaceholder {
		return label
	}

	wrapped := wordwrap.String(label, width)
	var lines []string
	for _, line := range strings.Split(wrapped, "\n") {
		parts := strings.Split(line, ", ")
		for j, p := range parts {
			name := strings.TrimSuffix(strings.TrimSpace(p), ",")
			parts[j] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(typeColor(name, catalogue))).
				Render(p)
		}
		lines = append(lines, strings.Join(parts, ", "))
	}
	return strings.Join(lines, "\n")
}

// ErrorCard renders an error message in the terminal card style
func ErrorCard(msg string, width int) string {
	if width < 20 {
		width = 20
	}
	text := wordwrap.String("Error: "+msg, width-4)
	return errorCardStyle.Width(width - 2).Render(errorTextStyle.Render(text))
}

// MessageCard renders a neutral notice such as a validation message
func MessageCard(msg string, width int) string {
	if width < 20 {
		width = 20
	}
	return cardStyle.Width(width - 2).Render(wordwrap.String(msg, width-4))
}
