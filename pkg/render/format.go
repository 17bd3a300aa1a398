// Package render turns recommendation results into cards for the page,
// the terminal and the clipboard.
package render

import (
	"fmt"
	"strings"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

const (
	EmptyTitle       = "No cities match your criteria"
	EmptyHint        = "Try adjusting budget, duration, or place types."
	TypesPlaceholder = "—"
)

// Options controls card content shared by every renderer
type Options struct {
	ShowRank bool
}

// FormatScore renders a score with two decimals, "0.00" when missing
func FormatScore(c models.CityResult) string {
	return fmt.Sprintf("%.2f", c.Score())
}

// MatchLabel is the score line shown on every card, e.g. "87.50% match"
func MatchLabel(c models.CityResult) string {
	return FormatScore(c) + "% match"
}

// TypesLabel joins the matching types or returns the placeholder
func TypesLabel(c models.CityResult) string {
	types := make([]string, 0, len(c.MatchingTypes))
	for _, t := range c.MatchingTypes {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return TypesPlaceholder
	}
	return strings.Join(types, ", ")
}

// RankLabel returns "#n" for a zero-based index
func RankLabel(i int) string {
	return fmt.Sprintf("#%d", i+1)
}

// PlainText renders results for the clipboard
func PlainText(list models.ResultList, opts Options) string {
	if len(list) == 0 {
		return EmptyTitle + "\n" + EmptyHint + "\n"
	}

	var b strings.Builder
	for i, c := range list {
		if opts.ShowRank {
			fmt.Fprintf(&b, "%s ", RankLabel(i))
		}
		fmt.Fprintf(&b, "%s (%s)\n", c.DisplayName(), MatchLabel(c))
		fmt.Fprintf(&b, "   Matching types: %s\n", TypesLabel(c))
	}
	return b.String()
}
