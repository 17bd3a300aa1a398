package render

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

func sampleResults() models.ResultList {
	return models.ResultList{
		{Name: "Goa", MatchScore: models.Float64(87.5), MatchingTypes: []string{"Beach", "Nightlife"}},
		{Name: "", MatchScore: nil, MatchingTypes: nil},
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  string
	}{
		{"two decimals", models.Float64(87.5), "87.50"},
		{"rounds", models.Float64(66.666), "66.67"},
		{"integer", models.Float64(100), "100.00"},
		{"missing", nil, "0.00"},
		{"nan", models.Float64(math.NaN()), "0.00"},
		{"inf", models.Float64(math.Inf(1)), "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScore(models.CityResult{MatchScore: tt.score}))
		})
	}
}

func TestTypesLabel(t *testing.T) {
	assert.Equal(t, "Beach, Heritage", TypesLabel(models.CityResult{MatchingTypes: []string{"Beach", "Heritage"}}))
	assert.Equal(t, TypesPlaceholder, TypesLabel(models.CityResult{}))
	assert.Equal(t, TypesPlaceholder, TypesLabel(models.CityResult{MatchingTypes: []string{" ", ""}}))
}

func TestHTMLEmptyList(t *testing.T) {
	for _, list := range []models.ResultList{nil, {}} {
		out, err := HTML(list, Options{ShowRank: true})
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(out, `class="card`), "exactly one card")
		assert.Contains(t, out, EmptyTitle)
		assert.Contains(t, out, EmptyHint)
	}
}

func TestHTMLSingleResult(t *testing.T) {
	list := models.ResultList{{Name: "Goa", MatchScore: models.Float64(87.5), MatchingTypes: []string{"Beach"}}}

	out, err := HTML(list, Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "87.50% match")
	assert.Contains(t, out, "<h4>Goa</h4>")
	assert.Contains(t, out, "Beach")
	assert.NotContains(t, out, `class="rank"`)
	assert.Equal(t, 1, strings.Count(out, `class="card"`))
}

func TestHTMLRanksAndFallbacks(t *testing.T) {
	out, err := HTML(sampleResults(), Options{ShowRank: true})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, `class="card"`))
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "Unknown")
	assert.Contains(t, out, "0.00% match")
	assert.Contains(t, out, TypesPlaceholder)

	// Order is preserved
	assert.Less(t, strings.Index(out, "Goa"), strings.Index(out, "Unknown"))
}

func TestHTMLEscapesContent(t *testing.T) {
	list := models.ResultList{{Name: "<script>alert(1)</script>", MatchScore: models.Float64(1), MatchingTypes: []string{"Food & Culture"}}}

	out, err := HTML(list, Options{})
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "Food &amp; Culture")
}

func TestErrorAndMessageHTML(t *testing.T) {
	out := ErrorHTML("bad input")
	assert.Contains(t, out, "Error: bad input")
	assert.Contains(t, out, `class="card error"`)

	out = MessageHTML("Please enter a valid budget.")
	assert.Contains(t, out, "<p>Please enter a valid budget.</p>")
	assert.Contains(t, out, `class="card"`)

	assert.Contains(t, ErrorHTML("<b>"), "&lt;b&gt;")
}

func TestPlainText(t *testing.T) {
	out := PlainText(sampleResults(), Options{ShowRank: true})
	assert.Contains(t, out, "#1 Goa (87.50% match)")
	assert.Contains(t, out, "Matching types: Beach, Nightlife")
	assert.Contains(t, out, "#2 Unknown (0.00% match)")

	assert.Contains(t, PlainText(nil, Options{}), EmptyTitle)
}

func TestCards(t *testing.T) {
	cards := Cards(sampleResults(), TerminalOptions{Options: Options{ShowRank: true}, Width: 60})
	require.Len(t, cards, 2)

	assert.Contains(t, cards[0], "Goa")
	assert.Contains(t, cards[0], "87.50% match")
	assert.Contains(t, cards[0], "Beach")
	assert.Contains(t, cards[0], "#1")
	assert.Contains(t, cards[1], "Unknown")
	assert.Contains(t, cards[1], TypesPlaceholder)
}

func TestCardsEmpty(t *testing.T) {
	cards := Cards(nil, TerminalOptions{Width: 60})
	require.Len(t, cards, 1)
	assert.Contains(t, cards[0], EmptyTitle)
}

func TestCardsRevealedMaskKeepsContent(t *testing.T) {
	opts := TerminalOptions{Width: 60, Revealed: []bool{true}}
	cards := Cards(sampleResults(), opts)
	require.Len(t, cards, 2)
	// Cards not yet revealed are dimmed, not dropped
	assert.Contains(t, cards[1], "Unknown")
}

func TestCardsNarrowWidth(t *testing.T) {
	cards := Cards(sampleResults(), TerminalOptions{Width: 5})
	require.Len(t, cards, 2)
	assert.Contains(t, cards[0], "Goa")
}

func TestErrorCard(t *testing.T) {
	assert.Contains(t, ErrorCard("bad input", 40), "Error: bad input")
	assert.Contains(t, MessageCard("Pick a type", 40), "Pick a type")
}
