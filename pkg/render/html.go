package render

import (
	"bytes"
	"html/template"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

type htmlCard struct {
	Rank  string
	Name  string
	Match string
	Types string
}

var cardsTemplate = template.Must(template.New("cards").Parse(
	`{{range .}}<div class="card">
  {{- if .Rank}}
  <span class="rank">{{.Rank}}</span>{{end}}
  <h4>{{.Name}}</h4>
  <p class="match-score">{{.Match}}</p>
  <p><strong>Matching Types:</strong> {{.Types}}</p>
</div>
{{end}}`))

var emptyTemplate = template.Must(template.New("empty").Parse(
	`<div class="card empty">
  <h4>{{.Title}}</h4>
  <p class="text-muted">{{.Hint}}</p>
</div>
`))

var messageTemplate = template.Must(template.New("message").Parse(
	`<div class="card{{if .Class}} {{.Class}}{{end}}"><p>{{.Text}}</p></div>
`))

// HTML renders one card per city, or a single "no matches" card for an empty list
func HTML(list models.ResultList, opts Options) (string, error) {
	var buf bytes.Buffer

	if len(list) == 0 {
		err := emptyTemplate.Execute(&buf, struct{ Title, Hint string }{EmptyTitle, EmptyHint})
		return buf.String(), err
	}

	cards := make([]htmlCard, len(list))
	for i, c := range list {
		cards[i] = htmlCard{
			Name:  c.DisplayName(),
			Match: MatchLabel(c),
			Types: TypesLabel(c),
		}
		if opts.ShowRank {
			cards[i].Rank = RankLabel(i)
		}
	}

	if err := cardsTemplate.Execute(&buf, cards); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ErrorHTML renders a failed request as a visible error card
func ErrorHTML(msg string) string {
	return message("error", "Error: "+msg)
}

// MessageHTML renders an inline notice such as a validation failure
func MessageHTML(msg string) string {
	return message("", msg)
}

func message(class, text string) string {
	var buf bytes.Buffer
	// Both fields are plain strings, execution cannot fail
	_ = messageTemplate.Execute(&buf, struct{ Class, Text string }{class, text})
	return buf.String()
}
