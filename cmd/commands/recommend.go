package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripplan/tripplan-terminal/internal/cli"
	"github.com/tripplan/tripplan-terminal/pkg/files"
	"github.com/tripplan/tripplan-terminal/pkg/models"
	"github.com/tripplan/tripplan-terminal/pkg/planner"
	"github.com/tripplan/tripplan-terminal/pkg/render"
	"github.com/tripplan/tripplan-terminal/pkg/ui"
)

// clipboardWriter is swapped out in tests
var clipboardWriter = clipboard.WriteAll

// RecommendOutput is the json/yaml shape of a successful search
type RecommendOutput struct {
	Query   models.TripQuery  `json:"query" yaml:"query"`
	Count   int               `json:"count" yaml:"count"`
	Results models.ResultList `json:"results" yaml:"results"`
}

// NewRecommendCommand creates the recommend command
func NewRecommendCommand() *cobra.Command {
	var (
		budget   string
		duration string
		types    []string
		copyText bool
		savePath string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Find cities matching a budget, duration and place types",
		Long: `Validate the trip preferences, ask the recommendation service for
matching cities and print them as cards.

Place types may be given as ids or names, repeated or comma separated.

Examples:
  tripplan recommend --budget 25000 --duration 5 --type beach,heritage
  tripplan recommend -b 8000 -d 3 -t 1 -t 7 -o json
  tripplan recommend -b 8000 -d 3 -t wildlife --copy
  tripplan recommend -b 8000 -d 3 -t 2 --save results.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, budget, duration, types, copyText, savePath)
		},
	}

	cmd.Flags().StringVarP(&budget, "budget", "b", "", "Total trip budget")
	cmd.Flags().StringVarP(&duration, "duration", "d", "", "Trip length in days")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Place type id or name (repeatable)")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the results to the clipboard")
	cmd.Flags().StringVar(&savePath, "save", "", "Also write the result cards as HTML to this file")

	return cmd
}

func runRecommend(cmd *cobra.Command, budget, duration string, types []string, copyText bool, savePath string) error {
	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer syncLogger(ctx.Logger)

	settings := ctx.LoadSettingsWithDefault()

	format, err := outputFormat(cmd, settings.Output.Format)
	if err != nil {
		return err
	}

	experience, err := cli.ResolveExperienceTypes(types, settings.ExperienceTypes)
	if err != nil {
		return err
	}

	c, err := ctx.NewClient()
	if err != nil {
		return err
	}

	opts := render.Options{ShowRank: settings.UI.ShowRank}
	handler := ui.NewFormHandler(c, opts, ctx.Logger)
	// status lines would corrupt json, yaml and html on stdout
	chatty := format == string(cli.FormatText)
	input := ui.FormInput{Budget: budget, Duration: duration, Experience: experience}
	handler.OnLoading(func(loading bool) {
		if loading && chatty {
			cli.PrintInfo("Finding cities for %s via %s...", typeNames(input, settings), c.BaseURL())
		}
	})

	res := handler.Submit(cmd.Context(), input)
	if res.Kind.IsError() {
		ctx.Logger.Debug("Recommendation failed", zap.Stringer("kind", res.Kind), zap.String("message", res.Message))
		return errors.New(res.Message)
	}

	out := cmd.OutOrStdout()
	switch cli.OutputFormat(format) {
	case cli.FormatJSON, cli.FormatYAML:
		b, d, ids := ui.Collect(input)
		query, err := planner.ParseQuery(b, d, ids)
		if err != nil {
			return err
		}
		err = cli.OutputResults(out, format, RecommendOutput{
			Query:   query,
			Count:   len(res.Results),
			Results: res.Results,
		})
		if err != nil {
			return err
		}
	case cli.FormatHTML:
		if err := cli.OutputResults(out, format, res.HTML+"\n"); err != nil {
			return err
		}
	default:
		if err := cli.OutputResults(out, format, textResults(cmd, res.Results, opts, settings)); err != nil {
			return err
		}
	}

	if savePath != "" {
		if err := files.WriteFile(savePath, res.HTML+"\n"); err != nil {
			return err
		}
		if chatty {
			cli.PrintInfo("Saved HTML cards to %s", savePath)
		}
	}

	if copyText {
		if err := clipboardWriter(render.PlainText(res.Results, opts)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		if chatty {
			cli.PrintSuccess("Copied %d cities to clipboard", len(res.Results))
		}
	}
	return nil
}

func typeNames(input ui.FormInput, settings *models.Settings) string {
	_, _, ids := ui.Collect(input)
	seen := make(map[int]bool)
	var names []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			names = append(names, models.ExperienceName(settings.ExperienceTypes, id))
		}
	}
	return strings.Join(names, ", ")
}

// textResults draws terminal cards, or plain lines under --no-color
func textResults(cmd *cobra.Command, list models.ResultList, opts render.Options, settings *models.Settings) string {
	if noColor, _ := cmd.Flags().GetBool(flagNoColor); noColor {
		return render.PlainText(list, opts)
	}
	cards := render.Cards(list, render.TerminalOptions{
		Options:   opts,
		Width:     72,
		Catalogue: settings.ExperienceTypes,
	})
	return strings.Join(cards, "\n") + "\n"
}
