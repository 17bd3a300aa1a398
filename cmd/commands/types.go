package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tripplan/tripplan-terminal/internal/cli"
	"github.com/tripplan/tripplan-terminal/pkg/models"
)

// NewTypesCommand creates the types command
func NewTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "types",
		Aliases: []string{"ls-types"},
		Short:   "List the place types that can be passed to recommend",
		Args:    cobra.NoArgs,
		RunE:    runTypes,
	}
}

func runTypes(cmd *cobra.Command, args []string) error {
	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer syncLogger(ctx.Logger)

	settings := ctx.LoadSettingsWithDefault()
	format, err := outputFormat(cmd, "")
	if err != nil {
		return err
	}

	types := models.SortExperienceTypes(settings.ExperienceTypes)
	out := cmd.OutOrStdout()

	switch cli.OutputFormat(format) {
	case cli.FormatJSON, cli.FormatYAML:
		return cli.OutputResults(out, format, types)
	case cli.FormatHTML:
		return fmt.Errorf("html output is not supported by types")
	}

	table := cli.NewTableFormatter(out)
	table.Header("ID", "NAME", "COLOR")
	for _, t := range types {
		table.Row(strconv.Itoa(t.ID), cli.TruncateString(t.Name, 24), models.GetExperienceColor(t.Name, t.Color))
	}
	table.Flush()
	return nil
}
