package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripplan/tripplan-terminal/internal/cli"
	"github.com/tripplan/tripplan-terminal/pkg/config"
	"github.com/tripplan/tripplan-terminal/pkg/files"
	"github.com/tripplan/tripplan-terminal/pkg/models"
)

// ConfigView is the resolved configuration as printed by config show
type ConfigView struct {
	APIBase      string  `json:"api_base" yaml:"api_base"`
	Hostname     string  `json:"hostname" yaml:"hostname"`
	Timeout      string  `json:"timeout" yaml:"timeout"`
	SettingsFile string  `json:"settings_file" yaml:"settings_file"`
	ShowRank     bool    `json:"show_rank" yaml:"show_rank"`
	Reveal       float64 `json:"reveal_threshold" yaml:"reveal_threshold"`
	Format       string  `json:"format" yaml:"format"`
}

// settingSetters maps config set keys onto the settings document
var settingSetters = map[string]func(s *models.Settings, value string) error{
	"api.local_url": func(s *models.Settings, v string) error {
		if err := config.ValidateBaseURL(v); err != nil {
			return err
		}
		s.API.LocalURL = v
		return nil
	},
	"api.production_url": func(s *models.Settings, v string) error {
		if err := config.ValidateBaseURL(v); err != nil {
			return err
		}
		s.API.ProductionURL = v
		return nil
	},
	"api.hostname": func(s *models.Settings, v string) error {
		s.API.Hostname = v
		return nil
	},
	"api.timeout": func(s *models.Settings, v string) error {
		if _, err := config.ParseTimeout(v); err != nil {
			return err
		}
		s.API.Timeout = v
		return nil
	},
	"ui.show_rank": func(s *models.Settings, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("show_rank must be true or false")
		}
		s.UI.ShowRank = b
		return nil
	},
	"ui.reveal_threshold": func(s *models.Settings, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f > 1 {
			return fmt.Errorf("reveal_threshold must be a number in (0, 1]")
		}
		s.UI.RevealThreshold = f
		return nil
	},
	"output.format": func(s *models.Settings, v string) error {
		if err := cli.ValidateOutputFormat(v); err != nil {
			return err
		}
		s.Output.Format = v
		return nil
	},
}

// SettingKeys lists the keys accepted by config set
func SettingKeys() []string {
	keys := make([]string, 0, len(settingSetters))
	for k := range settingSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewConfigCommand creates the config command with its show and set subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change tripplan settings",
	}
	cmd.AddCommand(newConfigShowCommand(), newConfigSetCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after merging the settings file, .env,
environment variables and command line flags.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer syncLogger(ctx.Logger)

	cfg, err := ctx.LoadConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, "")
	if err != nil {
		return err
	}

	view := ConfigView{
		APIBase:      cfg.APIBase,
		Hostname:     cfg.Hostname,
		Timeout:      cfg.Timeout.String(),
		SettingsFile: files.SettingsPath(),
		ShowRank:     cfg.Settings.UI.ShowRank,
		Reveal:       cfg.Settings.UI.RevealThreshold,
		Format:       cfg.Settings.Output.Format,
	}

	out := cmd.OutOrStdout()
	switch cli.OutputFormat(format) {
	case cli.FormatJSON, cli.FormatYAML:
		return cli.OutputResults(out, format, view)
	case cli.FormatHTML:
		return fmt.Errorf("html output is not supported by config show")
	}

	table := cli.NewTableFormatter(out)
	table.Header("KEY", "VALUE")
	table.Row("api_base", view.APIBase)
	table.Row("hostname", view.Hostname)
	table.Row("timeout", view.Timeout)
	table.Row("settings_file", view.SettingsFile)
	table.Row("show_rank", strconv.FormatBool(view.ShowRank))
	table.Row("reveal_threshold", strconv.FormatFloat(view.Reveal, 'g', -1, 64))
	table.Row("format", view.Format)
	table.Flush()
	return nil
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a value in .tripplan/settings.yaml",
		Long: fmt.Sprintf(`Change a value in .tripplan/settings.yaml, creating the file when needed.

Keys:
  %s

Examples:
  tripplan config set api.hostname app.tripplan.app
  tripplan config set api.timeout 10s
  tripplan config set ui.show_rank false`, strings.Join(SettingKeys(), "\n  ")),
		Args: requireArgs(2, "tripplan config set <key> <value>"),
		RunE: runConfigSet,
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := strings.ToLower(strings.TrimSpace(args[0])), strings.TrimSpace(args[1])

	setter, ok := settingSetters[key]
	if !ok {
		return fmt.Errorf("unknown setting %q (valid keys: %s)", key, strings.Join(SettingKeys(), ", "))
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}
	if err := setter(settings, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := files.WriteSettings(settings); err != nil {
		return err
	}

	cli.PrintSuccess("Set %s = %s", key, value)
	return nil
}
