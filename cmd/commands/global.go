package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripplan/tripplan-terminal/internal/cli"
	"github.com/tripplan/tripplan-terminal/pkg/config"
)

// Names of the persistent flags shared by every command
const (
	flagQuiet   = "quiet"
	flagNoColor = "no-color"
	flagVerbose = "verbose"
	flagAPIBase = "api-base"
	flagHost    = "hostname"
	flagTimeout = "timeout"
	flagLogFile = "log-file"
	flagOutput  = "output"
)

// AddGlobalFlags registers the persistent flags on the root command
func AddGlobalFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.BoolP(flagQuiet, "q", false, "Suppress informational output")
	pf.Bool(flagNoColor, false, "Disable colored output")
	pf.BoolP(flagVerbose, "v", false, "Enable debug logging")
	pf.String(flagAPIBase, "", "Recommendation API base URL (overrides hostname resolution)")
	pf.String(flagHost, "", "Hostname used to pick the local or production API")
	pf.String(flagTimeout, "", "Request timeout, e.g. 30s; 0 disables it")
	pf.String(flagLogFile, "", "Write logs to this file instead of stderr")
	pf.StringP(flagOutput, "o", "", "Output format (text|json|yaml|html)")
}

// ApplyGlobalFlags pushes --quiet, --no-color and --verbose into the print helpers
func ApplyGlobalFlags(cmd *cobra.Command) {
	quiet, _ := cmd.Flags().GetBool(flagQuiet)
	noColor, _ := cmd.Flags().GetBool(flagNoColor)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	cli.SetGlobalFlags(quiet, noColor, verbose)
}

// Overrides reads the configuration flags given on the command line
func Overrides(cmd *cobra.Command) config.Overrides {
	apiBase, _ := cmd.Flags().GetString(flagAPIBase)
	hostname, _ := cmd.Flags().GetString(flagHost)
	timeout, _ := cmd.Flags().GetString(flagTimeout)
	return config.Overrides{
		APIBase:  apiBase,
		Hostname: hostname,
		Timeout:  timeout,
	}
}

// newCommandContext builds the per-command context with a CLI logger
func newCommandContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	logFile, _ := cmd.Flags().GetString(flagLogFile)

	logger, err := cli.NewLogger(verbose, logFile)
	if err != nil {
		return nil, err
	}
	return cli.NewCommandContext(Overrides(cmd), logger), nil
}

// outputFormat returns -o when given, else the settings default
func outputFormat(cmd *cobra.Command, fallback string) (string, error) {
	format, _ := cmd.Flags().GetString(flagOutput)
	if format == "" {
		format = fallback
	}
	if format == "" {
		format = string(cli.FormatText)
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func syncLogger(logger *zap.Logger) {
	if logger != nil {
		_ = logger.Sync()
	}
}

func requireArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("usage: %s", usage)
		}
		return nil
	}
}
