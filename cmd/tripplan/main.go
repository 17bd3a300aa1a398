package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripplan/tripplan-terminal/cmd/commands"
	"github.com/tripplan/tripplan-terminal/internal/cli"
	"github.com/tripplan/tripplan-terminal/pkg/files"
	"github.com/tripplan/tripplan-terminal/pkg/render"
	"github.com/tripplan/tripplan-terminal/pkg/tui"
	"github.com/tripplan/tripplan-terminal/pkg/ui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tripplan",
	Short: "Terminal client for the trip recommendation service",
	Long: `Tripplan asks the recommendation service for cities that fit a budget,
a trip length and the kinds of places you like. Run it without arguments for
the interactive planner, or use 'tripplan recommend' from scripts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commands.ApplyGlobalFlags(cmd)
	},
	RunE: runTUI,
}

// runTUI launches the planner. stderr belongs to the alt screen, so logs
// are only written when --log-file is given.
func runTUI(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		l, err := cli.NewLogger(cli.Verbose(), logFile)
		if err != nil {
			return err
		}
		logger = l
		defer logger.Sync()
	}

	ctx := cli.NewCommandContext(commands.Overrides(cmd), logger)
	settings := ctx.LoadSettingsWithDefault()
	c, err := ctx.NewClient()
	if err != nil {
		return err
	}

	logger.Info("Starting planner", zap.String("api_base", c.BaseURL()))

	handler := ui.NewFormHandler(c, render.Options{ShowRank: settings.UI.ShowRank}, logger)
	app := tui.NewApp(cmd.Context(), handler, settings)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .tripplan/settings.yaml in the current directory",
	Long:  `Creates the .tripplan folder with default settings. Existing settings are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing tripplan in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created %s", files.SettingsPath())
		cli.PrintInfo("Run 'tripplan' to start the interactive planner.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tripplan",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tripplan version %s\n", version)
	},
}

func init() {
	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewRecommendCommand())
	rootCmd.AddCommand(commands.NewTypesCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewHealthCommand())
}

func main() {
	// ctrl+c outside the TUI aborts an in-flight request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
