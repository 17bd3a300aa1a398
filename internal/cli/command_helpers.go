package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tripplan/tripplan-terminal/pkg/client"
	"github.com/tripplan/tripplan-terminal/pkg/config"
	"github.com/tripplan/tripplan-terminal/pkg/files"
	"github.com/tripplan/tripplan-terminal/pkg/models"
)

// CommandContext resolves settings, configuration and logging once per command
type CommandContext struct {
	Overrides config.Overrides
	Settings  *models.Settings
	Config    *config.Config
	Logger    *zap.Logger
}

// NewCommandContext creates a new command context
func NewCommandContext(overrides config.Overrides, logger *zap.Logger) *CommandContext {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandContext{
		Overrides: overrides,
		Logger:    logger,
	}
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// LoadConfig reads .env, then merges settings, environment and flag overrides
func (c *CommandContext) LoadConfig() (*config.Config, error) {
	if c.Config != nil {
		return c.Config, nil
	}

	if err := config.LoadEnvFile(files.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(c.LoadSettingsWithDefault(), c.Overrides)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c.Logger.Debug("Configuration resolved",
		zap.String("api_base", cfg.APIBase),
		zap.String("hostname", cfg.Hostname),
		zap.Duration("timeout", cfg.Timeout))

	c.Config = cfg
	return cfg, nil
}

// NewClient builds a recommendation client from the resolved configuration
func (c *CommandContext) NewClient() (*client.Client, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.APIBase,
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(c.Logger),
	), nil
}

// NewLogger builds the process logger. Production JSON encoding on stderr,
// or on logFile when given; debug level with verbose.
func NewLogger(verbose bool, logFile string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
