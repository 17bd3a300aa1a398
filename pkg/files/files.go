package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

const (
	TripplanDir  = ".tripplan"
	SettingsFile = "settings.yaml"
	EnvFile      = ".env"
)

// SettingsPath returns the settings file location relative to the working directory
func SettingsPath() string {
	return filepath.Join(TripplanDir, SettingsFile)
}

// InitProjectStructure creates the .tripplan folder and writes default settings
// unless a settings file already exists.
func InitProjectStructure() error {
	if err := os.MkdirAll(TripplanDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", TripplanDir, err)
	}

	if _, err := os.Stat(SettingsPath()); err == nil {
		return nil
	}

	return WriteSettings(models.DefaultSettings())
}

// ReadSettings loads settings from disk. A missing file yields the defaults.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings models.Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	settings.ApplyDefaults()

	if err := models.ValidateExperienceTypes(settings.ExperienceTypes); err != nil {
		return nil, fmt.Errorf("invalid experience_types in %s: %w", SettingsPath(), err)
	}

	return &settings, nil
}

// WriteSettings persists settings as YAML
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(TripplanDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", SettingsPath(), err)
	}

	return nil
}

// WriteFile writes content to a file (for exported result pages)
func WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
