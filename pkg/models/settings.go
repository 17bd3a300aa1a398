package models

// Settings represents the application configuration
type Settings struct {
	API             APISettings      `yaml:"api"`
	UI              UISettings       `yaml:"ui"`
	Output          OutputSettings   `yaml:"output"`
	ExperienceTypes []ExperienceType `yaml:"experience_types"`
}

// APISettings controls how the recommendation service is reached
type APISettings struct {
	LocalURL      string `yaml:"local_url"`
	ProductionURL string `yaml:"production_url"`
	Hostname      string `yaml:"hostname"` // "localhost" selects LocalURL
	Timeout       string `yaml:"timeout"`  // Go duration, "0" disables the deadline
}

// UISettings controls UI preferences
type UISettings struct {
	ShowRank        bool    `yaml:"show_rank"`
	RevealThreshold float64 `yaml:"reveal_threshold"` // fraction of viewport height
}

// OutputSettings controls non-interactive output
type OutputSettings struct {
	Format string `yaml:"format"` // text, json, yaml or html
}

const (
	DefaultLocalURL      = "http://localhost:4001"
	DefaultProductionURL = "https://api.tripplan.app"
	DefaultTimeout       = "30s"
	DefaultReveal        = 0.75
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			LocalURL:      DefaultLocalURL,
			ProductionURL: DefaultProductionURL,
			Hostname:      "localhost",
			Timeout:       DefaultTimeout,
		},
		UI: UISettings{
			ShowRank:        true,
			RevealThreshold: DefaultReveal,
		},
		Output: OutputSettings{
			Format: "text",
		},
		ExperienceTypes: DefaultExperienceTypes(),
	}
}

// ApplyDefaults fills zero values left by a partial settings file
func (s *Settings) ApplyDefaults() {
	d := DefaultSettings()
	if s.API.LocalURL == "" {
		s.API.LocalURL = d.API.LocalURL
	}
	if s.API.ProductionURL == "" {
		s.API.ProductionURL = d.API.ProductionURL
	}
	if s.API.Hostname == "" {
		s.API.Hostname = d.API.Hostname
	}
	if s.API.Timeout == "" {
		s.API.Timeout = d.API.Timeout
	}
	if s.UI.RevealThreshold <= 0 || s.UI.RevealThreshold > 1 {
		s.UI.RevealThreshold = d.UI.RevealThreshold
	}
	if s.Output.Format == "" {
		s.Output.Format = d.Output.Format
	}
	if len(s.ExperienceTypes) == 0 {
		s.ExperienceTypes = d.ExperienceTypes
	}
}
