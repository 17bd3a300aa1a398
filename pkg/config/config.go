// Package config resolves runtime configuration once at startup:
// settings file, then .env and environment, then command line flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

// Environment variables consulted by Load
const (
	EnvAPIBase  = "TRIPPLAN_API_BASE"
	EnvHostname = "TRIPPLAN_HOSTNAME"
	EnvTimeout  = "TRIPPLAN_TIMEOUT"
)

// Config is the resolved configuration injected into the client and UI
type Config struct {
	APIBase  string
	Hostname string
	Timeout  time.Duration
	Settings *models.Settings
}

// Overrides carries values given on the command line. Empty fields are ignored.
type Overrides struct {
	APIBase  string
	Hostname string
	Timeout  string
}

// IsLocalHost reports whether the hostname selects the local backend
func IsLocalHost(hostname string) bool {
	h := strings.ToLower(strings.TrimSpace(hostname))
	return h == "localhost" || h == "127.0.0.1"
}

// Resolve picks the API base URL for a hostname
func Resolve(hostname string, api models.APISettings) string {
	if IsLocalHost(hostname) {
		return strings.TrimRight(api.LocalURL, "/")
	}
	return strings.TrimRight(api.ProductionURL, "/")
}

// ParseTimeout accepts Go durations ("30s", "1m") or a bare number of seconds.
// "0" disables the deadline.
func ParseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("timeout cannot be empty")
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0, fmt.Errorf("invalid timeout %q", raw)
		}
		if secs < 0 {
			return 0, fmt.Errorf("timeout cannot be negative: %s", raw)
		}
		nanos := secs * float64(time.Second)
		if nanos >= math.MaxInt64 {
			return 0, fmt.Errorf("timeout too large: %s", raw)
		}
		return time.Duration(nanos), nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout cannot be negative: %s", raw)
	}
	return d, nil
}

// LoadEnvFile reads KEY=value pairs into the environment without
// overwriting variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load merges settings, environment and overrides into a Config
func Load(settings *models.Settings, o Overrides) (*Config, error) {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	hostname := firstNonEmpty(o.Hostname, os.Getenv(EnvHostname), settings.API.Hostname)
	timeoutRaw := firstNonEmpty(o.Timeout, os.Getenv(EnvTimeout), settings.API.Timeout, models.DefaultTimeout)

	timeout, err := ParseTimeout(timeoutRaw)
	if err != nil {
		return nil, err
	}

	base := firstNonEmpty(o.APIBase, os.Getenv(EnvAPIBase))
	if base == "" {
		base = Resolve(hostname, settings.API)
	}
	base = strings.TrimRight(base, "/")

	if err := ValidateBaseURL(base); err != nil {
		return nil, err
	}

	return &Config{
		APIBase:  base,
		Hostname: hostname,
		Timeout:  timeout,
		Settings: settings,
	}, nil
}

// ValidateBaseURL requires an http(s) URL with a host
func ValidateBaseURL(base string) error {
	if base == "" {
		return errors.New("API base URL is not configured")
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid API base URL %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API base URL %q: scheme must be http or https", base)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid API base URL %q: missing host", base)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
