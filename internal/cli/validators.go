package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml", "html"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, yaml, or html)", format)
}

// ResolveExperienceTypes maps --type values to checkbox values. Each value may
// be an id ("3") or a catalogue name ("heritage"), matched case-insensitively.
// Unknown names are kept verbatim so the validator can reject them.
func ResolveExperienceTypes(values []string, catalogue []models.ExperienceType) ([]string, error) {
	var out []string
	for _, raw := range values {
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, err := strconv.Atoi(v); err == nil {
				out = append(out, v)
				continue
			}
			id, ok := lookupExperience(v, catalogue)
			if !ok {
				return nil, fmt.Errorf("unknown experience type: %s (run 'tripplan types' to list them)", v)
			}
			out = append(out, strconv.Itoa(id))
		}
	}
	return out, nil
}

func lookupExperience(name string, catalogue []models.ExperienceType) (int, bool) {
	for _, t := range catalogue {
		if strings.EqualFold(t.Name, name) {
			return t.ID, true
		}
	}
	return 0, false
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
