// Package planner turns raw trip form input into a validated query.
package planner

import (
	"math"
	"strconv"
	"strings"

	"github.com/tripplan/tripplan-terminal/pkg/models"
)

const (
	MaxBudget   = 1_000_000
	MaxDuration = 365
)

// Validation messages shown to the user
const (
	MsgInvalidBudget    = "Please enter a valid budget."
	MsgInvalidDuration  = "Please enter a valid duration (days)."
	MsgNoExperience     = "Please select at least one place type."
	MsgBudgetTooLarge   = "Budget cannot exceed 1,000,000."
	MsgDurationTooLarge = "Duration cannot exceed 365 days."

	// shown while typing, before the form is submitted
	HintBudget   = "Please enter a valid positive number"
	HintDuration = "Please enter a number greater than 0"
)

// Field identifies the input a validation error belongs to
type Field string

const (
	FieldBudget     Field = "budget"
	FieldDuration   Field = "duration"
	FieldExperience Field = "experience"
)

// ValidationError is returned when form input fails a rule. No request is made.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field Field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// parseNumber accepts finite decimal numbers only
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// CheckBudgetInput is the as-you-type check for the budget field.
// An empty field is not flagged; the submit rules cover it.
func CheckBudgetInput(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if v, ok := parseNumber(raw); !ok || v < 0 {
		return invalid(FieldBudget, HintBudget)
	}
	return nil
}

// CheckDurationInput is the as-you-type check for the duration field
func CheckDurationInput(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if v, ok := parseNumber(raw); !ok || v <= 0 {
		return invalid(FieldDuration, HintDuration)
	}
	return nil
}

// Validate returns the first rule the input breaks, or nil.
// Rules are checked in a fixed order so the user always sees the same message first.
func Validate(budget, duration string, experienceTypes []int) *ValidationError {
	b, ok := parseNumber(budget)
	if !ok || b < 0 {
		return invalid(FieldBudget, MsgInvalidBudget)
	}

	d, ok := parseNumber(duration)
	if !ok || d <= 0 {
		return invalid(FieldDuration, MsgInvalidDuration)
	}

	if len(experienceTypes) == 0 {
		return invalid(FieldExperience, MsgNoExperience)
	}

	if b > MaxBudget {
		return invalid(FieldBudget, MsgBudgetTooLarge)
	}

	if d > MaxDuration {
		return invalid(FieldDuration, MsgDurationTooLarge)
	}

	return nil
}

// ParseQuery validates the input and builds the request payload
func ParseQuery(budget, duration string, experienceTypes []int) (models.TripQuery, error) {
	if verr := Validate(budget, duration, experienceTypes); verr != nil {
		return models.TripQuery{}, verr
	}

	b, _ := parseNumber(budget)
	d, _ := parseNumber(duration)

	return models.TripQuery{
		Budget:          b,
		Duration:        d,
		ExperienceTypes: dedupe(experienceTypes),
	}, nil
}

// CollectExperienceTypes converts checkbox values to ids, dropping anything
// that is not a positive integer.
func CollectExperienceTypes(values []string) []int {
	ids := make([]int, 0, len(values))
	for _, v := range values {
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
