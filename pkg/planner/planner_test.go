package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	types := []int{1, 2}

	tests := []struct {
		name     string
		budget   string
		duration string
		types    []int
		wantMsg  string
		field    Field
	}{
		{"valid", "5000", "7", types, "", ""},
		{"zero budget is allowed", "0", "3", types, "", ""},
		{"trimmed input", "  1200 ", " 4 ", types, "", ""},
		{"budget at limit", "1000000", "365", types, "", ""},
		{"fractional values", "99.5", "0.5", types, "", ""},

		{"missing budget", "", "7", types, MsgInvalidBudget, FieldBudget},
		{"whitespace budget", "   ", "7", types, MsgInvalidBudget, FieldBudget},
		{"non-numeric budget", "cheap", "7", types, MsgInvalidBudget, FieldBudget},
		{"negative budget", "-1", "7", types, MsgInvalidBudget, FieldBudget},
		{"nan budget", "NaN", "7", types, MsgInvalidBudget, FieldBudget},
		{"infinite budget", "Inf", "7", types, MsgInvalidBudget, FieldBudget},

		{"missing duration", "100", "", types, MsgInvalidDuration, FieldDuration},
		{"non-numeric duration", "100", "a week", types, MsgInvalidDuration, FieldDuration},
		{"zero duration", "100", "0", types, MsgInvalidDuration, FieldDuration},
		{"negative duration", "100", "-3", types, MsgInvalidDuration, FieldDuration},

		{"no experience types", "100", "3", nil, MsgNoExperience, FieldExperience},
		{"empty experience types", "100", "3", []int{}, MsgNoExperience, FieldExperience},

		{"budget over limit", "1000000.01", "3", types, MsgBudgetTooLarge, FieldBudget},
		{"duration over limit", "100", "366", types, MsgDurationTooLarge, FieldDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.budget, tt.duration, tt.types)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateRuleOrder(t *testing.T) {
	// Every rule is broken: the budget message wins.
	err := Validate("-5", "0", nil)
	require.NotNil(t, err)
	assert.Equal(t, MsgInvalidBudget, err.Message)

	// Missing experience types is reported before the range limits.
	err = Validate("2000000", "400", nil)
	require.NotNil(t, err)
	assert.Equal(t, MsgNoExperience, err.Message)

	// Budget range is reported before duration range.
	err = Validate("2000000", "400", []int{1})
	require.NotNil(t, err)
	assert.Equal(t, MsgBudgetTooLarge, err.Message)
}

func TestValidateNegativeBudgetsAlwaysFail(t *testing.T) {
	for _, b := range []string{"-0.01", "-1", "-100", "-1e9", "abc", "1,000", "$5"} {
		assert.NotNil(t, Validate(b, "3", []int{1}), "budget %q", b)
	}
}

func TestValidateDurationsOutOfRangeAlwaysFail(t *testing.T) {
	for _, d := range []string{"0", "-1", "365.5", "366", "1000", "x", "7 days"} {
		assert.NotNil(t, Validate("100", d, []int{1}), "duration %q", d)
	}
}

func TestCheckInputsWhileTyping(t *testing.T) {
	tests := []struct {
		name     string
		check    func(string) error
		input    string
		wantHint string
	}{
		{"empty budget", CheckBudgetInput, "", ""},
		{"budget zero", CheckBudgetInput, "0", ""},
		{"budget negative", CheckBudgetInput, "-5", HintBudget},
		{"budget text", CheckBudgetInput, "abc", HintBudget},
		{"budget lone minus", CheckBudgetInput, "-", HintBudget},
		{"empty duration", CheckDurationInput, "  ", ""},
		{"duration positive", CheckDurationInput, "3", ""},
		{"duration zero", CheckDurationInput, "0", HintDuration},
		{"duration negative", CheckDurationInput, "-1", HintDuration},
		{"duration text", CheckDurationInput, "week", HintDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.input)
			if tt.wantHint == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantHint, err.Error())
		})
	}
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery(" 2500 ", "5", []int{3, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, 2500.0, q.Budget)
	assert.Equal(t, 5.0, q.Duration)
	assert.Equal(t, []int{3, 1}, q.ExperienceTypes)
}

func TestParseQueryReturnsValidationError(t *testing.T) {
	_, err := ParseQuery("100", "3", nil)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FieldExperience, verr.Field)
}

func TestCollectExperienceTypes(t *testing.T) {
	got := CollectExperienceTypes([]string{"1", " 4 ", "beach", "", "-2", "0", "2.5", "7"})
	assert.Equal(t, []int{1, 4, 7}, got)

	assert.Empty(t, CollectExperienceTypes(nil))
}
