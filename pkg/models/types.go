package models

import (
	"encoding/json"
	"math"
)

// TripQuery is the payload sent to the recommendation service
type TripQuery struct {
	Budget          float64 `json:"budget" yaml:"budget"`
	Duration        float64 `json:"duration" yaml:"duration"`
	ExperienceTypes []int   `json:"experience_types" yaml:"experience_types"`
}

// CityResult is a single recommended city.
// MatchScore is a pointer so a missing score can be told apart from zero.
type CityResult struct {
	Name          string   `json:"name" yaml:"name"`
	MatchScore    *float64 `json:"match_score,omitempty" yaml:"match_score,omitempty"`
	MatchingTypes []string `json:"matching_types" yaml:"matching_types"`
}

// ResultList is the ordered response of the cities endpoint
type ResultList []CityResult

// Score returns the match score, or 0 when it is absent or not finite
func (c CityResult) Score() float64 {
	if c.MatchScore == nil {
		return 0
	}
	s := *c.MatchScore
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return s
}

// DisplayName returns the city name with a fallback for blank entries
func (c CityResult) DisplayName() string {
	if c.Name == "" {
		return "Unknown"
	}
	return c.Name
}

// UnmarshalJSON accepts loosely typed entries: a score that is not a JSON
// number is dropped, non-string matching types are skipped and a non-string
// name is treated as blank. One odd entry never spoils the whole list.
func (c *CityResult) UnmarshalJSON(data []byte) error {
	*c = CityResult{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// not an object: render it as an unnamed city
		return nil
	}

	if s, ok := jsonString(raw["name"]); ok {
		c.Name = s
	}

	if v := raw["match_score"]; len(v) > 0 && v[0] != '"' && v[0] != 'n' {
		var score float64
		if json.Unmarshal(v, &score) == nil {
			c.MatchScore = &score
		}
	}

	var types []json.RawMessage
	if json.Unmarshal(raw["matching_types"], &types) == nil && types != nil {
		c.MatchingTypes = make([]string, 0, len(types))
		for _, t := range types {
			if s, ok := jsonString(t); ok {
				c.MatchingTypes = append(c.MatchingTypes, s)
			}
		}
	}
	return nil
}

func jsonString(v json.RawMessage) (string, bool) {
	if len(v) == 0 || v[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// Float64 returns a pointer to v. Handy for building results in code and tests.
func Float64(v float64) *float64 {
	return &v
}
