package models

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Experience type errors
var (
	ErrInvalidExperienceID   = errors.New("experience type id must be a positive integer")
	ErrEmptyExperienceName   = errors.New("experience type name cannot be empty")
	ErrDuplicateExperienceID = errors.New("duplicate experience type id")
)

// ExperienceType is a category a traveller can pick to filter cities
type ExperienceType struct {
	ID    int    `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// DefaultColorPalette provides a curated set of colors for experience badges
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#f1c40f", // yellow
	"#2980b9", // belize hole
}

// DefaultExperienceTypes is the catalogue used when settings don't provide one
func DefaultExperienceTypes() []ExperienceType {
	return []ExperienceType{
		{ID: 1, Name: "Beach"},
		{ID: 2, Name: "Hill Station"},
		{ID: 3, Name: "Heritage"},
		{ID: 4, Name: "Wildlife"},
		{ID: 5, Name: "Adventure"},
		{ID: 6, Name: "Religious"},
		{ID: 7, Name: "Nightlife"},
		{ID: 8, Name: "Food & Culture"},
	}
}

// GetExperienceColor returns the configured color or derives a stable one from the name
func GetExperienceColor(name string, configured string) string {
	if configured != "" {
		return configured
	}

	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return DefaultColorPalette[paletteIndex(h.Sum32(), len(DefaultColorPalette))]
}

// paletteIndex stays in unsigned arithmetic so 32-bit ints cannot go negative
func paletteIndex(hash uint32, n int) int {
	return int(hash % uint32(n))
}

// ValidateExperienceTypes checks a catalogue for bad ids, blank names and duplicates
func ValidateExperienceTypes(types []ExperienceType) error {
	seen := make(map[int]bool, len(types))
	for _, t := range types {
		if t.ID <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidExperienceID, t.ID)
		}
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w (id %d)", ErrEmptyExperienceName, t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateExperienceID, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// SortExperienceTypes orders a catalogue by id
func SortExperienceTypes(types []ExperienceType) []ExperienceType {
	sorted := make([]ExperienceType, len(types))
	copy(sorted, types)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// ExperienceName looks up the display name for an id, falling back to the id itself
func ExperienceName(types []ExperienceType, id int) string {
	for _, t := range types {
		if t.ID == id {
			return t.Name
		}
	}
	return fmt.Sprintf("%d", id)
}
