package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// CountryRepository provides the static country and preset data.
// It is loaded once at startup and read-only afterwards.
type CountryRepository struct {
	names   map[string]string
	codes   []string
	presets []entities.Preset
}

// NewCountryRepository loads countries and presets from JSON files.
func NewCountryRepository(countriesPath, presetsPath string) (*CountryRepository, error) {
	countries, err := os.ReadFile(countriesPath)
	if err != nil {
		return nil, fmt.Errorf("read countries: %w", err)
	}

	presets, err := os.ReadFile(presetsPath)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	return NewCountryRepositoryFromJSON(countries, presets)
}

// NewCountryRepositoryFromJSON builds a repository from raw JSON documents:
// an object of code to name and an object of preset name to codes.
func NewCountryRepositoryFromJSON(countriesJSON, presetsJSON []byte) (*CountryRepository, error) {
	var rawNames map[string]string
	if err := json.Unmarshal(countriesJSON, &rawNames); err != nil {
		return nil, fmt.Errorf("failed to unmarshal countries JSON: %w", err)
	}

	var rawPresets map[string][]string
	if err := json.Unmarshal(presetsJSON, &rawPresets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presets JSON: %w", err)
	}

	names := make(map[string]string, len(rawNames))
	codes := make([]string, 0, len(rawNames))
	for code, name := range rawNames {
		code = normalizeCode(code)
		names[code] = name
		codes = append(codes, code)
	}
	sort.Strings(codes)

	presets := make([]entities.Preset, 0, len(rawPresets))
	for name, list := range rawPresets {
		if len(list) == 0 {
			return nil, fmt.Errorf("preset %q: %w", name, ErrEmptyPreset)
		}

		preset := entities.Preset{Name: name, Codes: make([]string, 0, len(list))}
		for _, code := range list {
			code = normalizeCode(code)
			if _, ok := names[code]; !ok {
				return nil, fmt.Errorf("preset %q, code %q: %w", name, code, ErrUnknownCountry)
			}
			preset.Codes = append(preset.Codes, code)
		}
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})

	return &CountryRepository{
		names:   names,
		codes:   codes,
		presets: presets,
	}, nil
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Presets returns all presets sorted by name.
func (r *CountryRepository) Presets() []entities.Preset {
	return r.presets
}

// Preset returns the preset with the given name.
func (r *CountryRepository) Preset(name string) (entities.Preset, bool) {
	for _, p := range r.presets {
		if p.Name == name {
			return p, true
		}
	}
	return entities.Preset{}, false
}

// CountryName returns the display name of a code, or the upper-cased code if it is unknown.
func (r *CountryRepository) CountryName(code string) string {
	if name, ok := r.names[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// Country returns a catalog entry.
func (r *CountryRepository) Country(code string) (entities.Country, error) {
	name, ok := r.names[normalizeCode(code)]
	if !ok {
		return entities.Country{}, ErrUnknownCountry
	}
	return entities.Country{Code: normalizeCode(code), Name: name}, nil
}

// Codes returns every known code in sorted order.
func (r *CountryRepository) Codes() []string {
	return r.codes
}
