package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCountries = `{"CU": "Cuba", "jp": "Japan", "ch": "Switzerland", "de": "Germany"}`

func TestNewCountryRepositoryFromJSON(t *testing.T) {
	repo, err := NewCountryRepositoryFromJSON(
		[]byte(testCountries),
		[]byte(`{"Islands": ["cu", "JP"], "Alps": ["ch", "de"]}`),
	)
	require.NoError(t, err)

	presets := repo.Presets()
	require.Len(t, presets, 2)
	assert.Equal(t, "Alps", presets[0].Name)
	assert.Equal(t, "Islands", presets[1].Name)
	assert.Equal(t, []string{"cu", "jp"}, presets[1].Codes)

	assert.Equal(t, []string{"ch", "cu", "de", "jp"}, repo.Codes())
	assert.Equal(t, "Cuba", repo.CountryName("cu"))
	assert.Equal(t, "XX", repo.CountryName("xx"))

	country, err := repo.Country(" JP ")
	require.NoError(t, err)
	assert.Equal(t, "jp", country.Code)
	assert.Equal(t, "Japan", country.Name)

	_, err = repo.Country("xx")
	assert.ErrorIs(t, err, ErrUnknownCountry)

	p, ok := repo.Preset("Islands")
	assert.True(t, ok)
	assert.Len(t, p.Codes, 2)
	_, ok = repo.Preset("Atlantis")
	assert.False(t, ok)
}

func TestNewCountryRepositoryFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		presets string
		wantErr error
	}{
		{"unknown code", `{"Islands": ["cu", "xx"]}`, ErrUnknownCountry},
		{"empty preset", `{"Nothing": []}`, ErrEmptyPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCountryRepositoryFromJSON([]byte(testCountries), []byte(tt.presets))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := NewCountryRepositoryFromJSON([]byte(`not json`), []byte(`{}`))
	assert.Error(t, err)
}

func TestNewCountryRepository_Files(t *testing.T) {
	dir := t.TempDir()
	countries := filepath.Join(dir, "countries.json")
	presets := filepath.Join(dir, "presets.json")
	require.NoError(t, os.WriteFile(countries, []byte(testCountries), 0o600))
	require.NoError(t, os.WriteFile(presets, []byte(`{"Islands": ["cu", "jp"]}`), 0o600))

	repo, err := NewCountryRepository(countries, presets)
	require.NoError(t, err)
	assert.Len(t, repo.Presets(), 1)

	_, err = NewCountryRepository(filepath.Join(dir, "missing.json"), presets)
	assert.Error(t, err)
}

func TestBundledCatalog(t *testing.T) {
	repo, err := NewCountryRepository(
		filepath.Join("..", "..", "assets", "data", "countries.json"),
		filepath.Join("..", "..", "assets", "data", "presets.json"),
	)
	require.NoError(t, err)

	islands, ok := repo.Preset("Islands")
	require.True(t, ok)
	assert.Equal(t, []string{"cu", "jp"}, islands.Codes)
}
