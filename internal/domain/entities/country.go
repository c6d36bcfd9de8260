// Package entities contains domain entities used across the application.
package entities

// Country is a single entry of the static country catalog.
type Country struct {
	Code string `json:"code"` // lower-case code, key into the name and flag lookups
	Name string `json:"name"` // display name shown on option buttons
}

// Preset is a named group of country codes selectable from the menu.
type Preset struct {
	Name  string   `json:"name"`
	Codes []string `json:"codes"`
}

// PresetState is a preset together with the player's current selection.
type PresetState struct {
	Preset
	Active bool `json:"active"`
}
