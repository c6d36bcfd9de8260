package repository

import "errors"

var (
	ErrSettingsNotFound = errors.New("player settings not found")
	ErrUnknownCountry   = errors.New("unknown country code")
	ErrEmptyPreset      = errors.New("preset has no countries")
	ErrFlagNotFound     = errors.New("flag asset not found")
)
