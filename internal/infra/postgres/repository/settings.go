package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
	domainrepo "github.com/aliskhannn/flag-quiz-bot/internal/repository"
)

// SettingsRepository provides access to player settings data in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetByPlayer retrieves the saved preset selection of a player.
func (r *SettingsRepository) GetByPlayer(ctx context.Context, playerKey string) (*entities.PlayerSettings, error) {
	query := `
		SELECT player_key, presets, updated_at
		FROM player_settings
		WHERE player_key = $1
	`

	var settings entities.PlayerSettings
	err := r.db.QueryRow(ctx, query, playerKey).Scan(
		&settings.PlayerKey,
		&settings.Presets,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainrepo.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// Save creates or replaces the preset selection of a player.
func (r *SettingsRepository) Save(ctx context.Context, settings *entities.PlayerSettings) error {
	query := `
		INSERT INTO player_settings (player_key, presets, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_key) DO UPDATE
		SET presets = EXCLUDED.presets,
		    updated_at = EXCLUDED.updated_at
	`

	presets := settings.Presets
	if presets == nil {
		presets = []string{}
	}

	if _, err := r.db.Exec(ctx, query, settings.PlayerKey, presets, settings.UpdatedAt); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
