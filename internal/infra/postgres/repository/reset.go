package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
)

// ResetRepository wipes everything stored about a player.
type ResetRepository struct {
	transactor *postgres.Transactor
}

func NewResetRepository(transactor *postgres.Transactor) *ResetRepository {
	return &ResetRepository{transactor: transactor}
}

func (r *ResetRepository) ResetPlayer(ctx context.Context, playerKey string) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, db postgres.DBTX) error {
		if _, err := db.Exec(ctx, `DELETE FROM game_results WHERE player_key = $1`, playerKey); err != nil {
			return fmt.Errorf("delete game_results: %w", err)
		}
		if _, err := db.Exec(ctx, `DELETE FROM player_stats WHERE player_key = $1`, playerKey); err != nil {
			return fmt.Errorf("delete player_stats: %w", err)
		}
		if _, err := db.Exec(ctx, `DELETE FROM player_settings WHERE player_key = $1`, playerKey); err != nil {
			return fmt.Errorf("delete player_settings: %w", err)
		}
		return nil
	})
}
