package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
)

// ResultRepository stores finished games and per-player totals.
type ResultRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(db postgres.DBTX, transactor *postgres.Transactor) *ResultRepository {
	return &ResultRepository{db: db, transactor: transactor}
}

// Save inserts a game result and folds it into the player's totals in one transaction.
func (r *ResultRepository) Save(ctx context.Context, result *entities.GameResult) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, db postgres.DBTX) error {
		insert := `
			INSERT INTO game_results (
				id, player_key, player_name, presets,
				total, correct, started_at, finished_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`

		tag, err := db.Exec(
			ctx,
			insert,
			result.ID,
			result.PlayerKey,
			result.PlayerName,
			result.Presets,
			result.Total,
			result.Correct,
			result.StartedAt,
			result.FinishedAt,
		)
		if err != nil {
			return fmt.Errorf("insert game result: %w", err)
		}

		// Already stored, totals include it.
		if tag.RowsAffected() == 0 {
			return nil
		}

		upsert := `
			INSERT INTO player_stats (
				player_key, games_played, best_score,
				total_correct, total_answered, last_played_at
			) VALUES ($1, 1, $2, $2, $3, $4)
			ON CONFLICT (player_key) DO UPDATE
			SET games_played   = player_stats.games_played + 1,
			    best_score     = GREATEST(player_stats.best_score, EXCLUDED.best_score),
			    total_correct  = player_stats.total_correct + EXCLUDED.total_correct,
			    total_answered = player_stats.total_answered + EXCLUDED.total_answered,
			    last_played_at = EXCLUDED.last_played_at
		`

		if _, err := db.Exec(ctx, upsert, result.PlayerKey, result.Correct, result.Total, result.FinishedAt); err != nil {
			return fmt.Errorf("update player stats: %w", err)
		}

		return nil
	})
}

// ListByPlayer returns the most recent results of a player, newest first.
func (r *ResultRepository) ListByPlayer(ctx context.Context, playerKey string, limit int) ([]*entities.GameResult, error) {
	query := `
		SELECT id, player_key, player_name, presets,
		       total, correct, started_at, finished_at
		FROM game_results
		WHERE player_key = $1
		ORDER BY finished_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, playerKey, limit)
	if err != nil {
		return nil, fmt.Errorf("list game results: %w", err)
	}
	defer rows.Close()

	var results []*entities.GameResult
	for rows.Next() {
		var res entities.GameResult
		if err := rows.Scan(
			&res.ID,
			&res.PlayerKey,
			&res.PlayerName,
			&res.Presets,
			&res.Total,
			&res.Correct,
			&res.StartedAt,
			&res.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan game result: %w", err)
		}
		results = append(results, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game results: %w", err)
	}

	return results, nil
}

// Stats returns the totals of a player. A player without games gets zero totals.
func (r *ResultRepository) Stats(ctx context.Context, playerKey string) (*entities.PlayerStats, error) {
	query := `
		SELECT games_played, best_score, total_correct, total_answered, last_played_at
		FROM player_stats
		WHERE player_key = $1
	`

	stats := entities.PlayerStats{PlayerKey: playerKey}
	err := r.db.QueryRow(ctx, query, playerKey).Scan(
		&stats.GamesPlayed,
		&stats.BestScore,
		&stats.TotalCorrect,
		&stats.TotalAnswered,
		&stats.LastPlayedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &stats, nil
		}
		return nil, fmt.Errorf("get player stats: %w", err)
	}

	return &stats, nil
}
