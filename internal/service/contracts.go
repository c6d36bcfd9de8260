package service

import (
	"context"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// Catalog gives access to static country and preset data.
type Catalog interface {
	Presets() []entities.Preset
	CountryName(code string) string
}

// SessionStore keeps player sessions in memory.
type SessionStore interface {
	Get(key string) (*Session, bool)
	LoadOrStore(key string, s *Session) (*Session, bool)
	Delete(key string)
}

type SettingsRepository interface {
	GetByPlayer(ctx context.Context, playerKey string) (*entities.PlayerSettings, error)
	Save(ctx context.Context, settings *entities.PlayerSettings) error
}

type ResultRepository interface {
	Save(ctx context.Context, result *entities.GameResult) error
	ListByPlayer(ctx context.Context, playerKey string, limit int) ([]*entities.GameResult, error)
	Stats(ctx context.Context, playerKey string) (*entities.PlayerStats, error)
}

// Leaderboard keeps the best score per player key; name is only for display.
type Leaderboard interface {
	SubmitScore(ctx context.Context, playerKey, name string, score int64) error
	Top(ctx context.Context, limit int64) ([]entities.LeaderboardEntry, error)
	Rank(ctx context.Context, playerKey string) (int64, error)
	Remove(ctx context.Context, playerKey string) error
}

// PlayerResetter deletes everything stored about a player.
type PlayerResetter interface {
	ResetPlayer(ctx context.Context, playerKey string) error
}
