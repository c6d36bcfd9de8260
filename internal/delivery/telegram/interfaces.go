package telegram

import (
	"context"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

type GameService interface {
	OpenSession(ctx context.Context, key, playerName string) (*entities.View, error)
	TogglePreset(ctx context.Context, key, name string) (*entities.View, error)
	ToggleMenu(ctx context.Context, key string) (*entities.View, error)
	Start(ctx context.Context, key string) (*entities.View, error)
	Resume(ctx context.Context, key string) (*entities.View, error)
	Answer(ctx context.Context, key string, index int, code string) (*entities.View, error)
	Advance(ctx context.Context, key string) (*entities.View, error)
	Preview(ctx context.Context, key, code string) (*entities.View, error)
	ClearPreview(ctx context.Context, key string) (*entities.View, error)
	Leaderboard(ctx context.Context, limit int64) ([]entities.LeaderboardEntry, error)
	Rank(ctx context.Context, key string) (int64, error)
	History(ctx context.Context, key string, limit int) ([]*entities.GameResult, error)
	Stats(ctx context.Context, key string) (*entities.PlayerStats, error)
}

type PlayerResetter interface {
	ResetPlayer(ctx context.Context, key string) error
}

type FlagResolver interface {
	Resolve(code string) (entities.Flag, error)
}
