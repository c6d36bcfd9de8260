package rest

import (
	"context"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

type GameService interface {
	Presets() []entities.Preset
	OpenSession(ctx context.Context, key, playerName string) (*entities.View, error)
	View(ctx context.Context, key string) (*entities.View, error)
	SetPreset(ctx context.Context, key, name string, active bool) (*entities.View, error)
	ToggleMenu(ctx context.Context, key string) (*entities.View, error)
	Start(ctx context.Context, key string) (*entities.View, error)
	Resume(ctx context.Context, key string) (*entities.View, error)
	Answer(ctx context.Context, key string, index int, code string) (*entities.View, error)
	Advance(ctx context.Context, key string) (*entities.View, error)
	Preview(ctx context.Context, key, code string) (*entities.View, error)
	ClearPreview(ctx context.Context, key string) (*entities.View, error)
	Leaderboard(ctx context.Context, limit int64) ([]entities.LeaderboardEntry, error)
}

type PlayerResetter interface {
	ResetPlayer(ctx context.Context, key string) error
}
