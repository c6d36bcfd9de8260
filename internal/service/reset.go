package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ResetService forgets a player: stored games, totals, saved presets,
// leaderboard entry and the in-memory session.
type ResetService struct {
	store       SessionStore
	resets      PlayerResetter
	leaderboard Leaderboard
	logger      *zap.Logger
}

func NewResetService(
	store SessionStore,
	resets PlayerResetter,
	leaderboard Leaderboard,
	logger *zap.Logger,
) *ResetService {
	return &ResetService{
		store:       store,
		resets:      resets,
		leaderboard: leaderboard,
		logger:      logger,
	}
}

// ResetPlayer removes all data of the player. The session is dropped last so
// a failed database reset leaves the player where they were.
func (s *ResetService) ResetPlayer(ctx context.Context, key string) error {
	if _, ok := s.store.Get(key); !ok {
		return ErrSessionNotFound
	}

	if err := s.resets.ResetPlayer(ctx, key); err != nil {
		return fmt.Errorf("reset player: %w", err)
	}

	if err := s.leaderboard.Remove(ctx, key); err != nil {
		s.logger.Warn("failed to remove leaderboard entry",
			zap.String("player_key", key),
			zap.Error(err),
		)
	}

	s.store.Delete(key)

	s.logger.Info("player reset", zap.String("player_key", key))

	return nil
}
