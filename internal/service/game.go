package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrStaleRound      = errors.New("answer belongs to another round")
)

// persistTimeout bounds saving a finished game so a slow database never blocks the player.
const persistTimeout = 5 * time.Second

// GameService runs flag quiz sessions for many players.
type GameService struct {
	catalog      Catalog
	store        SessionStore
	settingsRepo SettingsRepository
	resultRepo   ResultRepository
	leaderboard  Leaderboard
	rnd          Rand
	gen          *OptionGenerator
	logger       *zap.Logger
}

func NewGameService(
	catalog Catalog,
	store SessionStore,
	settingsRepo SettingsRepository,
	resultRepo ResultRepository,
	leaderboard Leaderboard,
	rnd Rand,
	choices int,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		catalog:      catalog,
		store:        store,
		settingsRepo: settingsRepo,
		resultRepo:   resultRepo,
		leaderboard:  leaderboard,
		rnd:          rnd,
		gen:          NewOptionGenerator(rnd, choices),
		logger:       logger,
	}
}

// NewPlayerKey returns a fresh key for players without an identity of their own.
func NewPlayerKey() string {
	return uuid.NewString()
}

// Presets returns all presets in menu order.
func (s *GameService) Presets() []entities.Preset {
	return s.catalog.Presets()
}

// OpenSession returns the player's session, creating it on first use.
// A new session starts with the preset selection saved last time.
func (s *GameService) OpenSession(ctx context.Context, key, playerName string) (*entities.View, error) {
	if sess, ok := s.store.Get(key); ok {
		return s.update(sess, func(sess *Session) error {
			sess.SetPlayerName(playerName)
			return nil
		})
	}

	sess := NewSession(key, s.catalog.Presets(), s.rnd, s.gen)
	sess.SetPlayerName(playerName)

	settings, err := s.settingsRepo.GetByPlayer(ctx, key)
	switch {
	case err == nil && settings != nil:
		sess.RestorePresets(settings.Presets)
	case err != nil && !errors.Is(err, repository.ErrSettingsNotFound):
		s.logger.Warn("failed to restore presets",
			zap.String("player_key", key),
			zap.Error(err),
		)
	}

	sess, _ = s.store.LoadOrStore(key, sess)

	return s.update(sess, func(*Session) error { return nil })
}

// View returns the current snapshot of a session.
func (s *GameService) View(_ context.Context, key string) (*entities.View, error) {
	return s.withSession(key, func(*Session) error { return nil })
}

// TogglePreset flips one preset and remembers the selection.
func (s *GameService) TogglePreset(ctx context.Context, key, name string) (*entities.View, error) {
	view, err := s.withSession(key, func(sess *Session) error {
		_, err := sess.TogglePreset(name)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.saveSelection(ctx, key, view)

	return view, nil
}

// SetPreset sets one preset explicitly and remembers the selection.
func (s *GameService) SetPreset(ctx context.Context, key, name string, active bool) (*entities.View, error) {
	view, err := s.withSession(key, func(sess *Session) error {
		return sess.SetPreset(name, active)
	})
	if err != nil {
		return nil, err
	}

	s.saveSelection(ctx, key, view)

	return view, nil
}

// ToggleMenu opens or closes the menu.
func (s *GameService) ToggleMenu(_ context.Context, key string) (*entities.View, error) {
	return s.withSession(key, func(sess *Session) error {
		sess.ToggleMenu()
		return nil
	})
}

// Start begins a new game from the selected presets.
// ErrNoPresetsSelected leaves the session untouched.
func (s *GameService) Start(_ context.Context, key string) (*entities.View, error) {
	view, err := s.withSession(key, func(sess *Session) error {
		return sess.Start()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("game started",
		zap.String("player_key", key),
		zap.String("game_id", view.GameID),
		zap.Int("prompts", view.Round.Total),
	)

	return view, nil
}

// Resume closes the menu and returns to the running game.
func (s *GameService) Resume(_ context.Context, key string) (*entities.View, error) {
	return s.withSession(key, func(sess *Session) error {
		return sess.Resume()
	})
}

// Answer checks the chosen code against the prompt of round index.
func (s *GameService) Answer(_ context.Context, key string, index int, code string) (*entities.View, error) {
	return s.withSession(key, func(sess *Session) error {
		round, err := sess.Round()
		if err != nil {
			return err
		}
		if round.Index() != index {
			return ErrStaleRound
		}
		_, err = round.Select(code)
		return err
	})
}

// Advance moves to the next round. After the last round the game result is
// stored and submitted to the leaderboard.
func (s *GameService) Advance(ctx context.Context, key string) (*entities.View, error) {
	var result *entities.GameResult

	view, err := s.withSession(key, func(sess *Session) error {
		round, err := sess.Round()
		if err != nil {
			if sess.Ended() {
				return ErrGameEnded
			}
			return err
		}
		if _, err := round.Advance(); err != nil {
			return err
		}
		result = sess.TakeResult()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result != nil {
		s.recordResult(ctx, result)
	}

	return view, nil
}

// Preview shows the flag of another option after the answer is revealed.
func (s *GameService) Preview(_ context.Context, key, code string) (*entities.View, error) {
	return s.withSession(key, func(sess *Session) error {
		round, err := sess.Round()
		if err != nil {
			return err
		}
		round.Preview(code)
		return nil
	})
}

// ClearPreview shows the flag of the current prompt again.
func (s *GameService) ClearPreview(_ context.Context, key string) (*entities.View, error) {
	return s.withSession(key, func(sess *Session) error {
		round, err := sess.Round()
		if err != nil {
			return err
		}
		round.ClearPreview()
		return nil
	})
}

// Leaderboard returns the best scores.
func (s *GameService) Leaderboard(ctx context.Context, limit int64) ([]entities.LeaderboardEntry, error) {
	entries, err := s.leaderboard.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	return entries, nil
}

// Rank returns the leaderboard position of the player, 0 when unranked.
func (s *GameService) Rank(ctx context.Context, key string) (int64, error) {
	rank, err := s.leaderboard.Rank(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("get rank: %w", err)
	}
	return rank, nil
}

// History returns the player's most recent finished games.
func (s *GameService) History(ctx context.Context, key string, limit int) ([]*entities.GameResult, error) {
	results, err := s.resultRepo.ListByPlayer(ctx, key, limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

// Stats returns totals over all finished games of the player.
func (s *GameService) Stats(ctx context.Context, key string) (*entities.PlayerStats, error) {
	stats, err := s.resultRepo.Stats(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

// CountryName resolves a code to its display name.
func (s *GameService) CountryName(code string) string {
	return s.catalog.CountryName(code)
}

func (s *GameService) withSession(key string, fn func(*Session) error) (*entities.View, error) {
	sess, ok := s.store.Get(key)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.update(sess, fn)
}

func (s *GameService) update(sess *Session, fn func(*Session) error) (*entities.View, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess); err != nil {
		return nil, err
	}

	return sess.View(s.catalog.CountryName), nil
}

func (s *GameService) saveSelection(ctx context.Context, key string, view *entities.View) {
	names := make([]string, 0, len(view.Presets))
	for _, p := range view.Presets {
		if p.Active {
			names = append(names, p.Name)
		}
	}

	err := s.settingsRepo.Save(ctx, &entities.PlayerSettings{
		PlayerKey: key,
		Presets:   names,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to save presets",
			zap.String("player_key", key),
			zap.Error(err),
		)
	}
}

func (s *GameService) recordResult(ctx context.Context, result *entities.GameResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	s.logger.Info("game finished",
		zap.String("player_key", result.PlayerKey),
		zap.String("game_id", result.ID.String()),
		zap.Int("correct", result.Correct),
		zap.Int("total", result.Total),
	)

	if err := s.resultRepo.Save(ctx, result); err != nil {
		s.logger.Error("failed to save game result",
			zap.String("game_id", result.ID.String()),
			zap.Error(err),
		)
	}

	if err := s.leaderboard.SubmitScore(ctx, result.PlayerKey, result.PlayerName, int64(result.Correct)); err != nil {
		s.logger.Error("failed to submit score",
			zap.String("player_key", result.PlayerKey),
			zap.Error(err),
		)
	}
}
