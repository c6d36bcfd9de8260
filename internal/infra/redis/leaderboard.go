package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// Leaderboard keys: the sorted set is keyed by player key, the hash maps
// player keys to the name shown on the board.
const (
	LeaderboardBestKey  = "flagquiz:leaderboard:best"
	LeaderboardNamesKey = "flagquiz:leaderboard:names"
)

// Leaderboard keeps best scores in a Redis sorted set.
type Leaderboard struct {
	client   *redis.Client
	key      string
	namesKey string
}

// NewLeaderboard creates a leaderboard on the default keys.
func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{
		client:   client,
		key:      LeaderboardBestKey,
		namesKey: LeaderboardNamesKey,
	}
}

// SubmitScore stores score for the player unless they already have a higher one
// and refreshes their display name.
func (l *Leaderboard) SubmitScore(ctx context.Context, playerKey, name string, score int64) error {
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAddGT(ctx, l.key, redis.Z{
			Score:  float64(score),
			Member: playerKey,
		})
		pipe.HSet(ctx, l.namesKey, playerKey, name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("submit best score: %w", err)
	}
	return nil
}

// Top returns the best limit players, highest score first.
func (l *Leaderboard) Top(ctx context.Context, limit int64) ([]entities.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	results, err := l.client.ZRevRangeWithScores(ctx, l.key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("zrevrange best scores: %w", err)
	}
	if len(results) == 0 {
		return []entities.LeaderboardEntry{}, nil
	}

	keys := make([]string, 0, len(results))
	for _, z := range results {
		member, _ := z.Member.(string)
		keys = append(keys, member)
	}

	names, err := l.client.HMGet(ctx, l.namesKey, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("hmget player names: %w", err)
	}

	entries := make([]entities.LeaderboardEntry, 0, len(results))
	for i, z := range results {
		name, _ := names[i].(string)
		if name == "" {
			name = keys[i]
		}
		entries = append(entries, entities.LeaderboardEntry{
			PlayerKey: keys[i],
			Player:    name,
			Score:     int64(z.Score),
			Rank:      int64(i) + 1,
		})
	}

	return entries, nil
}

// Rank returns the one-based position of a player, or 0 if the player is not ranked.
func (l *Leaderboard) Rank(ctx context.Context, playerKey string) (int64, error) {
	rank, err := l.client.ZRevRank(ctx, l.key, playerKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("zrevrank: %w", err)
	}
	return rank + 1, nil
}

// Remove deletes a player and their display name from the leaderboard.
func (l *Leaderboard) Remove(ctx context.Context, playerKey string) error {
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, l.key, playerKey)
		pipe.HDel(ctx, l.namesKey, playerKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	return nil
}
