package entities

import "time"

// PlayerSettings stores the preset selection a player made last time.
type PlayerSettings struct {
	PlayerKey string
	Presets   []string
	UpdatedAt time.Time
}

// LeaderboardEntry is one line of the best-score leaderboard.
type LeaderboardEntry struct {
	PlayerKey string `json:"-"`      // sorted set member, never shown to other players
	Player    string `json:"player"` // display name
	Score     int64  `json:"score"`
	Rank      int64  `json:"rank"`
}

// Flag points at the image of a country flag.
// Exactly one of Path and URL is set.
type Flag struct {
	Code string
	Path string // local file
	URL  string // remote image
}

// PlayerStats aggregates all finished games of a player.
type PlayerStats struct {
	PlayerKey     string
	GamesPlayed   int
	BestScore     int
	TotalCorrect  int
	TotalAnswered int
	LastPlayedAt  *time.Time
}

// Accuracy returns the share of correct answers over all games in percent.
func (s *PlayerStats) Accuracy() float64 {
	if s.TotalAnswered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAnswered) * 100
}
