package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the top-level state of a player's session.
type SessionState string

const (
	SessionMenu    SessionState = "menu"    // no game started yet
	SessionPlaying SessionState = "playing" // a game is in progress
	SessionEnded   SessionState = "ended"   // the last game ran out of prompts
)

// GameResult is the outcome of one finished game.
type GameResult struct {
	ID         uuid.UUID `json:"id"`
	PlayerKey  string    `json:"player_key"`
	PlayerName string    `json:"player_name"`
	Presets    []string  `json:"presets"`
	Total      int       `json:"total"`
	Correct    int       `json:"correct"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Accuracy returns the share of correct answers in percent.
func (r *GameResult) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Duration returns how long the game took.
func (r *GameResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// View is an immutable snapshot of a player's session handed to the delivery layer.
type View struct {
	PlayerKey string        `json:"player_key"`
	GameID    string        `json:"game_id,omitempty"`
	State     SessionState  `json:"state"`
	MenuOpen  bool          `json:"menu_open"`
	Presets   []PresetState `json:"presets"`
	Round     *RoundView    `json:"round,omitempty"`
	Result    *GameResult   `json:"result,omitempty"`
}

// CanResume reports whether the menu should offer returning to a running game.
func (v *View) CanResume() bool {
	return v.State == SessionPlaying
}
