package service

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

var (
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrNoPresetsSelected = errors.New("no presets selected")
	ErrNoActiveGame      = errors.New("no game in progress")
	ErrMenuOpen          = errors.New("menu is open")
)

// Session is the state of one player: preset selection, menu and the running game.
// It is not safe for concurrent use; GameService serializes access with mu.
type Session struct {
	mu sync.Mutex

	key        string
	playerName string
	presets    []entities.Preset
	active     map[string]bool
	menuOpen   bool
	state      entities.SessionState

	rnd Rand
	gen *OptionGenerator
	now func() time.Time

	gameID      uuid.UUID
	gamePresets []string
	startedAt   time.Time
	prompts     []string
	round       *RoundEngine

	result  *entities.GameResult
	pending *entities.GameResult
	endings int
}

// NewSession creates a session with the menu open and nothing selected.
func NewSession(key string, presets []entities.Preset, rnd Rand, gen *OptionGenerator) *Session {
	return &Session{
		key:      key,
		presets:  presets,
		active:   make(map[string]bool, len(presets)),
		menuOpen: true,
		state:    entities.SessionMenu,
		rnd:      rnd,
		gen:      gen,
		now:      time.Now,
	}
}

// Key returns the player key the session is stored under.
func (s *Session) Key() string { return s.key }

// SetPlayerName sets the name used on the leaderboard.
func (s *Session) SetPlayerName(name string) {
	if name != "" {
		s.playerName = name
	}
}

// PlayerName returns the leaderboard name, falling back to the key.
func (s *Session) PlayerName() string {
	if s.playerName == "" {
		return s.key
	}
	return s.playerName
}

func (s *Session) hasPreset(name string) bool {
	return slices.ContainsFunc(s.presets, func(p entities.Preset) bool {
		return p.Name == name
	})
}

// SetPreset marks a preset active or inactive.
func (s *Session) SetPreset(name string, active bool) error {
	if !s.hasPreset(name) {
		return ErrUnknownPreset
	}
	if active {
		s.active[name] = true
	} else {
		delete(s.active, name)
	}
	return nil
}

// TogglePreset flips a preset and returns its new value.
func (s *Session) TogglePreset(name string) (bool, error) {
	active := !s.active[name]
	if err := s.SetPreset(name, active); err != nil {
		return false, err
	}
	return active, nil
}

// RestorePresets replaces the selection, silently skipping names that no longer exist.
func (s *Session) RestorePresets(names []string) {
	clear(s.active)
	for _, name := range names {
		if s.hasPreset(name) {
			s.active[name] = true
		}
	}
}

// ActivePresets returns the selected preset names in catalog order.
func (s *Session) ActivePresets() []string {
	names := make([]string, 0, len(s.active))
	for _, p := range s.presets {
		if s.active[p.Name] {
			names = append(names, p.Name)
		}
	}
	return names
}

// ToggleMenu opens or closes the menu and returns whether it is open now.
// Closing the menu without a game in progress keeps the session in the menu state.
func (s *Session) ToggleMenu() bool {
	s.menuOpen = !s.menuOpen
	return s.menuOpen
}

// MenuOpen reports whether the menu is shown.
func (s *Session) MenuOpen() bool { return s.menuOpen }

// State returns the top-level session state.
func (s *Session) State() entities.SessionState { return s.state }

// Start builds the pool from the active presets, shuffles it into a prompt
// sequence and enters the first round. With nothing selected it changes nothing.
func (s *Session) Start() error {
	pool := BuildPool(s.presets, s.active)
	if len(pool) == 0 {
		return ErrNoPresetsSelected
	}

	prompts := slices.Clone(pool)
	shuffle(s.rnd, prompts)

	round, err := NewRoundEngine(prompts, pool, s.gen, s.finish)
	if err != nil {
		return err
	}

	s.gameID = uuid.New()
	s.gamePresets = s.ActivePresets()
	s.startedAt = s.now()
	s.prompts = prompts
	s.round = round
	s.result = nil
	s.pending = nil
	s.state = entities.SessionPlaying
	s.menuOpen = false

	return nil
}

// Resume closes the menu and returns to the running game.
func (s *Session) Resume() error {
	if s.state != entities.SessionPlaying {
		return ErrNoActiveGame
	}
	s.menuOpen = false
	return nil
}

// Prompts returns a copy of the current prompt sequence.
func (s *Session) Prompts() []string {
	return slices.Clone(s.prompts)
}

// Ready reports whether a game with a non-empty prompt sequence is running.
func (s *Session) Ready() bool {
	return s.state == entities.SessionPlaying && len(s.prompts) > 0
}

// Ended reports whether the last game ran to completion.
func (s *Session) Ended() bool {
	return s.state == entities.SessionEnded
}

// Round returns the engine of the running game.
func (s *Session) Round() (*RoundEngine, error) {
	if s.state != entities.SessionPlaying || s.round == nil {
		return nil, ErrNoActiveGame
	}
	if s.menuOpen {
		return nil, ErrMenuOpen
	}
	return s.round, nil
}

// finish receives the end-of-game signal from the round engine.
func (s *Session) finish() {
	s.endings++
	s.state = entities.SessionEnded
	s.menuOpen = true
	s.result = &entities.GameResult{
		ID:         s.gameID,
		PlayerKey:  s.key,
		PlayerName: s.PlayerName(),
		Presets:    s.gamePresets,
		Total:      s.round.Total(),
		Correct:    s.round.Score(),
		StartedAt:  s.startedAt,
		FinishedAt: s.now(),
	}
	s.pending = s.result
}

// TakeResult hands over the result of a just finished game once.
func (s *Session) TakeResult() *entities.GameResult {
	r := s.pending
	s.pending = nil
	return r
}

// View builds a snapshot of the session; name resolves a code to its display name.
func (s *Session) View(name func(code string) string) *entities.View {
	presets := make([]entities.PresetState, 0, len(s.presets))
	for _, p := range s.presets {
		presets = append(presets, entities.PresetState{Preset: p, Active: s.active[p.Name]})
	}

	v := &entities.View{
		PlayerKey: s.key,
		State:     s.state,
		MenuOpen:  s.menuOpen,
		Presets:   presets,
	}
	if s.gameID != uuid.Nil {
		v.GameID = s.gameID.String()
	}

	switch s.state {
	case entities.SessionPlaying:
		v.Round = s.round.View(name)
	case entities.SessionEnded:
		result := *s.result
		v.Result = &result
	}

	return v
}
