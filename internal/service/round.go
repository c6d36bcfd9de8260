package service

import (
	"errors"
	"slices"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

var (
	ErrEmptyPrompts   = errors.New("prompt sequence is empty")
	ErrUnknownOption  = errors.New("code is not among the current options")
	ErrAnswerRevealed = errors.New("answer already revealed")
	ErrAnswerPending  = errors.New("answer not revealed yet")
	ErrGameEnded      = errors.New("game has ended")
)

// RoundEngine walks a prompt sequence one round at a time.
//
// Each round goes Idle -> AnswerPending -> AnswerRevealed and then either
// back to Idle for the next prompt or to Ended after the last one.
type RoundEngine struct {
	prompts []string
	pool    []string
	gen     *OptionGenerator
	onEnd   func()

	index     int
	state     entities.RoundState
	options   []string
	chosen    string
	previewed string
	score     int
}

// NewRoundEngine creates an engine positioned on the first prompt with its options built.
// onEnd is called exactly once, when the player advances past the last prompt.
func NewRoundEngine(prompts, pool []string, gen *OptionGenerator, onEnd func()) (*RoundEngine, error) {
	if len(prompts) == 0 || len(pool) == 0 {
		return nil, ErrEmptyPrompts
	}

	e := &RoundEngine{
		prompts: prompts,
		pool:    pool,
		gen:     gen,
		onEnd:   onEnd,
		state:   entities.RoundIdle,
	}
	e.enter(0)

	return e, nil
}

func (e *RoundEngine) enter(index int) {
	e.index = index
	e.chosen = ""
	e.previewed = ""
	e.options = e.gen.GenerateOptions(e.prompts[index], e.pool)
	e.state = entities.RoundAnswerPending
}

// Index returns the zero-based index of the current prompt.
func (e *RoundEngine) Index() int { return e.index }

// Total returns the length of the prompt sequence.
func (e *RoundEngine) Total() int { return len(e.prompts) }

// State returns the current round state.
func (e *RoundEngine) State() entities.RoundState { return e.state }

// Score returns the number of correct answers so far.
func (e *RoundEngine) Score() int { return e.score }

// Correct returns the code the player has to guess in the current round.
func (e *RoundEngine) Correct() string { return e.prompts[e.index] }

// Options returns a copy of the current option codes.
func (e *RoundEngine) Options() []string {
	return slices.Clone(e.options)
}

// Select records the player's choice and reveals the answer.
func (e *RoundEngine) Select(code string) (bool, error) {
	switch e.state {
	case entities.RoundEnded:
		return false, ErrGameEnded
	case entities.RoundAnswerRevealed:
		return false, ErrAnswerRevealed
	}

	if !slices.Contains(e.options, code) {
		return false, ErrUnknownOption
	}

	e.chosen = code
	e.state = entities.RoundAnswerRevealed

	correct := code == e.Correct()
	if correct {
		e.score++
	}

	return correct, nil
}

// Feedback returns the message for the revealed answer, or an empty string.
func (e *RoundEngine) Feedback() string {
	if e.state != entities.RoundAnswerRevealed {
		return ""
	}
	if e.chosen == e.Correct() {
		return entities.FeedbackCorrect
	}
	return entities.FeedbackIncorrect
}

// Advance moves to the next prompt. It reports true when the sequence is exhausted.
func (e *RoundEngine) Advance() (bool, error) {
	switch e.state {
	case entities.RoundEnded:
		return false, ErrGameEnded
	case entities.RoundAnswerPending, entities.RoundIdle:
		return false, ErrAnswerPending
	}

	e.state = entities.RoundIdle
	e.chosen = ""
	e.previewed = ""

	if e.index == len(e.prompts)-1 {
		e.state = entities.RoundEnded
		if e.onEnd != nil {
			e.onEnd()
		}
		return true, nil
	}

	e.enter(e.index + 1)

	return false, nil
}

// Preview shows the flag of another option while the answer is revealed.
// It reports whether the displayed flag changed.
func (e *RoundEngine) Preview(code string) bool {
	if e.state != entities.RoundAnswerRevealed || !slices.Contains(e.options, code) {
		return false
	}
	if e.previewed == code {
		return false
	}
	e.previewed = code
	return true
}

// ClearPreview restores the flag of the current prompt.
func (e *RoundEngine) ClearPreview() bool {
	if e.state != entities.RoundAnswerRevealed || e.previewed == "" {
		return false
	}
	e.previewed = ""
	return true
}

// DisplayedCode returns the code whose flag should be on screen.
func (e *RoundEngine) DisplayedCode() string {
	if e.previewed != "" {
		return e.previewed
	}
	return e.Correct()
}

// View builds a snapshot of the round; name resolves a code to its display name.
func (e *RoundEngine) View(name func(code string) string) *entities.RoundView {
	revealed := e.state == entities.RoundAnswerRevealed

	options := make([]entities.Option, 0, len(e.options))
	for _, code := range e.options {
		opt := entities.Option{Code: code, Name: name(code)}
		if revealed {
			opt.Correct = code == e.Correct()
			opt.Chosen = code == e.chosen
		}
		options = append(options, opt)
	}

	v := &entities.RoundView{
		Index:       e.index,
		Total:       len(e.prompts),
		State:       e.state,
		Options:     options,
		FlagCode:    e.DisplayedCode(),
		Feedback:    e.Feedback(),
		Score:       e.score,
		IsLastRound: e.index == len(e.prompts)-1,
	}
	if revealed {
		v.AnswerCode = e.Correct()
		v.AnswerName = name(e.Correct())
	}

	return v
}
