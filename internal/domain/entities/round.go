package entities

// RoundState describes where a round is in its lifecycle.
type RoundState string

const (
	RoundIdle           RoundState = "idle"
	RoundAnswerPending  RoundState = "answer_pending"
	RoundAnswerRevealed RoundState = "answer_revealed"
	RoundEnded          RoundState = "ended"
)

// Feedback messages shown after the player picks an option.
const (
	FeedbackCorrect   = "Nice Job!"
	FeedbackIncorrect = "Whoops!"
)

// Option is a single multiple choice entry.
type Option struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Correct bool   `json:"correct,omitempty"` // only set once the answer is revealed
	Chosen  bool   `json:"chosen,omitempty"`
}

// RoundView is a read-only snapshot of the current round.
type RoundView struct {
	Index       int        `json:"index"` // zero-based index into the prompt sequence
	Total       int        `json:"total"`
	State       RoundState `json:"state"`
	Options     []Option   `json:"options"`
	FlagCode    string     `json:"flag_code"` // flag currently displayed, differs from the prompt while previewing
	Feedback    string     `json:"feedback,omitempty"`
	AnswerCode  string     `json:"answer_code,omitempty"`
	AnswerName  string     `json:"answer_name,omitempty"`
	Score       int        `json:"score"`
	IsLastRound bool       `json:"is_last_round"`
}

// Number returns the one-based round number for display.
func (r RoundView) Number() int {
	return r.Index + 1
}
