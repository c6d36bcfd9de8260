package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionMenu  = "menu"
	actionQuiz  = "quiz"
	actionReset = "reset"
)

// Menu sub-actions.
const (
	menuToggle = "toggle"
	menuStart  = "start"
	menuResume = "resume"
	menuClose  = "close"
)

// Quiz sub-actions.
const (
	quizAnswer = "answer"
	quizPeek   = "peek"
	quizBack   = "back"
	quizNext   = "next"
)

// Reset sub-actions.
const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// sub returns the sub-action, or an empty string.
func (cd callbackData) sub() string {
	if len(cd.Params) == 0 {
		return ""
	}
	return cd.Params[0]
}

// param returns the i-th parameter after the sub-action.
func (cd callbackData) param(i int) (string, bool) {
	if len(cd.Params) <= i+1 {
		return "", false
	}
	return cd.Params[i+1], true
}

func buildMenuCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionMenu,
		Params: params,
	}.encode()
}

// buildPresetToggleCallback refers to a preset by position, names may not fit into 64 bytes.
func buildPresetToggleCallback(index int) string {
	return buildMenuCallback(menuToggle, strconv.Itoa(index))
}

func buildQuizAnswerCallback(round int, code string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAnswer, strconv.Itoa(round), code},
	}.encode()
}

func buildQuizPeekCallback(code string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizPeek, code},
	}.encode()
}

func buildQuizBackCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizBack}}.encode()
}

func buildQuizNextCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizNext}}.encode()
}

func buildResetCallback(subAction string) string {
	return callbackData{Action: actionReset, Params: []string{subAction}}.encode()
}
