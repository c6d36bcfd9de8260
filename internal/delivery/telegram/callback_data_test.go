package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"toggle", buildPresetToggleCallback(3), "menu:toggle:3"},
		{"start", buildMenuCallback(menuStart), "menu:start"},
		{"resume", buildMenuCallback(menuResume), "menu:resume"},
		{"close", buildMenuCallback(menuClose), "menu:close"},
		{"answer", buildQuizAnswerCallback(4, "jp"), "quiz:answer:4:jp"},
		{"peek", buildQuizPeekCallback("cu"), "quiz:peek:cu"},
		{"back", buildQuizBackCallback(), "quiz:back"},
		{"next", buildQuizNextCallback(), "quiz:next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
			assert.LessOrEqual(t, len(tt.got), 64, "telegram limits callback data to 64 bytes")
		})
	}
}

func TestDecodeCallback(t *testing.T) {
	data := decodeCallback("quiz:answer:12:um")

	assert.Equal(t, actionQuiz, data.Action)
	assert.Equal(t, quizAnswer, data.sub())

	round, ok := data.param(0)
	assert.True(t, ok)
	assert.Equal(t, "12", round)

	code, ok := data.param(1)
	assert.True(t, ok)
	assert.Equal(t, "um", code)

	_, ok = data.param(2)
	assert.False(t, ok)
}

func TestDecodeCallback_NoParams(t *testing.T) {
	data := decodeCallback("menu")

	assert.Equal(t, actionMenu, data.Action)
	assert.Empty(t, data.sub())
	_, ok := data.param(0)
	assert.False(t, ok)
}

func TestResetCallbacks(t *testing.T) {
	assert.Equal(t, "reset:confirm", buildResetCallback(resetConfirm))
	assert.Equal(t, "reset:cancel", buildResetCallback(resetCancel))

	kb := buildResetKeyboard()
	assert.Len(t, kb.InlineKeyboard[0], 2)
}
