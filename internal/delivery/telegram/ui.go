package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

const (
	presetsPerRow = 2
	optionsPerRow = 2
)

// buildMenuKeyboard builds preset toggles plus start, resume and close buttons.
func buildMenuKeyboard(view *entities.View) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var row []tgbotapi.InlineKeyboardButton
	for i, p := range view.Presets {
		label := "▫️ " + p.Name
		if p.Active {
			label = "✅ " + p.Name
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildPresetToggleCallback(i)))
		if len(row) == presetsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	controls := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("▶️ Start", buildMenuCallback(menuStart)),
	}
	if view.CanResume() {
		controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("⏯ Resume", buildMenuCallback(menuResume)))
	}
	rows = append(rows, controls)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Close", buildMenuCallback(menuClose)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildRoundKeyboard builds answer buttons, or preview buttons once the answer is revealed.
func buildRoundKeyboard(round *entities.RoundView) tgbotapi.InlineKeyboardMarkup {
	revealed := round.State == entities.RoundAnswerRevealed

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, opt := range round.Options {
		var button tgbotapi.InlineKeyboardButton
		if revealed {
			button = tgbotapi.NewInlineKeyboardButtonData(optionLabel(opt, round.FlagCode), buildQuizPeekCallback(opt.Code))
		} else {
			button = tgbotapi.NewInlineKeyboardButtonData(opt.Name, buildQuizAnswerCallback(round.Index, opt.Code))
		}
		row = append(row, button)
		if len(row) == optionsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if revealed {
		var controls []tgbotapi.InlineKeyboardButton
		if round.FlagCode != round.AnswerCode {
			controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("↩️ Back", buildQuizBackCallback()))
		}
		next := "Next ▶️"
		if round.IsLastRound {
			next = "Finish 🏁"
		}
		controls = append(controls, tgbotapi.NewInlineKeyboardButtonData(next, buildQuizNextCallback()))
		rows = append(rows, controls)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func optionLabel(opt entities.Option, displayed string) string {
	prefix := ""
	switch {
	case opt.Correct:
		prefix = "✅ "
	case opt.Chosen:
		prefix = "❌ "
	}
	if opt.Code == displayed && !opt.Correct {
		prefix += "👁 "
	}
	return prefix + opt.Name
}

func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, reset", buildResetCallback(resetConfirm)),
		tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCallback(resetCancel)),
	))
}

// emptyKeyboard removes inline buttons from a message.
func emptyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
}
