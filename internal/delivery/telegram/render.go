package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// sendMenu sends the menu with preset toggles.
func (h *Handler) sendMenu(chatID int64, view *entities.View) error {
	msg := newMessage(chatID, formatMenu(view))
	msg.ReplyMarkup = buildMenuKeyboard(view)
	return h.send(msg)
}

// editMenu redraws the menu in place after a toggle.
func (h *Handler) editMenu(chatID int64, msgID int, view *entities.View) error {
	edit := newEdit(chatID, msgID, formatMenu(view))
	kb := buildMenuKeyboard(view)
	edit.ReplyMarkup = &kb
	return h.send(edit)
}

// replaceMenu turns the menu message into plain text without buttons.
func (h *Handler) replaceMenu(chatID int64, msgID int, text string) error {
	return h.send(newEdit(chatID, msgID, text))
}

// sendRound sends the flag of the current round with its options.
// Without a flag image the round degrades to a text message.
func (h *Handler) sendRound(chatID int64, view *entities.View) error {
	round := view.Round
	if round == nil {
		return h.send(newPlainMessage(chatID, msgNoGame))
	}

	caption := formatRoundCaption(round)
	kb := buildRoundKeyboard(round)

	flag, err := h.flags.Resolve(round.FlagCode)
	if err != nil {
		h.logger.Warn("flag asset missing",
			zap.String("code", round.FlagCode),
			zap.Error(err),
		)
		msg := newMessage(chatID, md(msgLoading)+"\n\n"+caption)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}

	photo := tgbotapi.NewPhoto(chatID, flagFile(flag))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdownV2
	photo.ReplyMarkup = kb

	return h.send(photo)
}

// editRound updates a round message in place. With swapFlag the photo is
// replaced by the flag currently on display.
func (h *Handler) editRound(msg *tgbotapi.Message, view *entities.View, swapFlag bool) error {
	round := view.Round
	if round == nil {
		return nil
	}

	chatID, msgID := msg.Chat.ID, msg.MessageID
	caption := formatRoundCaption(round)
	kb := buildRoundKeyboard(round)

	// The round was sent as text because its flag was missing.
	if len(msg.Photo) == 0 {
		edit := newEdit(chatID, msgID, md(msgLoading)+"\n\n"+caption)
		edit.ReplyMarkup = &kb
		return h.send(edit)
	}

	if swapFlag {
		flag, err := h.flags.Resolve(round.FlagCode)
		if err == nil {
			media := tgbotapi.NewInputMediaPhoto(flagFile(flag))
			media.Caption = caption
			media.ParseMode = tgbotapi.ModeMarkdownV2

			edit := tgbotapi.EditMessageMediaConfig{
				BaseEdit: tgbotapi.BaseEdit{
					ChatID:      chatID,
					MessageID:   msgID,
					ReplyMarkup: &kb,
				},
				Media: media,
			}
			return h.send(edit)
		}

		h.logger.Warn("flag asset missing",
			zap.String("code", round.FlagCode),
			zap.Error(err),
		)
	}

	edit := tgbotapi.NewEditMessageCaption(chatID, msgID, caption)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	edit.ReplyMarkup = &kb

	return h.send(edit)
}

// closeRound removes the buttons of a finished round.
func (h *Handler) closeRound(chatID int64, msgID int) error {
	return h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, msgID, emptyKeyboard()))
}

// sendResult sends the summary of a finished game followed by the menu.
func (h *Handler) sendResult(chatID int64, view *entities.View) error {
	if view.Result != nil {
		if err := h.send(newMessage(chatID, formatResult(view.Result))); err != nil {
			return err
		}
	}
	return h.sendMenu(chatID, view)
}
