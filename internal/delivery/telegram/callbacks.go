package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

var errBadCallback = errors.New("malformed callback data")

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	toast := ""

	if cb.Message != nil {
		data := decodeCallback(cb.Data)

		var fn CallbackFunc
		switch data.Action {
		case actionMenu:
			fn = h.handleMenuCallback
		case actionQuiz:
			fn = h.handleQuizCallback
		case actionReset:
			fn = h.handleResetCallback
		}

		if fn != nil {
			toast, _ = h.withCallbackErrorHandling(fn)(ctx, cb, data)
		}
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, toast)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handleMenuCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) (string, error) {
	chatID, msgID := cb.Message.Chat.ID, cb.Message.MessageID
	key := playerKey(chatID)

	view, err := h.game.OpenSession(ctx, key, playerName(cb.From))
	if err != nil {
		return "", err
	}

	switch data.sub() {
	case menuToggle:
		raw, ok := data.param(0)
		if !ok {
			return "", errBadCallback
		}
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 || idx >= len(view.Presets) {
			return "", errBadCallback
		}

		view, err = h.game.TogglePreset(ctx, key, view.Presets[idx].Name)
		if err != nil {
			return "", err
		}
		return "", h.editMenu(chatID, msgID, view)

	case menuStart:
		view, err = h.game.Start(ctx, key)
		if err != nil {
			return "", err
		}
		if err := h.replaceMenu(chatID, msgID, formatGameStart(view)); err != nil {
			return "", err
		}
		return "", h.sendRound(chatID, view)

	case menuResume:
		view, err = h.game.Resume(ctx, key)
		if err != nil {
			return "", err
		}
		if err := h.replaceMenu(chatID, msgID, md("⏯ Back to the game.")); err != nil {
			return "", err
		}
		return "", h.sendRound(chatID, view)

	case menuClose:
		if view.MenuOpen {
			if view, err = h.game.ToggleMenu(ctx, key); err != nil {
				return "", err
			}
		}
		if err := h.replaceMenu(chatID, msgID, md(msgMenuClosed)); err != nil {
			return "", err
		}
		if view.State == entities.SessionPlaying {
			return "", h.sendRound(chatID, view)
		}
		return "", nil
	}

	return "", errBadCallback
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) (string, error) {
	chatID, msgID := cb.Message.Chat.ID, cb.Message.MessageID
	key := playerKey(chatID)

	if _, err := h.game.OpenSession(ctx, key, playerName(cb.From)); err != nil {
		return "", err
	}

	switch data.sub() {
	case quizAnswer:
		rawRound, ok1 := data.param(0)
		code, ok2 := data.param(1)
		round, err := strconv.Atoi(rawRound)
		if !ok1 || !ok2 || err != nil {
			return "", errBadCallback
		}

		view, err := h.game.Answer(ctx, key, round, code)
		if err != nil {
			return "", err
		}
		return view.Round.Feedback, h.editRound(cb.Message, view, false)

	case quizPeek:
		code, ok := data.param(0)
		if !ok {
			return "", errBadCallback
		}

		view, err := h.game.Preview(ctx, key, code)
		if err != nil {
			return "", err
		}
		return "", h.editRound(cb.Message, view, true)

	case quizBack:
		view, err := h.game.ClearPreview(ctx, key)
		if err != nil {
			return "", err
		}
		return "", h.editRound(cb.Message, view, true)

	case quizNext:
		view, err := h.game.Advance(ctx, key)
		if err != nil {
			return "", err
		}
		if err := h.closeRound(chatID, msgID); err != nil {
			h.logger.Warn("failed to close round",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
		if view.State == entities.SessionEnded {
			return "", h.sendResult(chatID, view)
		}
		return "", h.sendRound(chatID, view)
	}

	return "", errBadCallback
}

func (h *Handler) handleResetCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) (string, error) {
	chatID, msgID := cb.Message.Chat.ID, cb.Message.MessageID
	key := playerKey(chatID)

	switch data.sub() {
	case resetCancel:
		return "", h.replaceMenu(chatID, msgID, md(msgResetCancelled))

	case resetConfirm:
		if _, err := h.game.OpenSession(ctx, key, playerName(cb.From)); err != nil {
			return "", err
		}
		if err := h.reset.ResetPlayer(ctx, key); err != nil {
			return "", err
		}
		return msgResetDone, h.replaceMenu(chatID, msgID, md(msgResetDone))
	}

	return "", errBadCallback
}
