package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// CallbackFunc handles a button press and returns the toast shown to the player.
type CallbackFunc func(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) (string, error)

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}

// withCallbackErrorHandling turns game state conflicts into toasts and
// reports everything else as an internal error.
func (h *Handler) withCallbackErrorHandling(fn CallbackFunc) CallbackFunc {
	return func(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) (string, error) {
		toast, err := fn(ctx, cb, data)
		if err == nil {
			return toast, nil
		}

		if msg, ok := conflictToast(err); ok {
			h.logger.Debug("callback ignored",
				zap.Int64("user_id", cb.From.ID),
				zap.String("data", cb.Data),
				zap.Error(err),
			)
			return msg, nil
		}

		h.logger.Error("callback error",
			zap.Int64("user_id", cb.From.ID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		return msgInternalError, nil
	}
}

func conflictToast(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrNoPresetsSelected):
		return "", true
	case errors.Is(err, service.ErrStaleRound),
		errors.Is(err, service.ErrAnswerRevealed),
		errors.Is(err, service.ErrGameEnded),
		errors.Is(err, service.ErrNoActiveGame):
		return msgRoundOver, true
	case errors.Is(err, service.ErrAnswerPending):
		return msgPickFirst, true
	case errors.Is(err, service.ErrMenuOpen):
		return msgCloseMenuFirst, true
	case errors.Is(err, service.ErrUnknownOption),
		errors.Is(err, service.ErrUnknownPreset),
		errors.Is(err, errBadCallback):
		return msgStaleButton, true
	}
	return "", false
}
