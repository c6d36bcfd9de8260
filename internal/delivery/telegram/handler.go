package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

// Commands registered in the bot menu.
var Commands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Start the bot"},
	{Command: "menu", Description: "Open or close the menu"},
	{Command: "play", Description: "Start a game with the selected regions"},
	{Command: "leaderboard", Description: "Best scores"},
	{Command: "history", Description: "Your recent games"},
	{Command: "reset", Description: "Forget my games and scores"},
	{Command: "help", Description: "How to play"},
}

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	game            GameService
	reset           PlayerResetter
	flags           FlagResolver
	leaderboardSize int64
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	game GameService,
	reset PlayerResetter,
	flags FlagResolver,
	leaderboardSize int64,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		game:            game,
		reset:           reset,
		flags:           flags,
		leaderboardSize: leaderboardSize,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	key := playerKey(chatID)

	view, err := h.game.OpenSession(ctx, key, playerName(update.Message.From))
	if err != nil {
		h.logger.Error("failed to open session",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	if !update.Message.IsCommand() {
		// Any other text behaves like a nudge: show where the player is.
		_ = h.withErrorHandling(h.handleShow(view))(ctx, chatID)
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.handleStart(key, view))(ctx, chatID)
	case "menu":
		_ = h.withErrorHandling(h.handleMenu(key))(ctx, chatID)
	case "play":
		_ = h.withErrorHandling(h.handlePlay(key, view))(ctx, chatID)
	case "leaderboard":
		_ = h.withErrorHandling(h.handleLeaderboard(key))(ctx, chatID)
	case "history":
		_ = h.withErrorHandling(h.handleHistory(key))(ctx, chatID)
	case "reset":
		_ = h.send(newResetConfirm(chatID))
	case "help":
		_ = h.send(newMessage(chatID, helpMessage()))
	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// handleStart greets the player and opens the menu.
func (h *Handler) handleStart(key string, view *entities.View) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if !view.MenuOpen {
			var err error
			if view, err = h.game.ToggleMenu(ctx, key); err != nil {
				return err
			}
		}

		if err := h.send(newMessage(chatID, welcomeMessage())); err != nil {
			return err
		}
		return h.sendMenu(chatID, view)
	}
}

// handleMenu toggles the menu like the escape key does.
func (h *Handler) handleMenu(key string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.game.ToggleMenu(ctx, key)
		if err != nil {
			return err
		}

		switch {
		case view.MenuOpen:
			return h.sendMenu(chatID, view)
		case view.State == entities.SessionPlaying:
			return h.sendRound(chatID, view)
		default:
			return h.send(newPlainMessage(chatID, msgMenuClosed))
		}
	}
}

// handlePlay starts a game with the current selection. With nothing
// selected the state stays as it is and the menu is shown again.
func (h *Handler) handlePlay(key string, current *entities.View) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.game.Start(ctx, key)
		if err != nil {
			if errors.Is(err, service.ErrNoPresetsSelected) {
				return h.sendMenu(chatID, current)
			}
			return err
		}

		if err := h.send(newMessage(chatID, formatGameStart(view))); err != nil {
			return err
		}
		return h.sendRound(chatID, view)
	}
}

// handleShow re-sends whatever the player should be looking at.
func (h *Handler) handleShow(view *entities.View) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if view.MenuOpen || view.State != entities.SessionPlaying {
			return h.sendMenu(chatID, view)
		}
		return h.sendRound(chatID, view)
	}
}

func (h *Handler) handleLeaderboard(key string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		entries, err := h.game.Leaderboard(ctx, h.leaderboardSize)
		if err != nil {
			return err
		}

		rank, err := h.game.Rank(ctx, key)
		if err != nil {
			h.logger.Warn("failed to get rank",
				zap.String("player_key", key),
				zap.Error(err),
			)
		}

		return h.send(newMessage(chatID, formatLeaderboard(entries, rank)))
	}
}

func (h *Handler) handleHistory(key string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		stats, err := h.game.Stats(ctx, key)
		if err != nil {
			return err
		}

		results, err := h.game.History(ctx, key, historySize)
		if err != nil {
			return err
		}

		return h.send(newMessage(chatID, formatHistory(stats, results)))
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		// Redrawing an unchanged message is harmless.
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
