package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// playerKey identifies a Telegram chat among all players.
func playerKey(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

// playerName picks the name shown on the leaderboard.
func playerName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	if u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName
}

// flagFile converts a resolved flag into a file Telegram can send.
func flagFile(flag entities.Flag) tgbotapi.RequestFileData {
	if flag.Path != "" {
		return tgbotapi.FilePath(flag.Path)
	}
	return tgbotapi.FileURL(flag.URL)
}
