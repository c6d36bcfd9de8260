// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// Plain text messages and toasts.
const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgUnknownCommand = "Unknown command. Try /menu, /leaderboard, /history or /help."
	msgMenuClosed     = "Menu closed. Send /menu to open it again."
	msgNoGame         = "No game in progress. Open the /menu, pick some regions and press Start."
	msgLoading        = "Loading..."
	msgRoundOver      = "This round is already over."
	msgPickFirst      = "Pick an answer first."
	msgCloseMenuFirst = "Close the menu to keep playing."
	msgStaleButton    = "This button is no longer valid."
	msgNoScores       = "No scores yet. Finish a game to get on the board!"
	msgNoHistory      = "You have not finished any games yet."
	msgResetConfirm   = "This deletes your game history, your leaderboard score and your saved regions. Continue?"
	msgResetDone      = "Done. Everything about you has been forgotten."
	msgResetCancelled = "Reset cancelled."
)

const historySize = 5

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// newResetConfirm asks before wiping the player's data.
func newResetConfirm(chatID int64) tgbotapi.MessageConfig {
	msg := newPlainMessage(chatID, msgResetConfirm)
	msg.ReplyMarkup = buildResetKeyboard()
	return msg
}

func welcomeMessage() string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s",
		bold("🏳️ Welcome to Flag Quiz!"),
		md("Pick one or more regions below and press Start."),
		md("Send /menu at any time to open or close the menu."),
	)
}

func helpMessage() string {
	lines := []string{
		bold("How to play"),
		"",
		md("1. Open the /menu and toggle the regions you want."),
		md("2. Press Start: every flag of those regions comes up once, in random order."),
		md("3. Tap the country the flag belongs to."),
		md("4. After the answer is shown, tap any option to peek at its flag, then press Next."),
		"",
		md("/menu - open or close the menu"),
		md("/play - start a game with the current selection"),
		md("/leaderboard - best scores"),
		md("/history - your recent games"),
		md("/reset - forget your games and scores"),
	}
	return strings.Join(lines, "\n")
}

// formatMenu describes the current selection.
func formatMenu(view *entities.View) string {
	selected := make([]string, 0, len(view.Presets))
	for _, p := range view.Presets {
		if p.Active {
			selected = append(selected, p.Name)
		}
	}

	status := md("Nothing selected yet. Tap a region to add it.")
	if len(selected) > 0 {
		status = fmt.Sprintf(
			"%s %s\n%s %s",
			md("Selected:"),
			bold(strings.Join(selected, ", ")),
			md("Flags in game:"),
			bold(fmt.Sprintf("%d", countFlags(view.Presets))),
		)
	}

	text := fmt.Sprintf("%s\n\n%s", bold("🗺 Menu"), status)
	if view.CanResume() {
		text += "\n\n" + italic("A game is in progress, press Resume to continue.")
	}
	return text
}

// countFlags returns the size of the deduplicated union of active presets.
func countFlags(presets []entities.PresetState) int {
	seen := make(map[string]struct{})
	for _, p := range presets {
		if !p.Active {
			continue
		}
		for _, code := range p.Codes {
			seen[code] = struct{}{}
		}
	}
	return len(seen)
}

// formatRoundCaption formats the caption under the flag.
func formatRoundCaption(round *entities.RoundView) string {
	header := fmt.Sprintf(
		"%s  %s",
		bold(fmt.Sprintf("Round %d/%d", round.Number(), round.Total)),
		md(fmt.Sprintf("· Score %d", round.Score)),
	)

	if round.State != entities.RoundAnswerRevealed {
		return fmt.Sprintf("%s\n\n%s", header, md("Which country does this flag belong to?"))
	}

	text := fmt.Sprintf(
		"%s\n\n%s\n%s %s",
		header,
		bold(feedbackEmoji(round.Feedback)+" "+round.Feedback),
		md("This is the flag of"),
		bold(round.AnswerName+"."),
	)

	if round.FlagCode != round.AnswerCode {
		text += "\n\n" + md("👁 Previewing: ") + bold(previewName(round))
	} else {
		text += "\n\n" + italic("Tap an option to see its flag.")
	}

	return text
}

func feedbackEmoji(feedback string) string {
	if feedback == entities.FeedbackCorrect {
		return "✅"
	}
	return "❌"
}

func previewName(round *entities.RoundView) string {
	for _, opt := range round.Options {
		if opt.Code == round.FlagCode {
			return opt.Name
		}
	}
	return strings.ToUpper(round.FlagCode)
}

// formatGameStart announces a new game.
func formatGameStart(view *entities.View) string {
	return fmt.Sprintf(
		"%s\n\n%s %s",
		bold("🎯 Game on!"),
		md("Flags to guess:"),
		bold(fmt.Sprintf("%d", view.Round.Total)),
	)
}

// formatResult formats the end-of-game summary.
func formatResult(result *entities.GameResult) string {
	percentage := result.Accuracy()

	emoji, message := "📚", "Keep practicing, the flags will stick!"
	switch {
	case percentage >= 90:
		emoji, message = "🌟", "Outstanding, you know your flags!"
	case percentage >= 70:
		emoji, message = "👍", "Great result!"
	case percentage >= 50:
		emoji, message = "💪", "Not bad, keep going!"
	}

	progressBar := buildProgressBar(result.Correct, result.Total, 10)

	return fmt.Sprintf(
		"%s %s\n\n%s %s\n%s\n\n%s",
		md(emoji),
		bold("Game over!"),
		md("Score:"),
		bold(fmt.Sprintf("%d/%d (%.0f%%)", result.Correct, result.Total, percentage)),
		md(progressBar),
		md(message),
	)
}

// buildProgressBar renders a fixed-width bar of current out of total.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}
	filled := current * length / total
	if filled > length {
		filled = length
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", length-filled) + "]"
}

// formatLeaderboard formats the top scores and the player's own rank.
func formatLeaderboard(entries []entities.LeaderboardEntry, rank int64) string {
	if len(entries) == 0 {
		return md(msgNoScores)
	}

	lines := []string{bold("🏆 Leaderboard"), ""}
	for _, e := range entries {
		lines = append(lines, md(fmt.Sprintf("%s %s - %d", medal(e.Rank), e.Player, e.Score)))
	}

	if rank > 0 {
		lines = append(lines, "", md(fmt.Sprintf("Your rank: #%d", rank)))
	}

	return strings.Join(lines, "\n")
}

func medal(rank int64) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

// formatHistory formats lifetime totals and the most recent games.
func formatHistory(stats *entities.PlayerStats, results []*entities.GameResult) string {
	if stats == nil || stats.GamesPlayed == 0 {
		return md(msgNoHistory)
	}

	lines := []string{
		bold("📊 Your games"),
		"",
		md(fmt.Sprintf("Games played: %d", stats.GamesPlayed)),
		md(fmt.Sprintf("Best score: %d", stats.BestScore)),
		md(fmt.Sprintf("Accuracy: %.1f%%", stats.Accuracy())),
	}

	if len(results) > 0 {
		lines = append(lines, "", bold("Recent"))
		for _, r := range results {
			lines = append(lines, md(fmt.Sprintf(
				"%s · %s · %d/%d",
				r.FinishedAt.Format("2006-01-02 15:04"),
				strings.Join(r.Presets, ", "),
				r.Correct,
				r.Total,
			)))
		}
	}

	return strings.Join(lines, "\n")
}
