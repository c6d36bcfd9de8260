package rest

import "github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"

type createSessionRequest struct {
	PlayerName string `json:"player_name"`
}

type sessionResponse struct {
	ID   string         `json:"id"`
	View *entities.View `json:"view"`
}

type setPresetRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type answerRequest struct {
	Round *int   `json:"round" binding:"required,min=0"`
	Code  string `json:"code" binding:"required"`
}

type previewRequest struct {
	Code string `json:"code" binding:"required"`
}

type presetResponse struct {
	Name  string   `json:"name"`
	Codes []string `json:"codes"`
}

type errorResponse struct {
	Error string `json:"error"`
}
