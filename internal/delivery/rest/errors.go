package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrUnknownPreset):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoPresetsSelected),
		errors.Is(err, service.ErrUnknownOption):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNoActiveGame),
		errors.Is(err, service.ErrMenuOpen),
		errors.Is(err, service.ErrStaleRound),
		errors.Is(err, service.ErrAnswerRevealed),
		errors.Is(err, service.ErrAnswerPending),
		errors.Is(err, service.ErrGameEnded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(status, errorResponse{Error: http.StatusText(status)})
		return
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}
