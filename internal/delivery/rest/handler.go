package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

const maxLeaderboardLimit = 100

type Handler struct {
	game            GameService
	reset           PlayerResetter
	logger          *zap.Logger
	leaderboardSize int64
}

func NewHandler(game GameService, reset PlayerResetter, logger *zap.Logger, leaderboardSize int64) *Handler {
	return &Handler{
		game:            game,
		reset:           reset,
		logger:          logger,
		leaderboardSize: leaderboardSize,
	}
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listPresets(c *gin.Context) {
	presets := h.game.Presets()

	resp := make([]presetResponse, 0, len(presets))
	for _, p := range presets {
		resp = append(resp, presetResponse{Name: p.Name, Codes: p.Codes})
	}

	c.JSON(http.StatusOK, resp)
}

// createSession opens a session under a freshly generated key.
func (h *Handler) createSession(c *gin.Context) {
	var req createSessionRequest
	// The body is optional. Chunked requests report no length, so read until EOF.
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	key := service.NewPlayerKey()

	view, err := h.game.OpenSession(c.Request.Context(), key, req.PlayerName)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{ID: key, View: view})
}

func (h *Handler) getSession(c *gin.Context) {
	view, err := h.game.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// deleteSession forgets the player behind the session, stored history included.
func (h *Handler) deleteSession(c *gin.Context) {
	if err := h.reset.ResetPlayer(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setPreset(c *gin.Context) {
	var req setPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	view, err := h.game.SetPreset(c.Request.Context(), c.Param("id"), c.Param("name"), *req.Active)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) toggleMenu(c *gin.Context) {
	view, err := h.game.ToggleMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) start(c *gin.Context) {
	view, err := h.game.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) resume(c *gin.Context) {
	view, err := h.game.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	view, err := h.game.Answer(c.Request.Context(), c.Param("id"), *req.Round, req.Code)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) advance(c *gin.Context) {
	view, err := h.game.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	view, err := h.game.Preview(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) clearPreview(c *gin.Context) {
	view, err := h.game.ClearPreview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) leaderboard(c *gin.Context) {
	limit := h.leaderboardSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxLeaderboardLimit)
	}

	entries, err := h.game.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
