// Package rest exposes the game over a JSON HTTP API.
package rest

import (
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine. Flag images from flagsDir are served under /flags.
func NewRouter(h *Handler, logger *zap.Logger, flagsDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	if flagsDir != "" {
		r.Use(static.Serve("/flags", static.LocalFile(flagsDir, false)))
	}

	r.GET("/healthz", h.healthz)

	api := r.Group("/api/v1")
	{
		api.GET("/presets", h.listPresets)
		api.GET("/leaderboard", h.leaderboard)

		sessions := api.Group("/sessions")
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.DELETE("/:id", h.deleteSession)
		sessions.PUT("/:id/presets/:name", h.setPreset)
		sessions.POST("/:id/menu", h.toggleMenu)
		sessions.POST("/:id/start", h.start)
		sessions.POST("/:id/resume", h.resume)
		sessions.POST("/:id/answer", h.answer)
		sessions.POST("/:id/advance", h.advance)
		sessions.POST("/:id/preview", h.preview)
		sessions.DELETE("/:id/preview", h.clearPreview)
	}

	return r
}
