package main

import (
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Handler holds shared dependencies (markdown renderer, HTML sanitizer) for
// all route handlers. Both are safe for concurrent use, so one instance
// serves every request.
type Handler struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func newHandler() *Handler {
	return &Handler{
		md:        newMarkdown(),
		sanitizer: newSanitizer(),
	}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Routes ─────────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/plan", h.createPlan)
	api.POST("/plan/report", h.createPlanReport)
}
