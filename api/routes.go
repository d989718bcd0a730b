package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landing_ai_server/internal/api"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *api.APIHandler) {

	// --- Page Lifecycle ---
	pageGroup := router.Group("/page")
	{
		pageGroup.POST("/generate", h.GeneratePage) // Generate a new landing page from a prompt or briefing
		pageGroup.GET("/current", h.CurrentPage)    // Serve the most recent page of the session
		pageGroup.POST("/import", h.ImportPage)     // Import an existing HTML file back into structured content
	}

	// --- Sellerbot Chat ---
	router.POST("/chat", h.Chat)

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
