package api

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"landing_ai_server/internal/pipeline"
)

// maxUploadBytes bounds /page/import payloads.
const maxUploadBytes = 5 << 20

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	pipeline *pipeline.Pipeline
}

func NewAPIHandler(p *pipeline.Pipeline) *APIHandler {
	return &APIHandler{pipeline: p}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// POST /page/generate
// Accepts {"prompt": "..."} or {"briefing": {...}}. Generation never fails;
// a degraded result carries a notice instead of an error.
func (h *APIHandler) GeneratePage(c *gin.Context) {
	var req pipeline.GenerateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}
	if req.Prompt == "" && len(req.Briefing) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either prompt or briefing is required"})
		return
	}

	result := h.pipeline.Generate(c.Request.Context(), req)
	log.Info().
		Str("project", result.ProjectID).
		Bool("enriched", result.Enriched).
		Bool("stale", result.Stale).
		Msg("page generated")

	c.JSON(http.StatusCreated, result)
}

// GET /page/current
// Serves the most recent document of this session as HTML.
func (h *APIHandler) CurrentPage(c *gin.Context) {
	_, html, ok := h.pipeline.Session().Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no page has been generated yet"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// POST /page/import
// Multipart upload of an .html file; recovers a structured content record
// and installs it as the current session page.
func (h *APIHandler) ImportPage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if !isHTMLUpload(fileHeader.Filename, fileHeader.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .html files are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	content := h.pipeline.Import(string(raw))
	log.Info().Str("title", content.Title).Msg("page imported")
	c.JSON(http.StatusOK, content)
}

// POST /chat
// Answers in the sellerbot persona of the current page. Always replies,
// falling back to the canned response table on remote failure.
func (h *APIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	reply := h.pipeline.Chat(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

func isHTMLUpload(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".html") || strings.EqualFold(filepath.Ext(filename), ".htm") {
		return true
	}
	return strings.HasPrefix(contentType, "text/html")
}
