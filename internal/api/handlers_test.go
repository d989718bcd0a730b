package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_ai_server/internal/pipeline"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAPIHandler(pipeline.New(nil, nil, nil))

	router := gin.New()
	page := router.Group("/page")
	page.POST("/generate", h.GeneratePage)
	page.GET("/current", h.CurrentPage)
	page.POST("/import", h.ImportPage)
	router.POST("/chat", h.Chat)
	return router
}

func TestGeneratePage(t *testing.T) {
	router := testRouter()

	body := `{"prompt":"Criar landing page para Cantina Bella, um restaurante em São Paulo SP."}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/page/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var result pipeline.GenerateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ProjectID)
	assert.Contains(t, result.HTML, "<!DOCTYPE html>")
	assert.False(t, result.Stale)
}

func TestGeneratePageRejectsEmptyBody(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/page/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCurrentPageLifecycle(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page/current", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := `{"prompt":"landing page para academia de bairro"}`
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/page/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page/current", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
}

func multipartUpload(t *testing.T, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestImportPage(t *testing.T) {
	router := testRouter()

	doc := "<html><head><title>Barbearia Central</title></head><body><p>olá</p></body></html>"
	buf, contentType := multipartUpload(t, "pagina.html", "text/html", doc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/page/import", buf)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Barbearia Central")

	// imported page becomes the current one
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page/current", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestImportPageRejectsNonHTML(t *testing.T) {
	router := testRouter()

	buf, contentType := multipartUpload(t, "dados.txt", "text/plain", "not html")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/page/import", buf)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"quanto custa?"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Reply)
}

func TestChatRequiresMessage(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
