package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_ai_server/internal/types"
)

// completionServer fakes an OpenAI-compatible endpoint returning the given
// message content.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := `{"choices":[{"message":{"role":"assistant","content":` + jsonString(content) + `}}]}`
		_, _ = w.Write([]byte(resp))
	}))
}

func jsonString(s string) string {
	out := `"`
	for _, r := range s {
		switch r {
		case '"':
			out += `\"`
		case '\\':
			out += `\\`
		case '\n':
			out += `\n`
		default:
			out += string(r)
		}
	}
	return out + `"`
}

func TestAnalyzePromptParsesFencedJSON(t *testing.T) {
	reply := "```json\n{\"businessType\":\"restaurante\",\"companyName\":\"Cantina Bella\",\"colors\":{\"primary\":\"#ff5722\",\"secondary\":\"#ff8a65\",\"accent\":\"#d84315\"},\"sections\":[{\"name\":\"hero\",\"type\":\"hero\",\"description\":\"apresentação\"}],\"keywords\":[\"restaurante\"],\"target\":\"famílias\",\"style\":\"acolhedor\"}\n```"
	server := completionServer(t, reply)
	defer server.Close()

	g := NewGenerator("test-key", server.URL+"/v1")
	analysis, err := g.AnalyzePrompt(context.Background(), "landing page para restaurante")

	require.NoError(t, err)
	assert.Equal(t, "restaurante", analysis.BusinessType)
	assert.Equal(t, "Cantina Bella", analysis.CompanyName)
	assert.Equal(t, "#ff5722", analysis.Colors.Primary)
	require.Len(t, analysis.Sections, 1)
	assert.Equal(t, "hero", analysis.Sections[0].Type)
}

func TestAnalyzePromptFallsBackOnGarbage(t *testing.T) {
	server := completionServer(t, "desculpe, não consigo ajudar com isso")
	defer server.Close()

	g := NewGenerator("test-key", server.URL+"/v1")
	analysis, err := g.AnalyzePrompt(context.Background(), "landing page para restaurante italiano")

	assert.Error(t, err)
	// Fallback still yields a usable analysis
	assert.Equal(t, "Restaurante", analysis.BusinessType)
	require.NotEmpty(t, analysis.Sections)
}

func TestAnalyzePromptFallsBackOnTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	g := NewGenerator("test-key", server.URL+"/v1")
	analysis, err := g.AnalyzePrompt(context.Background(), "qualquer coisa")

	assert.Error(t, err)
	assert.Equal(t, "Negócio", analysis.BusinessType)
	assert.Equal(t, "#007bff", analysis.Colors.Primary)
}

func TestGenerateSectionCopyFallbackPerSection(t *testing.T) {
	server := completionServer(t, "sem json aqui")
	defer server.Close()

	g := NewGenerator("test-key", server.URL+"/v1")
	analysis := FallbackAnalysis("academia de bairro")
	generated, err := g.GenerateSectionCopy(context.Background(), analysis)

	assert.Error(t, err)
	require.Len(t, generated.Sections, len(analysis.Sections))
	assert.Equal(t, "Hero", generated.Sections[0].Title)
	assert.Equal(t, "hero", generated.Sections[0].Type)
	assert.NotEmpty(t, generated.Sections[0].Content)
}

func TestFallbackAnalysisKeywords(t *testing.T) {
	tests := []struct {
		prompt       string
		businessType string
		primary      string
	}{
		{"quero um site para meu restaurante", "Restaurante", "#E67E22"},
		{"academia de crossfit", "Academia", "#2E8B57"},
		{"clínica veterinária", "Clínica", "#3498DB"},
		{"loja de roupas", "Loja", "#9B59B6"},
		{"consultoria financeira", "Negócio", "#007bff"},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			analysis := FallbackAnalysis(tt.prompt)
			assert.Equal(t, tt.businessType, analysis.BusinessType)
			assert.Equal(t, tt.primary, analysis.Colors.Primary)
			assert.Len(t, analysis.Sections, 4)
		})
	}
}

func TestCannedReply(t *testing.T) {
	responses := types.SellerbotResponses{
		Greeting:    "olá",
		Services:    "nossos serviços",
		Pricing:     "nossos preços",
		Appointment: "vamos agendar",
	}
	assert.Equal(t, "nossos preços", CannedReply(responses, "Quanto custa?"))
	assert.Equal(t, "nossos serviços", CannedReply(responses, "o que vocês fazem?"))
	assert.Equal(t, "vamos agendar", CannedReply(responses, "quero marcar um horário"))
	assert.Equal(t, "olá", CannedReply(responses, "bom dia"))
}

func TestUserFacingMessage(t *testing.T) {
	rateLimited := &openai.APIError{HTTPStatusCode: 429}
	billing := &openai.APIError{HTTPStatusCode: 402}

	assert.Contains(t, UserFacingMessage(rateLimited), "Muitas requisições")
	assert.Contains(t, UserFacingMessage(billing), "indisponível")
	assert.Contains(t, UserFacingMessage(assert.AnError), "conteúdo padrão")
}
