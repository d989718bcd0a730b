package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_ai_server/internal/ai"
	"landing_ai_server/internal/export"
	"landing_ai_server/internal/images"
	"landing_ai_server/internal/types"
)

type fakeContent struct {
	analysisErr error
	copyErr     error
	chatReply   string
	chatErr     error
}

func (f *fakeContent) AnalyzePrompt(_ context.Context, prompt string) (types.PromptAnalysis, error) {
	return ai.FallbackAnalysis(prompt), f.analysisErr
}

func (f *fakeContent) GenerateSectionCopy(_ context.Context, analysis types.PromptAnalysis) (types.GeneratedCopy, error) {
	if f.copyErr != nil {
		return types.GeneratedCopy{}, f.copyErr
	}
	return types.GeneratedCopy{Sections: []types.GeneratedSection{
		{Title: "Bem-vindo", Content: "Copy gerada para o hero.", Type: "hero", ImagePrompt: "hero image"},
		{Title: "Sobre", Content: "Copy gerada para o sobre.", Type: "two-columns", ImagePrompt: "about image"},
	}}, nil
}

func (f *fakeContent) ChatReply(_ context.Context, bot types.SellerbotConfig, _ string, _ []ai.ChatTurn, message string) (string, error) {
	if f.chatErr != nil {
		return ai.CannedReply(bot.Responses, message), f.chatErr
	}
	return f.chatReply, nil
}

type fakeImages struct{}

func (fakeImages) GenerateBatch(_ context.Context, specs map[string]images.Spec) map[string]string {
	out := make(map[string]string, len(specs))
	for key := range specs {
		out[key] = "data:image/png;base64,FAKE"
	}
	return out
}

const restaurantPrompt = `Criar landing page para Cantina Bella, um restaurante em São Paulo SP.
Serviços principais: Pratos, Sobremesas
WhatsApp: (11) 98888-7777`

func TestGenerateEnrichedPath(t *testing.T) {
	dir := t.TempDir()
	p := New(&fakeContent{chatReply: "olá"}, fakeImages{}, export.NewWriter(dir))

	result := p.Generate(context.Background(), GenerateInput{Prompt: restaurantPrompt})

	assert.True(t, result.Enriched)
	assert.False(t, result.Stale)
	assert.Empty(t, result.Notice)
	assert.Contains(t, result.HTML, "Copy gerada para o hero.")
	assert.Contains(t, result.HTML, "data:image/png;base64,FAKE")
	assert.Contains(t, result.HTML, "--primary: #ff5722")

	// exported to disk
	require.NotEmpty(t, result.FilePath)
	written, err := os.ReadFile(result.FilePath)
	require.NoError(t, err)
	assert.Equal(t, result.HTML, string(written))
	assert.Equal(t, result.ProjectID+".html", filepath.Base(result.FilePath))

	// installed as session current
	content, html, ok := p.Session().Current()
	require.True(t, ok)
	assert.Equal(t, result.HTML, html)
	assert.Equal(t, "Cantina Bella", content.Title)
	require.Len(t, content.Sections, 2)
	assert.Equal(t, types.SectionIntro, content.Sections[0].Type)
}

func TestGenerateFallbackPath(t *testing.T) {
	p := New(&fakeContent{copyErr: assert.AnError}, nil, nil)

	result := p.Generate(context.Background(), GenerateInput{Prompt: restaurantPrompt})

	assert.False(t, result.Enriched)
	assert.NotEmpty(t, result.Notice)
	// catalog copy takes over, document still complete
	assert.Contains(t, result.HTML, "<!DOCTYPE html>")
	assert.Contains(t, result.HTML, "Sabores autênticos")
	assert.Contains(t, result.HTML, "--primary: #ff5722")
}

func TestGenerateWithoutServices(t *testing.T) {
	p := New(nil, nil, nil)

	result := p.Generate(context.Background(), GenerateInput{Briefing: map[string]any{
		"empresa": "Studio Fit",
		"tipo":    "academia",
	}})

	assert.False(t, result.Enriched)
	assert.Contains(t, result.HTML, "Studio Fit")
	assert.Contains(t, result.HTML, "--primary: #2e8b57")
}

func TestSessionStaleDiscard(t *testing.T) {
	s := NewSession()
	first := s.NextRequestID()
	second := s.NextRequestID()

	assert.False(t, s.Install(first, types.BusinessContent{Title: "old"}, "old"))
	assert.True(t, s.Install(second, types.BusinessContent{Title: "new"}, "new"))

	content, html, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "new", content.Title)
	assert.Equal(t, "new", html)
}

func TestImportInstallsCurrent(t *testing.T) {
	p := New(nil, nil, nil)
	content := p.Import("<html><head><title>Página Antiga</title></head><body><p>olá</p></body></html>")

	assert.Equal(t, "Página Antiga", content.Title)
	current, html, ok := p.Session().Current()
	require.True(t, ok)
	assert.Equal(t, "Página Antiga", current.Title)
	assert.Contains(t, html, "Página Antiga")
}

func TestChatFallsBackToCannedReply(t *testing.T) {
	p := New(nil, nil, nil)
	p.Import("<html><head><title>Barbearia Central</title></head><body></body></html>")

	reply := p.Chat(context.Background(), "quanto custa o corte?")
	assert.Contains(t, reply, "preços")
}

func TestChatUsesRemoteReply(t *testing.T) {
	p := New(&fakeContent{chatReply: "Temos horários livres amanhã às 10h!"}, nil, nil)
	p.Import("<html><head><title>Barbearia Central</title></head><body></body></html>")

	reply := p.Chat(context.Background(), "quero agendar")
	assert.Equal(t, "Temos horários livres amanhã às 10h!", reply)

	history := p.Session().History()
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)
}
