package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"landing_ai_server/internal/ai/prompts"
	"landing_ai_server/internal/types"
	"landing_ai_server/internal/utils"
)

// AnalyzePrompt turns a free-text request into a structured analysis. On any
// failure (transport, empty reply, unparseable JSON) it returns the local
// fallback analysis together with the error, so generation always proceeds.
func (g *Generator) AnalyzePrompt(ctx context.Context, userPrompt string) (types.PromptAnalysis, error) {
	content, err := g.complete(ctx, openai.ChatCompletionRequest{
		Model: analysisModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(prompts.AnalysisPrompt(), userPrompt)},
		},
		MaxTokens:   analysisMaxTokens,
		Temperature: analysisTemperature,
	})
	if err != nil {
		log.Warn().Err(err).Msg("prompt analysis failed, using local fallback")
		return FallbackAnalysis(userPrompt), fmt.Errorf("prompt analysis: %w", err)
	}

	raw, ok := utils.ExtractJSONObject(content)
	if !ok {
		log.Warn().Str("content", utils.Truncate(content, 120)).Msg("analysis reply carried no JSON object")
		return FallbackAnalysis(userPrompt), fmt.Errorf("prompt analysis: no JSON object in reply")
	}
	var analysis types.PromptAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return FallbackAnalysis(userPrompt), fmt.Errorf("prompt analysis: decode: %w", err)
	}
	if analysis.BusinessType == "" || len(analysis.Sections) == 0 {
		return FallbackAnalysis(userPrompt), fmt.Errorf("prompt analysis: incomplete reply")
	}
	return analysis, nil
}

// FallbackAnalysis is the deterministic local analysis used whenever the
// remote call fails.
func FallbackAnalysis(prompt string) types.PromptAnalysis {
	text := strings.ToLower(prompt)

	businessType := "Negócio"
	colors := types.ColorScheme{Primary: "#007bff", Secondary: "#6c757d", Accent: "#28a745"}
	switch {
	case strings.Contains(text, "restaurante") || strings.Contains(text, "comida"):
		businessType = "Restaurante"
		colors = types.ColorScheme{Primary: "#E67E22", Secondary: "#2C3E50", Accent: "#E74C3C"}
	case strings.Contains(text, "academia") || strings.Contains(text, "fitness"):
		businessType = "Academia"
		colors = types.ColorScheme{Primary: "#2E8B57", Secondary: "#1E6B3F", Accent: "#FFD700"}
	case strings.Contains(text, "clínica") || strings.Contains(text, "saúde"):
		businessType = "Clínica"
		colors = types.ColorScheme{Primary: "#3498DB", Secondary: "#2980B9", Accent: "#E74C3C"}
	case strings.Contains(text, "loja") || strings.Contains(text, "roupa"):
		businessType = "Loja"
		colors = types.ColorScheme{Primary: "#9B59B6", Secondary: "#8E44AD", Accent: "#E91E63"}
	}

	return types.PromptAnalysis{
		BusinessType: businessType,
		CompanyName:  businessType + " Premium",
		Colors:       colors,
		Sections: []types.SectionPlan{
			{Name: "hero", Type: "hero", Description: "Seção principal de apresentação"},
			{Name: "sobre", Type: "two-columns", Description: "Sobre a empresa"},
			{Name: "servicos", Type: "centered", Description: "Nossos serviços"},
			{Name: "contato", Type: "bg-image", Description: "Entre em contato"},
		},
		Keywords: []string{strings.ToLower(businessType), "qualidade", "excelência"},
		Target:   "Clientes que buscam qualidade",
		Style:    "Moderno e profissional",
	}
}

// complete issues one chat completion with a single retry on transient
// transport errors.
func (g *Generator) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		log.Warn().Err(err).Str("model", req.Model).Msg("chat completion failed, retrying once")
		time.Sleep(1 * time.Second)
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
