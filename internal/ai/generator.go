// Package ai is the boundary around the chat-completion API. The Mistral API
// speaks the OpenAI wire protocol, so the client is a go-openai client with
// the base URL swapped. Every operation degrades instead of failing hard:
// callers receive a local fallback value alongside a descriptive error.
package ai

import (
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"landing_ai_server/internal/utils"
)

const (
	// mistral-large for structured analysis and copywriting, the tiny
	// model for short live-chat replies.
	analysisModel = "mistral-large-latest"
	chatModel     = "mistral-tiny"

	analysisMaxTokens = 1000
	sectionMaxTokens  = 800
	chatMaxTokens     = 60

	analysisTemperature = 0.3
	sectionTemperature  = 0.7
	chatTemperature     = 0.6
)

// ErrEmptyResponse is returned when the API answers without content.
var ErrEmptyResponse = errors.New("chat completion returned empty response")

type Generator struct {
	client *openai.Client
}

// NewGenerator builds a client against an OpenAI-compatible endpoint.
func NewGenerator(apiKey, baseURL string) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Generator{client: openai.NewClientWithConfig(cfg)}
}

// UserFacingMessage maps an API error to the informational notice shown to
// the user. Rate-limit and billing failures get specific wording; everything
// else shares the generic fallback notice. The generated document is not
// affected either way.
func UserFacingMessage(err error) string {
	switch utils.APIStatusCode(err) {
	case 429:
		return "Muitas requisições no momento. Usamos o conteúdo padrão; tente novamente em instantes para uma versão enriquecida."
	case 402:
		return "O serviço de geração de conteúdo está indisponível para esta conta. Usamos o conteúdo padrão."
	default:
		return "Não foi possível enriquecer o conteúdo agora. Usamos o conteúdo padrão."
	}
}
