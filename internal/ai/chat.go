package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"landing_ai_server/internal/ai/prompts"
	"landing_ai_server/internal/types"
)

// ChatTurn is one visitor/bot exchange kept as conversation context.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// historyWindow bounds how much conversation context travels with each chat
// call; the tiny model only needs the recent turns.
const historyWindow = 6

// ChatReply answers a visitor message in the sellerbot persona. On any
// failure it falls back to the keyword-matched canned response so the widget
// always answers.
func (g *Generator) ChatReply(ctx context.Context, bot types.SellerbotConfig, company string, history []ChatTurn, message string) (string, error) {
	system := fmt.Sprintf(prompts.SellerbotSystemPrompt(),
		bot.Name, company, bot.Personality,
		strings.Join(bot.Knowledge, "; "),
		prohibitionLine(bot.Prohibitions))

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})

	content, err := g.complete(ctx, openai.ChatCompletionRequest{
		Model:       chatModel,
		Messages:    messages,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		log.Warn().Err(err).Msg("sellerbot reply failed, using canned response")
		return CannedReply(bot.Responses, message), fmt.Errorf("sellerbot reply: %w", err)
	}
	return content, nil
}

// CannedReply is the deterministic keyword table mirrored by the inline
// widget script.
func CannedReply(responses types.SellerbotResponses, message string) string {
	text := strings.ToLower(message)
	switch {
	case containsAny(text, "preço", "preco", "valor", "quanto"):
		return responses.Pricing
	case containsAny(text, "serviço", "servico", "fazem"):
		return responses.Services
	case containsAny(text, "agendar", "horário", "horario", "marcar"):
		return responses.Appointment
	default:
		return responses.Greeting
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func prohibitionLine(prohibitions string) string {
	if prohibitions == "" {
		return ""
	}
	return "Nunca fale sobre: " + prohibitions
}
