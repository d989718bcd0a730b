package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"landing_ai_server/internal/ai/prompts"
	"landing_ai_server/internal/types"
	"landing_ai_server/internal/utils"
)

// GenerateSectionCopy produces marketing copy for every planned section. A
// failed section gets deterministic fallback copy; the returned error is the
// first failure observed (nil when every section succeeded).
func (g *Generator) GenerateSectionCopy(ctx context.Context, analysis types.PromptAnalysis) (types.GeneratedCopy, error) {
	var generated types.GeneratedCopy
	var firstErr error

	for _, plan := range analysis.Sections {
		section, err := g.generateSection(ctx, analysis, plan)
		if err != nil {
			log.Warn().Err(err).Str("section", plan.Name).Msg("section copy failed, using fallback")
			if firstErr == nil {
				firstErr = err
			}
			section = fallbackSection(analysis, plan)
		}
		generated.Sections = append(generated.Sections, section)
	}
	return generated, firstErr
}

func (g *Generator) generateSection(ctx context.Context, analysis types.PromptAnalysis, plan types.SectionPlan) (types.GeneratedSection, error) {
	prompt := fmt.Sprintf(prompts.SectionPrompt(),
		analysis.BusinessType, analysis.CompanyName,
		plan.Name, plan.Type, plan.Description,
		analysis.Target, analysis.Style)

	content, err := g.complete(ctx, openai.ChatCompletionRequest{
		Model: analysisModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   sectionMaxTokens,
		Temperature: sectionTemperature,
	})
	if err != nil {
		return types.GeneratedSection{}, err
	}

	raw, ok := utils.ExtractJSONObject(content)
	if !ok {
		return types.GeneratedSection{}, fmt.Errorf("section %q: no JSON object in reply", plan.Name)
	}
	var section types.GeneratedSection
	if err := json.Unmarshal([]byte(raw), &section); err != nil {
		return types.GeneratedSection{}, fmt.Errorf("section %q: decode: %w", plan.Name, err)
	}
	section.Type = plan.Type
	return section, nil
}

func fallbackSection(analysis types.PromptAnalysis, plan types.SectionPlan) types.GeneratedSection {
	return types.GeneratedSection{
		Title:       capitalize(plan.Name),
		Content:     fmt.Sprintf("Conteúdo da seção %s para %s", plan.Name, analysis.BusinessType),
		Type:        plan.Type,
		ImagePrompt: fmt.Sprintf("Professional image for %s %s section", analysis.BusinessType, plan.Name),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
