// Package pipeline orchestrates a generation request end to end: briefing
// extraction, catalog lookup, optional AI enrichment, concurrent image
// generation, document assembly and export. The pipeline itself is stateless
// given its inputs; only the session carries the current document.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"landing_ai_server/internal/ai"
	"landing_ai_server/internal/assemble"
	"landing_ai_server/internal/briefing"
	"landing_ai_server/internal/catalog"
	"landing_ai_server/internal/export"
	"landing_ai_server/internal/images"
	"landing_ai_server/internal/importer"
	"landing_ai_server/internal/types"
)

// ContentService is the slice of the AI boundary the pipeline consumes.
type ContentService interface {
	AnalyzePrompt(ctx context.Context, prompt string) (types.PromptAnalysis, error)
	GenerateSectionCopy(ctx context.Context, analysis types.PromptAnalysis) (types.GeneratedCopy, error)
	ChatReply(ctx context.Context, bot types.SellerbotConfig, company string, history []ai.ChatTurn, message string) (string, error)
}

// ImageService resolves image prompts to data URLs.
type ImageService interface {
	GenerateBatch(ctx context.Context, specs map[string]images.Spec) map[string]string
}

type Pipeline struct {
	extractor *briefing.Extractor
	assembler *assemble.Assembler
	importer  *importer.Importer
	content   ContentService
	images    ImageService
	exporter  *export.Writer
	session   *Session
}

func New(content ContentService, imageSvc ImageService, exporter *export.Writer) *Pipeline {
	return &Pipeline{
		extractor: briefing.New(),
		assembler: assemble.New(),
		importer:  importer.New(),
		content:   content,
		images:    imageSvc,
		exporter:  exporter,
		session:   NewSession(),
	}
}

func (p *Pipeline) Session() *Session {
	return p.session
}

// GenerateInput carries either a free-text prompt or a structured briefing
// object; the prompt wins when both are present.
type GenerateInput struct {
	Prompt   string         `json:"prompt"`
	Briefing map[string]any `json:"briefing"`
}

type GenerateResult struct {
	RequestID uint64 `json:"requestId"`
	ProjectID string `json:"projectId"`
	HTML      string `json:"html"`
	Enriched  bool   `json:"enriched"`
	Stale     bool   `json:"stale"`
	Notice    string `json:"notice,omitempty"`
	FilePath  string `json:"-"`
}

// Generate runs the full pipeline. It never fails: every remote error is
// absorbed into the catalog-fallback path and reported only as a notice.
func (p *Pipeline) Generate(ctx context.Context, input GenerateInput) GenerateResult {
	requestID := p.session.NextRequestID()
	projectID := uuid.NewString()

	var data types.BriefingData
	if input.Prompt != "" {
		data = p.extractor.FromText(input.Prompt)
	} else {
		data = p.extractor.FromMap(input.Briefing)
	}
	bundle := catalog.Lookup(data.BusinessType)

	generated, enriched, notice := p.enrich(ctx, input, data)
	imageMap := p.generateImages(ctx, data, generated)

	html := p.assembler.Assemble(data, bundle, generated, imageMap)
	content := p.buildContent(data, bundle, generated, imageMap)

	filePath := ""
	if p.exporter != nil {
		path, err := p.exporter.Write(projectID, html)
		if err != nil {
			log.Warn().Err(err).Str("project", projectID).Msg("export failed")
		} else {
			filePath = path
		}
	}

	stale := !p.session.Install(requestID, content, html)
	if stale {
		log.Info().Uint64("request", requestID).Msg("generation result discarded as stale")
	}

	return GenerateResult{
		RequestID: requestID,
		ProjectID: projectID,
		HTML:      html,
		Enriched:  enriched,
		Stale:     stale,
		Notice:    notice,
		FilePath:  filePath,
	}
}

// enrich runs the remote analysis and copywriting. Any failure yields
// (nil copy, false, user notice) and the catalog fallback takes over.
func (p *Pipeline) enrich(ctx context.Context, input GenerateInput, data types.BriefingData) (*types.GeneratedCopy, bool, string) {
	if p.content == nil {
		return nil, false, ""
	}
	prompt := input.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf("Criar landing page para %s, um %s em %s. %s",
			data.CompanyName, data.BusinessType, data.City, data.Description)
	}

	analysis, analysisErr := p.content.AnalyzePrompt(ctx, prompt)
	generated, copyErr := p.content.GenerateSectionCopy(ctx, analysis)

	if copyErr != nil || len(generated.Sections) == 0 {
		err := copyErr
		if err == nil {
			err = analysisErr
		}
		return nil, false, ai.UserFacingMessage(err)
	}
	notice := ""
	if analysisErr != nil {
		notice = ai.UserFacingMessage(analysisErr)
	}
	return &generated, analysisErr == nil, notice
}

// generateImages issues the batch for the fixed slots plus one per generated
// section prompt. Hero and bg-image sections get larger canvases.
func (p *Pipeline) generateImages(ctx context.Context, data types.BriefingData, generated *types.GeneratedCopy) types.ImageMap {
	if p.images == nil {
		return nil
	}
	specs := map[string]images.Spec{
		"logo": {
			Prompt: fmt.Sprintf("Professional logo for %s company called %s, clean design, modern style", data.BusinessType, data.CompanyName),
			Width:  400, Height: 400,
		},
		"hero": {
			Prompt: fmt.Sprintf("%s em %s, professional photography, high quality", data.BusinessType, data.City),
			Width:  1920, Height: 1080,
		},
		"about": {
			Prompt: fmt.Sprintf("equipe profissional %s", data.BusinessType),
			Width:  1200, Height: 800,
		},
	}
	if generated != nil {
		for i, section := range generated.Sections {
			if section.ImagePrompt == "" {
				continue
			}
			prompt := fmt.Sprintf("%s, professional photography, high quality, %s business", section.ImagePrompt, data.BusinessType)
			switch section.Type {
			case "hero":
				specs["hero"] = images.Spec{Prompt: prompt, Width: 1920, Height: 1080}
			case "two-columns":
				specs["about"] = images.Spec{Prompt: prompt, Width: 1200, Height: 800}
			case "bg-image":
				specs[fmt.Sprintf("section_%d", i)] = images.Spec{Prompt: prompt, Width: 1600, Height: 900}
			default:
				specs[fmt.Sprintf("section_%d", i)] = images.Spec{Prompt: prompt, Width: 1200, Height: 800}
			}
		}
	}
	return p.images.GenerateBatch(ctx, specs)
}

// buildContent assembles the structured record mirrored by the document.
func (p *Pipeline) buildContent(data types.BriefingData, bundle types.PresentationBundle, generated *types.GeneratedCopy, imageMap types.ImageMap) types.BusinessContent {
	var sections []types.BusinessSection
	if generated != nil {
		for i, section := range generated.Sections {
			sections = append(sections, types.BusinessSection{
				ID:      fmt.Sprintf("section_%d", i),
				Title:   section.Title,
				Content: section.Content,
				Type:    types.SectionTypeAt(i),
			})
		}
	} else {
		sections = []types.BusinessSection{
			{ID: "section_0", Title: bundle.Title, Content: bundle.HeroText, Type: types.SectionIntro},
			{ID: "section_1", Title: "Sobre Nós", Content: bundle.AboutText, Type: types.SectionMotivation},
			{ID: "section_2", Title: "Nossos Serviços", Content: bundle.Description, Type: types.SectionTarget},
		}
	}

	responses := assemble.CannedResponses(data, bundle)
	return types.BusinessContent{
		Title:        data.CompanyName,
		Subtitle:     bundle.Description,
		HeroText:     bundle.HeroText,
		CTAText:      "Saiba Mais",
		Sections:     sections,
		Colors:       bundle.Colors,
		Images:       defaultImageDescriptions(),
		CustomImages: imageMap,
		Contact: types.ContactInfo{
			Email:   data.Email,
			Phone:   data.Phone,
			Address: data.Address,
			SocialMedia: map[string]string{
				"whatsapp": data.Phone, "instagram": "", "facebook": "", "linkedin": "",
			},
		},
		Sellerbot: types.SellerbotConfig{
			Name:        fmt.Sprintf("Assistente %s", data.CompanyName),
			Personality: "Atencioso, profissional e conhecedor dos produtos/serviços da empresa",
			Knowledge: []string{
				fmt.Sprintf("Informações sobre %s", data.CompanyName),
				"Produtos e serviços oferecidos",
				"Preços e formas de pagamento",
				"Processo de atendimento",
			},
			Responses: responses,
		},
	}
}

// defaultImageDescriptions holds the human-readable slot captions; actual
// URLs live only in customImages.
func defaultImageDescriptions() types.ImageDescriptions {
	return types.ImageDescriptions{
		Logo:       "Logo da empresa",
		Hero:       "Imagem principal da página",
		Motivation: "Imagem motivacional",
		Target:     "Imagem do público-alvo",
		Method:     "Imagem do método/processo",
		Results:    "Imagem dos resultados",
		Access:     "Imagem de acesso/contato",
		Investment: "Imagem de investimento/preços",
	}
}

// Import recovers structured content from an uploaded document and installs
// it as the session's current content, so /chat answers in its persona.
func (p *Pipeline) Import(rawHTML string) types.BusinessContent {
	content := p.importer.Import(rawHTML)
	requestID := p.session.NextRequestID()
	p.session.Install(requestID, content, rawHTML)
	return content
}

// Chat answers one visitor message in the persona of the current document.
// Works without a document too, using a generic persona, and always returns
// some reply.
func (p *Pipeline) Chat(ctx context.Context, message string) string {
	content, _, ok := p.session.Current()
	if !ok {
		content = p.importer.Import("")
	}

	bot := content.Sellerbot
	if p.content == nil {
		return ai.CannedReply(bot.Responses, message)
	}
	reply, err := p.content.ChatReply(ctx, bot, content.Title, p.session.History(), message)
	if err != nil {
		log.Warn().Err(err).Msg("chat reply degraded to canned response")
	}
	p.session.AppendTurns(
		ai.ChatTurn{Role: "user", Content: message},
		ai.ChatTurn{Role: "assistant", Content: reply},
	)
	return reply
}
