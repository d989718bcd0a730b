// Package importer recovers a structured content record from an uploaded
// HTML document. Recovery is best-effort by design: first-match heuristics,
// positional section typing, regex contact scraping. It never fails — an
// unparseable document yields a fully defaulted record.
package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"landing_ai_server/internal/types"
	"landing_ai_server/internal/utils"
)

const (
	defaultTitle    = "Landing Page Importada"
	defaultSubtitle = "Página importada do arquivo HTML"
	defaultHeroText = "Bem-vindo!"
	defaultCTAText  = "Clique aqui"
	defaultEmail    = "contato@empresa.com"
	defaultPhone    = "(11) 99999-9999"
	defaultAddress  = "Endereço extraído do HTML ou não informado"

	sectionContentMax = 200
)

var (
	reHexColor = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)
	reEmail    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	rePhone    = regexp.MustCompile(`\(?[0-9]{2}\)?\s?9?[0-9]{4,5}-?[0-9]{4}`)
)

// Importer rebuilds BusinessContent records from raw HTML.
type Importer struct{}

func New() *Importer {
	return &Importer{}
}

// Import parses the document and extracts whatever it can. Every miss is a
// default, never an error.
func (im *Importer) Import(rawHTML string) types.BusinessContent {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return im.defaulted()
	}

	title := firstText(doc, "title")
	if title == "" {
		title = firstText(doc, "h1")
	}
	if title == "" {
		title = defaultTitle
	}

	subtitle, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	if subtitle == "" {
		subtitle = firstText(doc, "p")
	}
	if subtitle == "" {
		subtitle = defaultSubtitle
	}

	heroText := firstText(doc, "h1")
	if heroText == "" {
		heroText = firstText(doc, "h2")
	}
	if heroText == "" {
		heroText = defaultHeroText
	}

	ctaText := firstText(doc, "button")
	if ctaText == "" {
		ctaText = firstText(doc, `a[class*="btn"], a[class*="button"]`)
	}
	if ctaText == "" {
		ctaText = defaultCTAText
	}

	return types.BusinessContent{
		Title:        title,
		Subtitle:     subtitle,
		HeroText:     heroText,
		CTAText:      ctaText,
		Sections:     im.extractSections(doc, subtitle),
		Colors:       im.extractColors(doc),
		Images:       defaultImageDescriptions(),
		CustomImages: im.extractImages(doc),
		Contact:      im.extractContact(doc),
		Sellerbot:    buildSellerbot(title, subtitle),
	}
}

// extractSections takes every h2/h3 in document order. Content comes from
// the heading's next sibling, truncated; the type tag is purely positional.
func (im *Importer) extractSections(doc *goquery.Document, subtitle string) []types.BusinessSection {
	var sections []types.BusinessSection
	doc.Find("h2, h3").Each(func(i int, heading *goquery.Selection) {
		content := strings.TrimSpace(heading.Next().Text())
		if content == "" {
			content = strings.TrimSpace(heading.Text())
		}
		title := strings.TrimSpace(heading.Text())
		if title == "" {
			title = fmt.Sprintf("Seção %d", i+1)
		}
		sections = append(sections, types.BusinessSection{
			ID:      fmt.Sprintf("section_%d", i),
			Title:   title,
			Content: utils.Truncate(content, sectionContentMax),
			Type:    types.SectionTypeAt(i),
		})
	})
	if len(sections) == 0 {
		sections = append(sections, types.BusinessSection{
			ID:      "intro",
			Title:   "Sobre Nós",
			Content: subtitle,
			Type:    types.SectionIntro,
		})
	}
	return sections
}

// extractColors scans the first <style> block for 6-digit hex codes and
// assigns the first three distinct matches in order of appearance.
func (im *Importer) extractColors(doc *goquery.Document) types.ColorScheme {
	colors := defaultColors()
	styles := doc.Find("style").First().Text()
	seen := make(map[string]bool)
	var found []string
	for _, match := range reHexColor.FindAllString(styles, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true
		found = append(found, match)
		if len(found) == 3 {
			break
		}
	}
	if len(found) > 0 {
		colors.Primary = found[0]
	}
	if len(found) > 1 {
		colors.Secondary = found[1]
	}
	if len(found) > 2 {
		colors.Accent = found[2]
	}
	return colors
}

// extractImages pairs the nth <img> with the nth slot of the fixed table,
// regardless of the image's visual role.
func (im *Importer) extractImages(doc *goquery.Document) map[string]string {
	images := make(map[string]string)
	doc.Find("img").Each(func(i int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		key := fmt.Sprintf("image_%d", i)
		if i < len(types.ImageSlotOrder) {
			key = types.ImageSlotOrder[i]
		}
		images[key] = src
	})
	if len(images) == 0 {
		return nil
	}
	return images
}

func (im *Importer) extractContact(doc *goquery.Document) types.ContactInfo {
	bodyText := doc.Find("body").Text()
	email := reEmail.FindString(bodyText)
	if email == "" {
		email = defaultEmail
	}
	phone := rePhone.FindString(bodyText)
	whatsapp := phone
	if phone == "" {
		phone = defaultPhone
	}
	return types.ContactInfo{
		Email:   email,
		Phone:   phone,
		Address: defaultAddress,
		SocialMedia: map[string]string{
			"whatsapp":  whatsapp,
			"instagram": "",
			"facebook":  "",
			"linkedin":  "",
		},
	}
}

func (im *Importer) defaulted() types.BusinessContent {
	return types.BusinessContent{
		Title:    defaultTitle,
		Subtitle: defaultSubtitle,
		HeroText: defaultHeroText,
		CTAText:  defaultCTAText,
		Sections: []types.BusinessSection{
			{ID: "intro", Title: "Sobre Nós", Content: defaultSubtitle, Type: types.SectionIntro},
		},
		Colors: defaultColors(),
		Images: defaultImageDescriptions(),
		Contact: types.ContactInfo{
			Email:   defaultEmail,
			Phone:   defaultPhone,
			Address: defaultAddress,
			SocialMedia: map[string]string{
				"whatsapp": "", "instagram": "", "facebook": "", "linkedin": "",
			},
		},
		Sellerbot: buildSellerbot(defaultTitle, defaultSubtitle),
	}
}

func defaultColors() types.ColorScheme {
	return types.ColorScheme{Primary: "#007bff", Secondary: "#6c757d", Accent: "#28a745"}
}

func defaultImageDescriptions() types.ImageDescriptions {
	return types.ImageDescriptions{
		Logo:       "Logo da empresa extraído do HTML",
		Hero:       "Imagem principal da página",
		Motivation: "Imagem motivacional",
		Target:     "Imagem do público-alvo",
		Method:     "Imagem do método/processo",
		Results:    "Imagem dos resultados",
		Access:     "Imagem de acesso/contato",
		Investment: "Imagem de investimento/preços",
	}
}

func buildSellerbot(title, subtitle string) types.SellerbotConfig {
	return types.SellerbotConfig{
		Name:        fmt.Sprintf("Assistente %s", title),
		Personality: "Atencioso, profissional e conhecedor dos produtos/serviços da empresa",
		Knowledge: []string{
			fmt.Sprintf("Informações sobre %s", title),
			"Produtos e serviços oferecidos",
			"Preços e formas de pagamento",
			"Processo de atendimento",
		},
		Responses: types.SellerbotResponses{
			Greeting:    fmt.Sprintf("Olá! Bem-vindo à %s. Como posso ajudá-lo hoje?", title),
			Services:    fmt.Sprintf("Oferecemos diversos serviços relacionados ao nosso negócio. %s", subtitle),
			Pricing:     "Entre em contato conosco para conhecer nossos preços e condições especiais.",
			Appointment: "Ficou interessado? Entre em contato conosco para mais informações!",
		},
	}
}

func firstText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}
