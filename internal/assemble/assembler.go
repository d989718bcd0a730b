// Package assemble renders the final landing-page document. The output is a
// single self-contained HTML5 string: inline CSS bound to the bundle colors,
// inline JS for the FAQ accordion, contact form and chat widget, and a
// WhatsApp deep link built from the briefing phone number.
//
// The AI-enriched and catalog-fallback paths share one template: enrichment
// only swaps text and image content, never structure, so both outputs have
// the same section order and element classes.
package assemble

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"landing_ai_server/internal/types"
	"landing_ai_server/internal/utils"
)

// briefing service cards cycle through these when the catalog supplies none.
var serviceIcons = []string{
	"fas fa-star", "fas fa-check-circle", "fas fa-cog",
	"fas fa-heart", "fas fa-shield-alt", "fas fa-trophy",
}

const maxServiceCards = 6

// Assembler renders documents from a briefing plus a presentation bundle.
type Assembler struct{}

func New() *Assembler {
	return &Assembler{}
}

// Assemble produces the complete document. copy and images are optional:
// when present their content replaces the bundle defaults in place.
// All briefing-sourced text is HTML-escaped before interpolation.
func (a *Assembler) Assemble(briefing types.BriefingData, bundle types.PresentationBundle, generated *types.GeneratedCopy, images types.ImageMap) string {
	company := html.EscapeString(briefing.CompanyName)
	city := html.EscapeString(briefing.City)
	email := html.EscapeString(briefing.Email)
	phone := html.EscapeString(briefing.Phone)
	address := html.EscapeString(briefing.Address)
	whatsapp := utils.WhatsAppNumber(briefing.Phone)

	heroTitle := fmt.Sprintf("%s em %s", html.EscapeString(bundle.Title), city)
	heroText := html.EscapeString(bundle.HeroText)
	aboutText := html.EscapeString(bundle.AboutText)
	description := html.EscapeString(bundle.Description)
	if briefing.Description != "" && briefing.Description != bundle.Description {
		aboutText = html.EscapeString(briefing.Description)
	}

	// Generated copy replaces the default hero and about text in place.
	if generated != nil {
		for _, section := range generated.Sections {
			switch section.Type {
			case "hero":
				if section.Title != "" {
					heroTitle = html.EscapeString(section.Title)
				}
				if section.Content != "" {
					heroText = html.EscapeString(section.Content)
				}
			case "two-columns":
				if section.Content != "" {
					aboutText = html.EscapeString(section.Content)
				}
			case "centered":
				if section.Content != "" {
					description = html.EscapeString(section.Content)
				}
			}
		}
	}

	heroImage := bundle.HeroImageURL
	aboutImage := bundle.AboutImageURL
	if images != nil {
		if url, ok := images["hero"]; ok && url != "" {
			heroImage = url
		}
		if url, ok := images["about"]; ok && url != "" {
			aboutImage = url
		}
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"pt-BR\">\n")
	a.writeHead(&b, briefing, bundle, company, description, heroImage)
	a.writeStyles(&b, bundle.Colors)
	b.WriteString("<body>\n")
	a.writeNav(&b, company)
	a.writeHero(&b, heroTitle, heroText, heroImage)
	a.writeServices(&b, briefing, bundle)
	a.writeAbout(&b, aboutText, aboutImage)
	a.writeTestimonials(&b, bundle)
	a.writeFAQ(&b, bundle)
	a.writeContact(&b, company, phone, email, address, whatsapp)
	a.writeFooter(&b, company)
	a.writeChatWidget(&b, briefing, bundle, company, whatsapp)
	b.WriteString("</body>\n</html>")
	return b.String()
}

func (a *Assembler) writeHead(b *strings.Builder, briefing types.BriefingData, bundle types.PresentationBundle, company, description, heroImage string) {
	title := fmt.Sprintf("%s - %s", company, html.EscapeString(bundle.Title))
	keywords := fmt.Sprintf("%s, %s, %s", company, html.EscapeString(briefing.BusinessType), html.EscapeString(briefing.City))

	fmt.Fprintf(b, `<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<meta name="description" content="%s">
<meta name="keywords" content="%s">
<meta property="og:title" content="%s">
<meta property="og:description" content="%s">
<meta property="og:image" content="%s">
<meta property="og:type" content="website">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="%s">
<meta name="twitter:image" content="%s">
<link href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css" rel="stylesheet">
`, title, description, keywords, title, description, heroImage, title, heroImage)

	// json.Marshal escapes < and > so user text cannot break out of the script block.
	structured, _ := json.Marshal(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"name":        briefing.CompanyName,
		"description": bundle.Description,
		"telephone":   briefing.Phone,
		"email":       briefing.Email,
		"address": map[string]string{
			"@type":           "PostalAddress",
			"addressLocality": briefing.City,
		},
	})
	fmt.Fprintf(b, "<script type=\"application/ld+json\">\n%s\n</script>\n", structured)
}

// writeStyles emits the inline stylesheet. The :root block comes first so the
// first three hex colors in the document are primary, secondary and accent in
// that order.
func (a *Assembler) writeStyles(b *strings.Builder, colors types.ColorScheme) {
	fmt.Fprintf(b, `<style>
:root { --primary: %s; --secondary: %s; --accent: %s; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', sans-serif; line-height: 1.6; color: #333333; }
.container { max-width: 1200px; margin: 0 auto; padding: 0 20px; }
.navbar { position: fixed; top: 0; width: 100%%; background: var(--primary); color: white; padding: 15px 0; z-index: 100; }
.navbar .container { display: flex; justify-content: space-between; align-items: center; }
.navbar a { color: white; text-decoration: none; margin-left: 20px; }
.hero { background: linear-gradient(rgba(0,0,0,0.55), rgba(0,0,0,0.55)), var(--hero-image) center/cover; color: white; text-align: center; padding: 140px 0 100px; min-height: 90vh; display: flex; align-items: center; justify-content: center; }
.hero h1 { font-size: 3rem; margin-bottom: 1rem; }
.hero p { font-size: 1.2rem; margin-bottom: 2rem; }
.cta-button { background: var(--accent); color: white; padding: 15px 30px; text-decoration: none; border-radius: 50px; font-weight: bold; display: inline-block; transition: transform 0.3s; }
.cta-button:hover { transform: translateY(-2px); }
.section { padding: 80px 0; }
.section:nth-of-type(even) { background: #f8f9fa; }
.section-title { font-size: 2.5rem; margin-bottom: 2rem; color: var(--primary); text-align: center; }
.services-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 24px; }
.service-card { background: white; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); padding: 32px; text-align: center; }
.service-icon { font-size: 2rem; color: var(--primary); margin-bottom: 16px; }
.about-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 40px; align-items: center; }
.about-grid img { width: 100%%; border-radius: 8px; }
.testimonials-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 24px; }
.testimonial { background: white; border-radius: 8px; padding: 24px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
.testimonial img { width: 48px; height: 48px; border-radius: 50%%; margin-right: 12px; vertical-align: middle; }
.faq-item { border-bottom: 1px solid #dddddd; }
.faq-question { padding: 18px 0; font-weight: bold; cursor: pointer; }
.faq-answer { display: none; padding-bottom: 18px; }
.faq-item.active .faq-answer { display: block; }
.contact-form { max-width: 520px; margin: 0 auto; display: grid; gap: 12px; }
.contact-form input, .contact-form textarea { padding: 12px; border: 1px solid #cccccc; border-radius: 5px; }
.contact-form button { background: var(--primary); color: white; border: none; padding: 14px; border-radius: 5px; cursor: pointer; }
.footer { background: #333333; color: white; padding: 40px 0; text-align: center; }
#chat-button { position: fixed; bottom: 20px; right: 20px; background: var(--primary); color: white; padding: 15px 20px; border: none; border-radius: 50px; cursor: pointer; box-shadow: 0 4px 12px rgba(0,0,0,0.3); z-index: 1000; font-size: 16px; }
#chat-modal { display: none; position: fixed; bottom: 80px; right: 20px; width: 320px; background: white; border-radius: 8px; box-shadow: 0 4px 20px rgba(0,0,0,0.3); z-index: 1000; flex-direction: column; }
#chat-header { background: var(--primary); color: white; padding: 12px; border-radius: 8px 8px 0 0; display: flex; justify-content: space-between; }
#chat-messages { height: 240px; overflow-y: auto; padding: 12px; }
#chat-input-row { display: flex; gap: 8px; padding: 12px; border-top: 1px solid #eeeeee; }
#chat-input { flex: 1; padding: 8px; border: 1px solid #cccccc; border-radius: 15px; }
#chat-send { background: var(--primary); color: white; border: none; padding: 8px 15px; border-radius: 15px; cursor: pointer; }
@media (max-width: 768px) { .hero h1 { font-size: 2rem; } .about-grid { grid-template-columns: 1fr; } }
</style>
</head>
`, colors.Primary, colors.Secondary, colors.Accent)
}

func (a *Assembler) writeNav(b *strings.Builder, company string) {
	fmt.Fprintf(b, `<nav class="navbar">
<div class="container">
<strong>%s</strong>
<div><a href="#servicos">Serviços</a><a href="#sobre">Sobre</a><a href="#contato">Contato</a></div>
</div>
</nav>
`, company)
}

func (a *Assembler) writeHero(b *strings.Builder, title, text, image string) {
	fmt.Fprintf(b, `<section class="hero" style="--hero-image: url('%s')">
<div class="container">
<h1>%s</h1>
<p>%s</p>
<a href="#contato" class="cta-button">Saiba Mais</a>
</div>
</section>
`, image, title, text)
}

// writeServices renders one card per briefing service (capped, icons cycled)
// or the bundle's default cards when the briefing lists none.
func (a *Assembler) writeServices(b *strings.Builder, briefing types.BriefingData, bundle types.PresentationBundle) {
	cards := bundle.Services
	if len(briefing.Services) > 0 {
		cards = nil
		for i, name := range briefing.Services {
			if i >= maxServiceCards {
				break
			}
			cards = append(cards, types.ServiceCard{
				Icon:        serviceIcons[i%len(serviceIcons)],
				Title:       name,
				Description: fmt.Sprintf("Oferecemos serviços de qualidade em %s com profissionalismo e dedicação.", strings.ToLower(name)),
			})
		}
	}

	b.WriteString(`<section class="section" id="servicos">
<div class="container">
<h2 class="section-title">Nossos Serviços</h2>
<div class="services-grid">
`)
	for _, card := range cards {
		fmt.Fprintf(b, `<div class="service-card">
<div class="service-icon"><i class="%s"></i></div>
<h4>%s</h4>
<p>%s</p>
</div>
`, card.Icon, html.EscapeString(card.Title), html.EscapeString(card.Description))
	}
	b.WriteString("</div>\n</div>\n</section>\n")
}

func (a *Assembler) writeAbout(b *strings.Builder, text, image string) {
	fmt.Fprintf(b, `<section class="section" id="sobre">
<div class="container">
<h2 class="section-title">Sobre Nós</h2>
<div class="about-grid">
<p>%s</p>
<img src="%s" alt="Sobre nós">
</div>
</div>
</section>
`, text, image)
}

func (a *Assembler) writeTestimonials(b *strings.Builder, bundle types.PresentationBundle) {
	b.WriteString(`<section class="section" id="depoimentos">
<div class="container">
<h2 class="section-title">O Que Dizem Nossos Clientes</h2>
<div class="testimonials-grid">
`)
	for _, t := range bundle.Testimonials {
		fmt.Fprintf(b, `<div class="testimonial">
<p>&quot;%s&quot;</p>
<div><img src="https://image.pollinations.ai/prompt/%s" alt="%s"><strong>%s</strong> <small>%s</small></div>
</div>
`, html.EscapeString(t.Text), t.ImagePrompt, html.EscapeString(t.Name), html.EscapeString(t.Name), html.EscapeString(t.Role))
	}
	b.WriteString("</div>\n</div>\n</section>\n")
}

func (a *Assembler) writeFAQ(b *strings.Builder, bundle types.PresentationBundle) {
	b.WriteString(`<section class="section" id="faq">
<div class="container">
<h2 class="section-title">Perguntas Frequentes</h2>
<div class="faq-list">
`)
	for _, entry := range bundle.FAQ {
		fmt.Fprintf(b, `<div class="faq-item">
<div class="faq-question">%s</div>
<div class="faq-answer"><p>%s</p></div>
</div>
`, html.EscapeString(entry.Question), html.EscapeString(entry.Answer))
	}
	b.WriteString("</div>\n</div>\n</section>\n")
}

func (a *Assembler) writeContact(b *strings.Builder, company, phone, email, address, whatsapp string) {
	fmt.Fprintf(b, `<section class="section" id="contato">
<div class="container">
<h2 class="section-title">Entre em Contato</h2>
<form class="contact-form" id="contact-form">
<input type="text" name="name" placeholder="Seu nome" required>
<input type="email" name="email" placeholder="Seu e-mail" required>
<textarea name="message" rows="4" placeholder="Sua mensagem"></textarea>
<button type="submit">Enviar Mensagem</button>
</form>
<p><strong>WhatsApp:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Endereço:</strong> %s</p>
<p><a class="cta-button" href="https://wa.me/%s?text=Ol%%C3%%A1%%2C%%20gostaria%%20de%%20mais%%20informa%%C3%%A7%%C3%%B5es">Falar no WhatsApp</a></p>
</div>
</section>
`, phone, email, address, whatsapp)
}

func (a *Assembler) writeFooter(b *strings.Builder, company string) {
	fmt.Fprintf(b, `<footer class="footer">
<div class="container">
<h3>%s</h3>
<p>© 2026 %s. Todos os direitos reservados.</p>
</div>
</footer>
`, company, company)
}
