package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_ai_server/internal/catalog"
	"landing_ai_server/internal/types"
)

func sampleBriefing() types.BriefingData {
	return types.BriefingData{
		CompanyName:  "Cantina Bella",
		BusinessType: "restaurante",
		Description:  "Restaurante familiar no centro da cidade.",
		Services:     []string{"Pratos", "Sobremesas"},
		City:         "São Paulo",
		Phone:        "(11) 98888-7777",
		Email:        "contato@cantinabella.com.br",
		Address:      "Rua Augusta, 1500",
	}
}

func TestAssembleStructure(t *testing.T) {
	briefing := sampleBriefing()
	bundle := catalog.Lookup(briefing.BusinessType)
	doc := New().Assemble(briefing, bundle, nil, nil)

	assert.Equal(t, 1, strings.Count(doc, "<!DOCTYPE html>"))
	assert.Equal(t, 1, strings.Count(doc, "<title>"))
	assert.Equal(t, 1, strings.Count(doc, "<html"))
	assert.Equal(t, 1, strings.Count(doc, "</html>"))
	assert.Equal(t, 1, strings.Count(doc, "<body>"))
	assert.Equal(t, 1, strings.Count(doc, "</body>"))
}

func TestAssembleRestaurantScenario(t *testing.T) {
	briefing := sampleBriefing()
	bundle := catalog.Lookup(briefing.BusinessType)
	doc := New().Assemble(briefing, bundle, nil, nil)

	// One card per briefing service, nothing from the catalog bank
	assert.Equal(t, 2, strings.Count(doc, `<div class="service-card">`))
	assert.Contains(t, doc, "<h4>Pratos</h4>")
	assert.Contains(t, doc, "<h4>Sobremesas</h4>")
	assert.NotContains(t, doc, "Almoço Executivo")

	assert.Contains(t, doc, "--primary: #ff5722")
}

func TestAssembleWhatsAppLink(t *testing.T) {
	briefing := sampleBriefing()
	doc := New().Assemble(briefing, catalog.Lookup(briefing.BusinessType), nil, nil)
	assert.Contains(t, doc, "https://wa.me/5511988887777")
}

func TestAssembleEscapesUserText(t *testing.T) {
	briefing := sampleBriefing()
	briefing.CompanyName = `<script>alert("x")</script>`
	doc := New().Assemble(briefing, catalog.Lookup(briefing.BusinessType), nil, nil)
	assert.NotContains(t, doc, `<script>alert("x")</script>`)
	assert.Contains(t, doc, "&lt;script&gt;")
}

func TestAssembleServiceCardCap(t *testing.T) {
	briefing := sampleBriefing()
	briefing.Services = []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	doc := New().Assemble(briefing, catalog.Lookup(briefing.BusinessType), nil, nil)
	assert.Equal(t, maxServiceCards, strings.Count(doc, `<div class="service-card">`))
}

func TestAssembleFallbackToCatalogServices(t *testing.T) {
	briefing := sampleBriefing()
	briefing.Services = nil
	bundle := catalog.Lookup(briefing.BusinessType)
	doc := New().Assemble(briefing, bundle, nil, nil)
	assert.Equal(t, len(bundle.Services), strings.Count(doc, `<div class="service-card">`))
	assert.Contains(t, doc, bundle.Services[0].Title)
}

func TestAssembleEnrichedPathSameStructure(t *testing.T) {
	briefing := sampleBriefing()
	bundle := catalog.Lookup(briefing.BusinessType)
	generated := &types.GeneratedCopy{Sections: []types.GeneratedSection{
		{Title: "Sabores que contam histórias", Content: "Cozinha autoral com ingredientes da estação.", Type: "hero"},
		{Title: "Sobre", Content: "Três gerações servindo a cidade.", Type: "two-columns"},
	}}
	images := types.ImageMap{"hero": "data:image/png;base64,AAAA", "about": "data:image/png;base64,BBBB"}

	plain := New().Assemble(briefing, bundle, nil, nil)
	enriched := New().Assemble(briefing, bundle, generated, images)

	assert.Contains(t, enriched, "Sabores que contam histórias")
	assert.Contains(t, enriched, "Três gerações servindo a cidade.")
	assert.Contains(t, enriched, "data:image/png;base64,AAAA")

	// Both paths emit identical structure, only text and image content differ.
	for _, marker := range []string{
		`<section class="hero"`, `id="servicos"`, `id="sobre"`, `id="depoimentos"`,
		`id="faq"`, `id="contato"`, `<footer class="footer">`, `id="chat-modal"`,
	} {
		require.Equal(t, strings.Count(plain, marker), strings.Count(enriched, marker), marker)
	}
}

func TestCannedResponses(t *testing.T) {
	briefing := sampleBriefing()
	responses := CannedResponses(briefing, catalog.Lookup(briefing.BusinessType))
	assert.Contains(t, responses.Greeting, "Cantina Bella")
	assert.Contains(t, responses.Services, "Pratos")
	assert.Contains(t, responses.Appointment, "(11) 98888-7777")
}
