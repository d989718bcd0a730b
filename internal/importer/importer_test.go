package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_ai_server/internal/assemble"
	"landing_ai_server/internal/catalog"
	"landing_ai_server/internal/types"
)

const sampleDoc = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<title>Barbearia Central</title>
<meta name="description" content="A melhor barbearia do centro">
<style>:root { --primary: #1a2b3c; --secondary: #4d5e6f; --accent: #7a8b9c; } body { color: #1a2b3c; }</style>
</head>
<body>
<h1>Barbearia Central</h1>
<p>Cortes clássicos e modernos.</p>
<h2>Nossos Serviços</h2>
<p>Corte, barba e sobrancelha com hora marcada.</p>
<h2>Horários</h2>
<p>Segunda a sábado, das 9h às 20h.</p>
<img src="https://example.com/logo.png">
<img src="https://example.com/fachada.jpg">
<p>Contato: contato@barbearia.com ou (11) 97777-1234</p>
</body>
</html>`

func TestImportExtractsFields(t *testing.T) {
	content := New().Import(sampleDoc)

	assert.Equal(t, "Barbearia Central", content.Title)
	assert.Equal(t, "A melhor barbearia do centro", content.Subtitle)
	assert.Equal(t, "Barbearia Central", content.HeroText)

	require.Len(t, content.Sections, 2)
	assert.Equal(t, "Nossos Serviços", content.Sections[0].Title)
	assert.Equal(t, "Corte, barba e sobrancelha com hora marcada.", content.Sections[0].Content)
	assert.Equal(t, types.SectionIntro, content.Sections[0].Type)
	assert.Equal(t, types.SectionMotivation, content.Sections[1].Type)

	assert.Equal(t, "#1a2b3c", content.Colors.Primary)
	assert.Equal(t, "#4d5e6f", content.Colors.Secondary)
	assert.Equal(t, "#7a8b9c", content.Colors.Accent)

	assert.Equal(t, "contato@barbearia.com", content.Contact.Email)
	assert.Equal(t, "(11) 97777-1234", content.Contact.Phone)

	// nth image goes to the nth fixed slot
	assert.Equal(t, "https://example.com/logo.png", content.CustomImages["logo"])
	assert.Equal(t, "https://example.com/fachada.jpg", content.CustomImages["hero"])
}

func TestImportMalformedNeverFails(t *testing.T) {
	for _, input := range []string{"", "<<<>>>", "not html at all", "<div><p>meio aberto"} {
		content := New().Import(input)
		assert.NotEmpty(t, content.Title, input)
		assert.NotEmpty(t, content.Subtitle, input)
		require.NotEmpty(t, content.Sections, input)
		assert.NotEmpty(t, content.Contact.Email, input)
		assert.NotEmpty(t, content.Colors.Primary, input)
	}
}

func TestImportDefaultsWhenNothingMatches(t *testing.T) {
	content := New().Import("<html><body></body></html>")
	assert.Equal(t, defaultTitle, content.Title)
	assert.Equal(t, defaultSubtitle, content.Subtitle)
	assert.Equal(t, "#007bff", content.Colors.Primary)
	require.Len(t, content.Sections, 1)
	assert.Equal(t, types.SectionIntro, content.Sections[0].Type)
}

func TestImportPositionalTypesPastTable(t *testing.T) {
	var b []byte
	b = append(b, "<html><body>"...)
	for i := 0; i < 9; i++ {
		b = append(b, "<h2>Titulo</h2><p>Conteudo da secao.</p>"...)
	}
	b = append(b, "</body></html>"...)

	content := New().Import(string(b))
	require.Len(t, content.Sections, 9)
	assert.Equal(t, types.SectionIntro, content.Sections[0].Type)
	assert.Equal(t, types.SectionInvestment, content.Sections[6].Type)
	// everything past the table maps to the last tag
	assert.Equal(t, types.SectionInvestment, content.Sections[8].Type)
}

// Round trip: importing an assembled document recovers the key fields
// instead of a fully defaulted record.
func TestImportRoundTrip(t *testing.T) {
	briefing := types.BriefingData{
		CompanyName:  "Cantina Bella",
		BusinessType: "restaurante",
		Description:  "Restaurante familiar no centro.",
		Services:     []string{"Pratos", "Sobremesas"},
		City:         "São Paulo",
		Phone:        "(11) 98888-7777",
		Email:        "contato@cantinabella.com.br",
		Address:      "Rua Augusta, 1500",
	}
	bundle := catalog.Lookup(briefing.BusinessType)
	doc := assemble.New().Assemble(briefing, bundle, nil, nil)

	content := New().Import(doc)

	assert.Contains(t, content.Title, "Cantina Bella")
	assert.Equal(t, bundle.Colors.Primary, content.Colors.Primary)
	require.NotEmpty(t, content.Sections)
	assert.NotEmpty(t, content.Sections[0].Content)
	assert.Equal(t, "contato@cantinabella.com.br", content.Contact.Email)
}
