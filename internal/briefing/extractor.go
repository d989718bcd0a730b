// Package briefing normalizes free-text prompts and structured briefing
// objects into a fully populated BriefingData record. Extraction never
// fails: any field without a match keeps its hard-coded default.
package briefing

import (
	"regexp"
	"strings"

	"landing_ai_server/internal/types"
	"landing_ai_server/internal/utils"
)

// Defaults used whenever extraction finds nothing for a field.
const (
	DefaultCompanyName  = "Sua Empresa"
	DefaultBusinessType = "empresa"
	DefaultDescription  = "Oferecemos serviços de qualidade com excelência e dedicação."
	DefaultCity         = "Sua Cidade"
	DefaultPhone        = "(11) 99999-9999"
	DefaultEmail        = "contato@empresa.com"
	DefaultAddress      = "Endereço não informado"
)

var (
	reCompanyBriefing = regexp.MustCompile(`(?i)(?:criar landing page para|landing page para)\s+([^,]+?),\s*um`)
	reCompanyLabel    = regexp.MustCompile(`(?i)(?:empresa|nome)[:\s]+([A-Za-zÀ-ÿ0-9&' ]{2,60})`)
	reDescription     = regexp.MustCompile(`(?i)descrição:\s*([^\n]+)`)
	reTarget          = regexp.MustCompile(`(?i)público-alvo:\s*([^\n]+)`)
	reGoal            = regexp.MustCompile(`(?i)objetivo principal:\s*([^\n]+)`)
	reServices        = regexp.MustCompile(`(?i)serviços principais:\s*([\s\S]*?)(?:whatsapp:|endereço:|contato:|ofertas especiais:|$)`)
	reWhatsApp        = regexp.MustCompile(`(?i)whatsapp:\s*([\d\s()+-]+)`)
	reAddress         = regexp.MustCompile(`(?i)endereço:\s*([^\n]+)`)
	reOffers          = regexp.MustCompile(`(?i)ofertas especiais:\s*([^\n]+)`)
	reEmail           = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	rePhone           = regexp.MustCompile(`\(?\d{2}\)?\s?9?\d{4,5}-?\d{4}`)
	reCityState       = regexp.MustCompile(`(?i)em\s+([A-Za-zÀ-ÿ ]+?(?:SP|RJ|MG|PR|SC|RS|BA|PE|CE|GO|DF))\b`)
	reCityLabel       = regexp.MustCompile(`(?i)cidade[:\s]+([A-Za-zÀ-ÿ ]{2,40})`)
)

// businessTypeKeywords maps request keywords to a normalized business-type
// phrase. Checked in order; first hit wins.
var businessTypeKeywords = []struct {
	keywords []string
	value    string
}{
	{[]string{"clínica", "consultório", "saúde"}, "clínica"},
	{[]string{"salão", "beleza"}, "salão de beleza"},
	{[]string{"advocacia", "advogado"}, "escritório de advocacia"},
	{[]string{"contabilidade", "contador"}, "escritório de contabilidade"},
	{[]string{"marketing", "digital"}, "agência de marketing"},
	{[]string{"restaurante", "comida"}, "restaurante"},
	{[]string{"academia", "fitness"}, "academia"},
	{[]string{"moda", "roupas", "loja"}, "loja de moda"},
	{[]string{"curso", "educação", "produto digital"}, "curso"},
	{[]string{"imóveis", "imobiliária", "imóvel", "corretor"}, "imobiliária"},
	{[]string{"consultoria"}, "consultoria"},
}

// keyAliases maps lower-cased briefing-object keys to BriefingData fields.
var keyAliases = map[string]string{
	"company": "companyName", "empresa": "companyName", "nome": "companyName", "companyname": "companyName",
	"tipo": "businessType", "businesstype": "businessType", "negocio": "businessType", "negócio": "businessType",
	"descricao": "description", "descrição": "description", "description": "description",
	"servicos": "services", "serviços": "services", "services": "services",
	"cidade": "city", "city": "city",
	"telefone": "phone", "phone": "phone", "whatsapp": "phone", "celular": "phone",
	"email": "email", "e-mail": "email",
	"endereco": "address", "endereço": "address", "address": "address",
	"objetivo": "goal", "goal": "goal",
	"ofertas": "specialOffers", "specialoffers": "specialOffers", "promocoes": "specialOffers",
	"publico": "targetAudience", "público-alvo": "targetAudience", "target": "targetAudience",
}

// Extractor builds BriefingData records from user input.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// defaults returns a record with every field populated, so extraction only
// ever overwrites and the non-empty invariant holds by construction.
func defaults() types.BriefingData {
	return types.BriefingData{
		CompanyName:  DefaultCompanyName,
		BusinessType: DefaultBusinessType,
		Description:  DefaultDescription,
		City:         DefaultCity,
		Phone:        DefaultPhone,
		Email:        DefaultEmail,
		Address:      DefaultAddress,
	}
}

// FromText extracts a briefing from a free-text prompt. Label-prefixed
// patterns are tried first-match-wins; anything unmatched keeps its default.
func (e *Extractor) FromText(text string) types.BriefingData {
	data := defaults()
	if strings.TrimSpace(text) == "" {
		return data
	}

	if m := reCompanyBriefing.FindStringSubmatch(text); m != nil {
		data.CompanyName = strings.TrimSpace(m[1])
	} else if m := reCompanyLabel.FindStringSubmatch(text); m != nil {
		data.CompanyName = strings.TrimSpace(m[1])
	}

	lower := strings.ToLower(text)
	for _, entry := range businessTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				data.BusinessType = entry.value
				break
			}
		}
		if data.BusinessType != DefaultBusinessType {
			break
		}
	}

	if m := reCityState.FindStringSubmatch(text); m != nil {
		data.City = strings.TrimSpace(m[1])
	} else if m := reCityLabel.FindStringSubmatch(text); m != nil {
		data.City = strings.TrimSpace(m[1])
	}

	if m := reDescription.FindStringSubmatch(text); m != nil {
		data.Description = strings.TrimSpace(m[1])
	} else if len(strings.TrimSpace(text)) >= 40 {
		// Long prompts without an explicit label double as the description.
		data.Description = utils.Truncate(strings.TrimSpace(text), 200)
	}

	if m := reTarget.FindStringSubmatch(text); m != nil {
		data.TargetAudience = strings.TrimSpace(m[1])
	}
	if m := reGoal.FindStringSubmatch(text); m != nil {
		data.Goal = strings.TrimSpace(m[1])
	}
	if m := reOffers.FindStringSubmatch(text); m != nil {
		data.SpecialOffers = strings.TrimSpace(m[1])
	}
	if m := reServices.FindStringSubmatch(text); m != nil {
		data.Services = SplitServices(m[1])
	}
	if m := reWhatsApp.FindStringSubmatch(text); m != nil {
		if phone := strings.TrimSpace(m[1]); utils.OnlyDigits(phone) != "" {
			data.Phone = phone
		}
	} else if m := rePhone.FindString(text); m != "" {
		data.Phone = m
	}
	if m := reAddress.FindStringSubmatch(text); m != nil {
		data.Address = strings.TrimSpace(m[1])
	}
	if m := reEmail.FindString(text); m != "" {
		data.Email = m
	}

	return data
}

// FromMap extracts a briefing from a loosely-typed key/value object. Keys
// are matched case-insensitively against the alias table; only string values
// are copied, everything else is ignored silently.
func (e *Extractor) FromMap(input map[string]any) types.BriefingData {
	data := defaults()
	for key, raw := range input {
		field, ok := keyAliases[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		value = strings.TrimSpace(value)
		switch field {
		case "companyName":
			data.CompanyName = value
		case "businessType":
			data.BusinessType = strings.ToLower(value)
		case "description":
			data.Description = value
		case "services":
			data.Services = SplitServices(value)
		case "city":
			data.City = value
		case "phone":
			data.Phone = value
		case "email":
			data.Email = value
		case "address":
			data.Address = value
		case "goal":
			data.Goal = value
		case "specialOffers":
			data.SpecialOffers = value
		case "targetAudience":
			data.TargetAudience = value
		}
	}
	return data
}

// SplitServices splits a comma- or line-delimited services field into an
// ordered list, dropping blanks.
func SplitServices(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	var out []string
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			out = append(out, s)
		}
	}
	return out
}
