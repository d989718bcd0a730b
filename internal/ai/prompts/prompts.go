// Package prompts holds the chat-completion prompt templates.
package prompts

// AnalysisPrompt asks the model to turn a free-text request into the
// structured analysis JSON. The caller fills in the user prompt.
func AnalysisPrompt() string {
	return `
Analise este prompt de criação de landing page e retorne APENAS um JSON válido com a seguinte estrutura:

{
  "businessType": "tipo do negócio identificado",
  "companyName": "nome sugerido para a empresa",
  "colors": {
    "primary": "#código_cor_principal",
    "secondary": "#código_cor_secundária",
    "accent": "#código_cor_destaque"
  },
  "sections": [
    {
      "name": "nome_da_seção",
      "type": "hero|two-columns|centered|bg-image",
      "description": "descrição do conteúdo desta seção"
    }
  ],
  "keywords": ["palavra1", "palavra2", "palavra3"],
  "target": "público-alvo identificado",
  "style": "estilo visual descrito",
  "location": "cidade/região se mencionada"
}

Prompt para analisar: "%s"

Responda APENAS com o JSON, sem explicações adicionais.`
}

// SectionPrompt asks for the marketing copy of a single planned section.
func SectionPrompt() string {
	return `
Gere conteúdo para uma seção de landing page com as seguintes especificações:

Tipo de negócio: %s
Nome da empresa: %s
Seção: %s
Tipo de layout: %s
Descrição: %s
Público-alvo: %s
Estilo: %s

Retorne APENAS um JSON válido com:
{
  "title": "título da seção",
  "content": "conteúdo detalhado da seção (HTML simples permitido)",
  "imagePrompt": "prompt específico para gerar imagem desta seção"
}

O conteúdo deve ser envolvente, profissional e otimizado para conversão.`
}

// SellerbotSystemPrompt frames the live-chat persona. Filled with the bot
// name, company, personality, knowledge list and prohibitions.
func SellerbotSystemPrompt() string {
	return `Você é %s, atendente virtual da %s.
Personalidade: %s
Você conhece: %s
%s
Responda de forma curta (no máximo duas frases), simpática e em português.
Sempre convide o cliente a continuar a conversa pelo WhatsApp quando fizer sentido.`
}
