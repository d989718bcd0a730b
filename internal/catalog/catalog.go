// Package catalog maps a business-type string to a fixed presentation bundle
// of colors, stock image URLs and pt-BR copy banks. Lookup is a pure table
// scan with no external calls, so fallback rendering is always available.
package catalog

import (
	"strings"

	"landing_ai_server/internal/types"
)

type category struct {
	keywords []string
	bundle   types.PresentationBundle
}

// Lookup returns the presentation bundle for the first category whose keyword
// appears anywhere in the lowercased business type. Unmatched input gets the
// generic bundle. Same input, same bundle, always.
func Lookup(businessType string) types.PresentationBundle {
	lower := strings.ToLower(businessType)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.bundle
			}
		}
	}
	return defaultBundle
}

const imageBase = "https://image.pollinations.ai/prompt/"

func heroImage(prompt string) string {
	return imageBase + prompt + "?width=1920&height=1080"
}

func aboutImage(prompt string) string {
	return imageBase + prompt + "?width=1200&height=800"
}

// categories is scanned in order; earlier entries win when keywords overlap.
var categories = []category{
	{
		keywords: []string{"clínica", "clinica", "consultório", "consultorio", "saúde", "saude"},
		bundle: types.PresentationBundle{
			Category:      "clínica",
			Colors:        types.ColorScheme{Primary: "#3498db", Secondary: "#2980b9", Accent: "#e74c3c"},
			HeroImageURL:  heroImage("clinica%20medica%20moderna%20recepcao"),
			AboutImageURL: aboutImage("equipe%20profissional%20clinica%20medica"),
			Title:         "Clínica de Excelência",
			Description:   "Cuidamos da sua saúde e bem-estar com excelência e dedicação.",
			HeroText:      "Cuidados médicos especializados com tecnologia de ponta e equipe qualificada.",
			AboutText:     "Equipe médica qualificada e estrutura moderna para cuidar de você e da sua família.",
			Services: []types.ServiceCard{
				{Icon: "fas fa-stethoscope", Title: "Consultas Especializadas", Description: "Atendimento médico especializado com profissionais qualificados."},
				{Icon: "fas fa-x-ray", Title: "Exames Diagnósticos", Description: "Equipamentos modernos para diagnósticos precisos e rápidos."},
				{Icon: "fas fa-heartbeat", Title: "Acompanhamento Médico", Description: "Acompanhamento contínuo para sua saúde e bem-estar."},
				{Icon: "fas fa-pills", Title: "Tratamentos Personalizados", Description: "Planos de tratamento adaptados às suas necessidades."},
				{Icon: "fas fa-user-md", Title: "Segunda Opinião", Description: "Orientação médica especializada para tomada de decisões."},
				{Icon: "fas fa-ambulance", Title: "Atendimento de Urgência", Description: "Atendimento rápido e eficiente em situações de urgência."},
			},
			Testimonials: []types.Testimonial{
				{Name: "Ana Silva", Role: "Paciente", Text: "Atendimento excepcional e profissionais altamente qualificados. Recomendo a todos!", ImagePrompt: "mulher%20satisfeita%20clinica"},
				{Name: "Carlos Mendes", Role: "Paciente", Text: "Equipamentos modernos e diagnósticos precisos. Mudou minha qualidade de vida.", ImagePrompt: "homem%20satisfeito%20clinica"},
				{Name: "Maria Costa", Role: "Paciente", Text: "Cuidado humanizado e resultados excelentes. Equipe sempre atenciosa.", ImagePrompt: "mulher%20madura%20satisfeita"},
			},
			FAQ: []types.FAQEntry{
				{Question: "Como agendar uma consulta?", Answer: "Você pode agendar através do nosso site, telefone ou WhatsApp. Temos horários flexíveis para atender suas necessidades."},
				{Question: "Vocês atendem convênios?", Answer: "Sim, trabalhamos com os principais convênios médicos. Entre em contato para verificar se o seu está na nossa lista."},
				{Question: "Qual o tempo de espera para consultas?", Answer: "Normalmente conseguimos agendar consultas em até 7 dias. Para urgências, temos horários de encaixe disponíveis."},
				{Question: "Os exames são realizados no local?", Answer: "Temos equipamentos modernos para diversos tipos de exames. Consulte nossa lista completa de serviços disponíveis."},
			},
		},
	},
	{
		keywords: []string{"imóve", "imove", "imobili", "corretor"},
		bundle: types.PresentationBundle{
			Category:      "imobiliária",
			Colors:        types.ColorScheme{Primary: "#2196f3", Secondary: "#64b5f6", Accent: "#1976d2"},
			HeroImageURL:  heroImage("casa%20moderna%20fachada%20arquitetura"),
			AboutImageURL: aboutImage("corretores%20profissionais%20imobiliaria"),
			Title:         "Imóveis Premium",
			Description:   "Seu novo lar está aqui - Imóveis de qualidade",
			HeroText:      "O imóvel dos seus sonhos está aqui",
			AboutText:     "Especialistas em imóveis residenciais e comerciais com as melhores opções",
			Services: []types.ServiceCard{
				{Icon: "fas fa-home", Title: "Venda de Imóveis", Description: "Assessoria completa na venda do seu imóvel."},
				{Icon: "fas fa-key", Title: "Locação", Description: "Administração e locação de propriedades."},
				{Icon: "fas fa-search-location", Title: "Busca Personalizada", Description: "Encontramos o imóvel ideal para você."},
				{Icon: "fas fa-calculator", Title: "Avaliação", Description: "Avaliação precisa do valor do seu imóvel."},
				{Icon: "fas fa-handshake", Title: "Consultoria", Description: "Orientação especializada em investimentos imobiliários."},
				{Icon: "fas fa-file-contract", Title: "Documentação", Description: "Suporte completo com documentação e contratos."},
			},
			Testimonials: []types.Testimonial{
				{Name: "Roberto Almeida", Role: "Comprador", Text: "Encontraram o apartamento perfeito para minha família em poucas semanas. Processo transparente do início ao fim.", ImagePrompt: "homem%20feliz%20novo%20apartamento"},
				{Name: "Camila Ferreira", Role: "Proprietária", Text: "Venderam meu imóvel pelo valor justo e cuidaram de toda a documentação. Excelente trabalho.", ImagePrompt: "mulher%20satisfeita%20assinando%20contrato"},
				{Name: "José Ribeiro", Role: "Investidor", Text: "Consultoria de investimentos impecável. Já fechei três negócios com a equipe.", ImagePrompt: "homem%20executivo%20satisfeito"},
			},
			FAQ: []types.FAQEntry{
				{Question: "Quais documentos preciso para comprar um imóvel?", Answer: "RG, CPF, comprovante de renda e de residência. Nossa equipe orienta todo o processo de documentação."},
				{Question: "Vocês ajudam com financiamento?", Answer: "Sim, trabalhamos com os principais bancos e simulamos as melhores condições para o seu perfil."},
				{Question: "Como é feita a avaliação do meu imóvel?", Answer: "Realizamos uma análise comparativa de mercado considerando localização, estado de conservação e demanda da região."},
				{Question: "Qual o prazo médio para vender um imóvel?", Answer: "Depende da região e do preço, mas imóveis bem precificados costumam ser vendidos em até 90 dias."},
			},
		},
	},
	{
		keywords: []string{"restaurante", "comida", "pizzaria", "lanchonete", "gastronomia"},
		bundle: types.PresentationBundle{
			Category:      "restaurante",
			Colors:        types.ColorScheme{Primary: "#ff5722", Secondary: "#ff8a65", Accent: "#d84315"},
			HeroImageURL:  heroImage("restaurante%20aconchegante%20pratos%20gourmet"),
			AboutImageURL: aboutImage("chef%20cozinhando%20cozinha%20profissional"),
			Title:         "Sabor & Tradição",
			Description:   "Restaurante com os melhores pratos da região",
			HeroText:      "Sabores autênticos que conquistam o paladar",
			AboutText:     "Tradição familiar em cada prato, ingredientes frescos e receitas especiais",
			Services: []types.ServiceCard{
				{Icon: "fas fa-utensils", Title: "Almoço Executivo", Description: "Pratos completos com preço especial de segunda a sexta."},
				{Icon: "fas fa-wine-glass-alt", Title: "Jantar", Description: "Cardápio especial para noites memoráveis."},
				{Icon: "fas fa-motorcycle", Title: "Delivery", Description: "Entregamos o sabor do restaurante na sua casa."},
				{Icon: "fas fa-birthday-cake", Title: "Eventos", Description: "Espaço e cardápio sob medida para comemorações."},
				{Icon: "fas fa-leaf", Title: "Opções Saudáveis", Description: "Pratos vegetarianos e veganos preparados com carinho."},
				{Icon: "fas fa-ice-cream", Title: "Sobremesas", Description: "Doces artesanais que fecham a refeição com chave de ouro."},
			},
			Testimonials: []types.Testimonial{
				{Name: "Fernando Souza", Role: "Cliente", Text: "Melhor comida da região, sem dúvida. O atendimento faz a gente se sentir em casa.", ImagePrompt: "homem%20satisfeito%20restaurante"},
				{Name: "Luciana Martins", Role: "Cliente", Text: "Ingredientes sempre frescos e pratos muito bem servidos. Virou nosso programa de família.", ImagePrompt: "mulher%20feliz%20jantar"},
				{Name: "Ricardo Gomes", Role: "Cliente", Text: "O delivery chega rápido e a comida vem impecável. Recomendo demais.", ImagePrompt: "homem%20jovem%20satisfeito"},
			},
			FAQ: []types.FAQEntry{
				{Question: "Precisa reservar mesa?", Answer: "Para finais de semana recomendamos reserva pelo WhatsApp. Durante a semana atendemos por ordem de chegada."},
				{Question: "Vocês têm opções vegetarianas?", Answer: "Sim, nosso cardápio tem pratos vegetarianos e veganos preparados com o mesmo cuidado dos demais."},
				{Question: "Qual a área de entrega do delivery?", Answer: "Entregamos em toda a região central. Consulte seu endereço pelo WhatsApp para confirmar a taxa."},
				{Question: "O espaço comporta eventos?", Answer: "Temos um salão reservado para até 60 pessoas, com cardápio fechado sob consulta."},
			},
		},
	},
	{
		keywords: []string{"moda", "roupa", "loja", "boutique", "vestuário", "vestuario"},
		bundle: types.PresentationBundle{
			Category:      "moda",
			Colors:        types.ColorScheme{Primary: "#e91e63", Secondary: "#f48fb1", Accent: "#ad1457"},
			HeroImageURL:  heroImage("loja%20de%20roupas%20moderna%20vitrine"),
			AboutImageURL: aboutImage("roupas%20elegantes%20cabides%20boutique"),
			Title:         "Estilo & Moda",
			Description:   "Sua loja de roupas online com as melhores tendências",
			HeroText:      "Vista-se com estilo, expresse sua personalidade",
			AboutText:     "Oferecemos as melhores peças de roupa com qualidade e estilo únicos",
			Services: []types.ServiceCard{
				{Icon: "fas fa-tshirt", Title: "Moda Casual", Description: "Peças confortáveis para o dia a dia com muito estilo."},
				{Icon: "fas fa-user-tie", Title: "Moda Social", Description: "Looks elegantes para o trabalho e ocasiões formais."},
				{Icon: "fas fa-running", Title: "Moda Esportiva", Description: "Roupas técnicas para treinos e atividades ao ar livre."},
				{Icon: "fas fa-gem", Title: "Acessórios", Description: "Bolsas, cintos e bijuterias para completar o visual."},
				{Icon: "fas fa-ruler", Title: "Ajustes", Description: "Ajustamos as peças para o caimento perfeito."},
				{Icon: "fas fa-shipping-fast", Title: "Entrega Rápida", Description: "Receba suas compras em casa em poucos dias."},
			},
			Testimonials: []types.Testimonial{
				{Name: "Beatriz Rocha", Role: "Cliente", Text: "As peças têm qualidade incrível e o atendimento é super atencioso. Minha loja favorita!", ImagePrompt: "mulher%20jovem%20roupa%20elegante"},
				{Name: "Amanda Dias", Role: "Cliente", Text: "Sempre encontro looks que combinam comigo. As novidades chegam toda semana.", ImagePrompt: "mulher%20sorrindo%20compras"},
				{Name: "Thiago Nunes", Role: "Cliente", Text: "Comprei online e chegou rapidinho, tudo do jeito que esperava.", ImagePrompt: "homem%20jovem%20estiloso"},
			},
			FAQ: []types.FAQEntry{
				{Question: "Como funciona a troca de peças?", Answer: "Você tem até 30 dias para trocar qualquer peça com a etiqueta, na loja ou pelo correio."},
				{Question: "Vocês têm tamanhos plus size?", Answer: "Sim, nossa grade vai do PP ao G3 na maioria das peças."},
				{Question: "Quais as formas de pagamento?", Answer: "Aceitamos cartões, Pix e parcelamos em até 6x sem juros."},
				{Question: "Fazem entrega para outras cidades?", Answer: "Enviamos para todo o Brasil com frete calculado no fechamento do pedido."},
			},
		},
	},
	{
		keywords: []string{"curso", "educação", "educacao", "ensino", "escola", "produto digital"},
		bundle: types.PresentationBundle{
			Category:      "curso",
			Colors:        types.ColorScheme{Primary: "#673ab7", Secondary: "#9575cd", Accent: "#512da8"},
			HeroImageURL:  heroImage("sala%20de%20aula%20moderna%20alunos"),
			AboutImageURL: aboutImage("professor%20ensinando%20turma"),
			Title:         "Educação de Qualidade",
			Description:   "Educação de qualidade para formar o futuro.",
			HeroText:      "Formação completa com metodologia inovadora e corpo docente especializado.",
			AboutText:     "Metodologia prática e acompanhamento individual para você evoluir de verdade.",
			Services: []types.ServiceCard{
				{Icon: "fas fa-graduation-cap", Title: "Cursos Completos", Description: "Trilhas de aprendizado do básico ao avançado."},
				{Icon: "fas fa-laptop", Title: "Aulas Online", Description: "Estude de onde estiver, no seu ritmo."},
				{Icon: "fas fa-chalkboard-teacher", Title: "Mentorias", Description: "Acompanhamento individual com professores especialistas."},
				{Icon: "fas fa-certificate", Title: "Certificação", Description: "Certificado reconhecido ao concluir cada curso."},
				{Icon: "fas fa-users", Title: "Comunidade", Description: "Grupo exclusivo de alunos para trocar experiências."},
				{Icon: "fas fa-book", Title: "Material Didático", Description: "Apostilas e exercícios atualizados inclusos."},
			},
			Testimonials: []types.Testimonial{
				{Name: "Gabriel Pereira", Role: "Aluno", Text: "O curso mudou minha carreira. Conteúdo direto ao ponto e professores sempre disponíveis.", ImagePrompt: "homem%20jovem%20estudando%20feliz"},
				{Name: "Larissa Campos", Role: "Aluna", Text: "A metodologia é excelente e a comunidade de alunos ajuda muito. Super recomendo.", ImagePrompt: "mulher%20jovem%20notebook%20sorrindo"},
				{Name: "Eduardo Santos", Role: "Aluno", Text: "Consegui minha primeira vaga na área antes mesmo de terminar o curso.", ImagePrompt: "homem%20formando%20satisfeito"},
			},
			FAQ: []types.FAQEntry{
				{Question: "Por quanto tempo tenho acesso ao curso?", Answer: "O acesso é vitalício, incluindo todas as atualizações futuras do conteúdo."},
				{Question: "Recebo certificado?", Answer: "Sim, ao concluir as aulas e atividades você emite o certificado na própria plataforma."},
				{Question: "Preciso de experiência prévia?", Answer: "Não, os cursos partem do zero e avançam gradualmente até o nível profissional."},
				{Question: "Existe garantia?", Answer: "Você tem 7 dias para testar o curso e pedir reembolso integral se não gostar."},
			},
		},
	},
	{
		keywords: []string{"academia", "fitness", "treino", "crossfit", "musculação", "musculacao"},
		bundle: types.PresentationBundle{
			Category:      "academia",
			Colors:        types.ColorScheme{Primary: "#2e8b57", Secondary: "#1e6b3f", Accent: "#ffd700"},
			HeroImageURL:  heroImage("academia%20moderna%20equipamentos"),
			AboutImageURL: aboutImage("personal%20trainer%20treino%20funcional"),
			Title:         "Academia Premium",
			Description:   "Treinos personalizados para você alcançar seus objetivos.",
			HeroText:      "Transforme seu corpo e sua saúde com acompanhamento profissional.",
			AboutText:     "Estrutura completa, equipamentos modernos e professores dedicados ao seu resultado.",
			Services: []types.ServiceCard{
				{Icon: "fas fa-dumbbell", Title: "Musculação", Description: "Equipamentos de última geração com orientação profissional."},
				{Icon: "fas fa-running", Title: "Treino Funcional", Description: "Circuitos dinâmicos para condicionamento completo."},
				{Icon: "fas fa-heartbeat", Title: "Avaliação Física", Description: "Acompanhamento periódico da sua evolução."},
				{Icon: "fas fa-user-friends", Title: "Personal Trainer", Description: "Treinos individualizados para seus objetivos."},
				{Icon: "fas fa-music", Title: "Aulas Coletivas", Description: "Spinning, dança e muito mais em grupo."},
				{Icon: "fas fa-apple-alt", Title: "Orientação Nutricional", Description: "Planos alimentares alinhados ao seu treino."},
			},
			Testimonials: []types.Testimonial{
				{Name: "Marcos Vieira", Role: "Aluno", Text: "Perdi 12kg em seis meses com o acompanhamento da equipe. Ambiente motivador demais.", ImagePrompt: "homem%20fitness%20treinando"},
				{Name: "Paula Andrade", Role: "Aluna", Text: "As aulas coletivas são incríveis e os professores acompanham cada detalhe.", ImagePrompt: "mulher%20fitness%20sorrindo"},
				{Name: "Diego Lopes", Role: "Aluno", Text: "Estrutura impecável e sem filas nos equipamentos, mesmo em horário de pico.", ImagePrompt: "homem%20musculoso%20academia"},
			},
			FAQ: []types.FAQEntry{
				{Question: "Qual o horário de funcionamento?", Answer: "De segunda a sexta das 6h às 23h, sábados das 8h às 18h e domingos das 9h às 13h."},
				{Question: "Preciso pagar matrícula?", Answer: "Temos promoções frequentes com isenção de matrícula. Consulte nossas condições atuais."},
				{Question: "Posso fazer uma aula experimental?", Answer: "Sim, agende pelo WhatsApp uma aula experimental gratuita em qualquer modalidade."},
				{Question: "Tem avaliação física inclusa?", Answer: "Todos os planos incluem avaliação física trimestral com nossos profissionais."},
			},
		},
	},
	{
		keywords: []string{"salão", "salao", "beleza", "estética", "estetica", "barbearia"},
		bundle: types.PresentationBundle{
			Category:      "salão de beleza",
			Colors:        types.ColorScheme{Primary: "#9b59b6", Secondary: "#8e44ad", Accent: "#e91e63"},
			HeroImageURL:  heroImage("salao%20de%20beleza%20moderno%20interior"),
			AboutImageURL: aboutImage("cabeleireira%20atendendo%20cliente"),
			Title:         "Salão de Beleza Premium",
			Description:   "Realçamos sua beleza natural com profissionalismo e carinho.",
			HeroText:      "Transformamos seu visual com as últimas tendências e produtos de qualidade.",
			AboutText:     "Profissionais experientes e produtos das melhores marcas para cuidar de você.",
			Services: []types.ServiceCard{
				{Icon: "fas fa-cut", Title: "Corte e Penteado", Description: "Cortes modernos e penteados para todas as ocasiões."},
				{Icon: "fas fa-palette", Title: "Coloração", Description: "Técnicas avançadas de coloração e mechas profissionais."},
				{Icon: "fas fa-spa", Title: "Tratamentos Capilares", Description: "Hidratação, reconstrução e nutrição dos cabelos."},
				{Icon: "fas fa-hand-sparkles", Title: "Manicure e Pedicure", Description: "Cuidados completos para suas mãos e pés."},
				{Icon: "fas fa-eye", Title: "Design de Sobrancelhas", Description: "Modelagem e design personalizado de sobrancelhas."},
				{Icon: "fas fa-user-tie", Title: "Serviços Masculinos", Description: "Cortes e tratamentos especializados para homens."},
			},
			Testimonials: []types.Testimonial{
				{Name: "Fernanda Lima", Role: "Cliente", Text: "Sempre saio do salão me sentindo renovada! Profissionais incríveis e ambiente acolhedor.", ImagePrompt: "mulher%20jovem%20cabelo%20bonito"},
				{Name: "Juliana Santos", Role: "Cliente", Text: "Transformaram meu visual completamente! Recomendo para todas as amigas.", ImagePrompt: "mulher%20feliz%20salao%20beleza"},
				{Name: "Patricia Oliveira", Role: "Cliente", Text: "Qualidade excepcional e atendimento personalizado. Meu salão de confiança há anos.", ImagePrompt: "mulher%20elegante%20satisfeita"},
			},
			FAQ: []types.FAQEntry{
				{Question: "Preciso agendar horário?", Answer: "Recomendamos agendamento para garantir o melhor horário. Também atendemos por ordem de chegada quando possível."},
				{Question: "Vocês usam produtos de qualidade?", Answer: "Trabalhamos apenas com produtos profissionais das melhores marcas do mercado, garantindo resultados excepcionais."},
				{Question: "Fazem atendimento em domicílio?", Answer: "Sim, oferecemos serviços especiais a domicílio para ocasiões especiais. Consulte condições e disponibilidade."},
				{Question: "Oferecem tratamentos para cabelos danificados?", Answer: "Temos tratamentos especializados para reconstrução e hidratação profunda. Nossa equipe avalia e recomenda o melhor."},
			},
		},
	},
	{
		keywords: []string{"advocacia", "advogado", "jurídic", "juridic"},
		bundle: types.PresentationBundle{
			Category:      "advocacia",
			Colors:        types.ColorScheme{Primary: "#2c3e50", Secondary: "#546e7a", Accent: "#b8860b"},
			HeroImageURL:  heroImage("escritorio%20advocacia%20elegante"),
			AboutImageURL: aboutImage("advogados%20reuniao%20profissional"),
			Title:         "Advocacia Especializada",
			Description:   "Defendemos seus direitos com expertise e compromisso.",
			HeroText:      "Soluções jurídicas personalizadas para proteger seus interesses.",
			AboutText:     "Atuação estratégica e ética em diversas áreas do direito, com atendimento próximo.",
			Services: []types.ServiceCard{
				{Icon: "fas fa-balance-scale", Title: "Direito Civil", Description: "Assessoria jurídica em questões civis e contratuais."},
				{Icon: "fas fa-briefcase", Title: "Direito Empresarial", Description: "Consultoria jurídica para empresas e negócios."},
				{Icon: "fas fa-gavel", Title: "Direito Trabalhista", Description: "Defesa em questões trabalhistas e previdenciárias."},
				{Icon: "fas fa-home", Title: "Direito Imobiliário", Description: "Assessoria em compra, venda e locação de imóveis."},
				{Icon: "fas fa-users", Title: "Direito de Família", Description: "Orientação em questões familiares e sucessórias."},
				{Icon: "fas fa-shield-alt", Title: "Direito Penal", Description: "Defesa criminal com experiência e competência."},
			},
			Testimonials: []types.Testimonial{
				{Name: "Sérgio Tavares", Role: "Cliente", Text: "Conduziram meu processo com transparência total e ganhei a causa. Profissionais sérios.", ImagePrompt: "homem%20executivo%20confiante"},
				{Name: "Renata Moraes", Role: "Cliente", Text: "Atendimento humano e explicações claras em cada etapa. Me senti segura o tempo todo.", ImagePrompt: "mulher%20profissional%20satisfeita"},
				{Name: "Cláudio Barros", Role: "Empresário", Text: "Assessoria empresarial impecável há mais de cinco anos. Confiança total no escritório.", ImagePrompt: "homem%20empresario%20terno"},
			},
			FAQ: []types.FAQEntry{
				{Question: "A primeira consulta é gratuita?", Answer: "Sim, a análise inicial do seu caso é gratuita e sem compromisso."},
				{Question: "Quanto tempo demora um processo?", Answer: "Varia conforme a área e a complexidade. Na consulta apresentamos uma estimativa realista para o seu caso."},
				{Question: "Vocês atendem online?", Answer: "Sim, realizamos consultas por videoconferência para sua comodidade."},
				{Question: "Como são cobrados os honorários?", Answer: "Os honorários são combinados de forma transparente antes de qualquer atuação, por escrito."},
			},
		},
	},
}

// defaultBundle is the generic fallback for unmatched business types.
var defaultBundle = types.PresentationBundle{
	Category:      "default",
	Colors:        types.ColorScheme{Primary: "#4caf50", Secondary: "#81c784", Accent: "#388e3c"},
	HeroImageURL:  heroImage("escritorio%20moderno%20profissionais"),
	AboutImageURL: aboutImage("equipe%20profissional%20reuniao"),
	Title:         "Seu Negócio",
	Description:   "Soluções personalizadas para você",
	HeroText:      "Transforme suas ideias em realidade",
	AboutText:     "Oferecemos serviços de qualidade com atendimento personalizado",
	Services: []types.ServiceCard{
		{Icon: "fas fa-star", Title: "Serviço Premium", Description: "Oferecemos serviços de alta qualidade."},
		{Icon: "fas fa-check-circle", Title: "Atendimento Personalizado", Description: "Cada cliente recebe atenção individualizada."},
		{Icon: "fas fa-cog", Title: "Soluções Eficientes", Description: "Processos otimizados para melhores resultados."},
		{Icon: "fas fa-heart", Title: "Compromisso Total", Description: "Dedicação completa aos seus objetivos."},
		{Icon: "fas fa-shield-alt", Title: "Segurança e Confiança", Description: "Trabalho baseado em transparência e ética."},
		{Icon: "fas fa-trophy", Title: "Resultados Garantidos", Description: "Foco em entregar resultados excepcionais."},
	},
	Testimonials: []types.Testimonial{
		{Name: "João Silva", Role: "Cliente", Text: "Serviço de qualidade excepcional! Superou todas as minhas expectativas.", ImagePrompt: "homem%20satisfeito%20profissional"},
		{Name: "Maria Santos", Role: "Cliente", Text: "Profissionais competentes e atendimento personalizado. Recomendo!", ImagePrompt: "mulher%20profissional%20satisfeita"},
		{Name: "Pedro Costa", Role: "Cliente", Text: "Resultados excelentes e prazo cumprido. Parceria de longa data garantida.", ImagePrompt: "homem%20executivo%20satisfeito"},
	},
	FAQ: []types.FAQEntry{
		{Question: "Como funciona o atendimento?", Answer: "Nosso atendimento é personalizado desde o primeiro contato. Analisamos suas necessidades e criamos a melhor solução."},
		{Question: "Qual é o prazo de entrega?", Answer: "Os prazos variam conforme a complexidade do projeto. Sempre informamos um cronograma detalhado no início."},
		{Question: "Oferecem garantia dos serviços?", Answer: "Sim, todos os nossos serviços possuem garantia. Trabalhamos até você ficar completamente satisfeito."},
		{Question: "Como é feito o orçamento?", Answer: "O orçamento é gratuito e sem compromisso. Entre em contato para avaliarmos suas necessidades específicas."},
	},
}
