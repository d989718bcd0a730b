package assemble

import (
	"encoding/json"
	"fmt"
	"strings"

	"landing_ai_server/internal/types"
)

// writeChatWidget emits the floating chat button, the modal and the inline
// script: a keyword-matched canned-reply table, the FAQ accordion toggle,
// the contact-form handler and the WhatsApp hand-off.
func (a *Assembler) writeChatWidget(b *strings.Builder, briefing types.BriefingData, bundle types.PresentationBundle, company, whatsapp string) {
	responses := CannedResponses(briefing, bundle)
	// Marshal keeps < and > escaped so user text cannot close the script tag.
	responsesJSON, _ := json.Marshal(responses)

	fmt.Fprintf(b, `<button id="chat-button">💬 Fale Conosco</button>
<div id="chat-modal">
<div id="chat-header"><span>%s</span><span id="chat-close" style="cursor:pointer">✕</span></div>
<div id="chat-messages"></div>
<div id="chat-input-row">
<input id="chat-input" type="text" placeholder="Digite sua mensagem...">
<button id="chat-send">Enviar</button>
</div>
</div>
`, company)

	fmt.Fprintf(b, `<script>
var responses = %s;
var whatsapp = %q;

function reply(message) {
  var text = message.toLowerCase();
  if (text.indexOf('preço') !== -1 || text.indexOf('preco') !== -1 || text.indexOf('valor') !== -1 || text.indexOf('quanto') !== -1) return responses.pricing;
  if (text.indexOf('serviço') !== -1 || text.indexOf('servico') !== -1 || text.indexOf('fazem') !== -1) return responses.services;
  if (text.indexOf('agendar') !== -1 || text.indexOf('horário') !== -1 || text.indexOf('horario') !== -1 || text.indexOf('marcar') !== -1) return responses.appointment;
  return responses.greeting;
}

function appendMessage(sender, text) {
  var div = document.createElement('div');
  div.innerHTML = '<strong>' + sender + ':</strong> ' + text;
  var messages = document.getElementById('chat-messages');
  messages.appendChild(div);
  messages.scrollTop = messages.scrollHeight;
}

document.getElementById('chat-button').addEventListener('click', function () {
  var modal = document.getElementById('chat-modal');
  var open = modal.style.display === 'flex';
  modal.style.display = open ? 'none' : 'flex';
  if (!open && document.getElementById('chat-messages').children.length === 0) {
    appendMessage('Atendente', responses.greeting);
  }
});
document.getElementById('chat-close').addEventListener('click', function () {
  document.getElementById('chat-modal').style.display = 'none';
});

function sendChat() {
  var input = document.getElementById('chat-input');
  var text = input.value.trim();
  if (!text) return;
  appendMessage('Você', text);
  input.value = '';
  setTimeout(function () { appendMessage('Atendente', reply(text)); }, 400);
}
document.getElementById('chat-send').addEventListener('click', sendChat);
document.getElementById('chat-input').addEventListener('keydown', function (e) {
  if (e.key === 'Enter') sendChat();
});

document.querySelectorAll('.faq-item').forEach(function (item) {
  item.querySelector('.faq-question').addEventListener('click', function () {
    document.querySelectorAll('.faq-item.active').forEach(function (active) {
      if (active !== item) active.classList.remove('active');
    });
    item.classList.toggle('active');
  });
});

document.getElementById('contact-form').addEventListener('submit', function (e) {
  e.preventDefault();
  var name = this.querySelector('input[type="text"]').value;
  var email = this.querySelector('input[type="email"]').value;
  if (name && email) {
    this.innerHTML = '<p>Obrigado, ' + name + '! Recebemos sua mensagem e entraremos em contato em até 24 horas.</p>';
    if (whatsapp) {
      var message = 'Novo formulário recebido:%%0ANome: ' + name + '%%0AEmail: ' + email;
      window.open('https://wa.me/' + whatsapp + '?text=' + message, '_blank');
    }
  }
});
</script>
`, responsesJSON, whatsapp)
}

// CannedResponses builds the fixed four-key reply table used both by the
// inline widget script and by the sellerbot fallback path.
func CannedResponses(briefing types.BriefingData, bundle types.PresentationBundle) types.SellerbotResponses {
	services := briefing.Services
	if len(services) == 0 {
		for _, card := range bundle.Services {
			services = append(services, card.Title)
		}
	}
	if len(services) > 3 {
		services = services[:3]
	}
	return types.SellerbotResponses{
		Greeting:    fmt.Sprintf("Olá! Bem-vindo à %s. Como posso ajudar você hoje?", briefing.CompanyName),
		Services:    fmt.Sprintf("Trabalhamos com %s e muito mais. Quer saber detalhes de algum serviço?", strings.Join(services, ", ")),
		Pricing:     "Os valores variam conforme o serviço. Chame no WhatsApp para um orçamento personalizado e sem compromisso!",
		Appointment: fmt.Sprintf("Podemos agendar seu atendimento agora mesmo! Me passe o melhor dia e horário, ou chame no WhatsApp %s.", briefing.Phone),
	}
}
