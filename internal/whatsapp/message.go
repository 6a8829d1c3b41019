// Package whatsapp monta a mensagem de agendamento e o link wa.me que
// entregam a intenção de agendamento para conclusão manual no WhatsApp.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/Gust4dev/agendakit-demo/internal/format"
	"github.com/Gust4dev/agendakit-demo/internal/model"
)

// DefaultNumber é o destinatário da demo (DDI 55 + DDD 61).
const DefaultNumber = "5561998031185"

// Message monta a mensagem de agendamento no template fixo da demo.
// A ordem das linhas faz parte do contrato.
func Message(b model.BookingDetails) string {
	lines := []string{
		"Olá! Gostaria de agendar:",
		"",
		"📅 *Serviço:* " + b.ServiceName,
		"👤 *Profissional:* " + b.ProfessionalName,
		"📆 *Data:* " + format.Date(b.Date),
		"🕐 *Horário:* " + b.Time,
		"",
		"👋 *Meu nome:* " + b.ClientName,
		"📱 *Contato:* " + b.ClientPhone,
	}

	if strings.TrimSpace(b.Observations) != "" {
		lines = append(lines, "", "📝 *Observações:* "+b.Observations)
	}

	return strings.Join(lines, "\n")
}

// Link gera a URL wa.me com a mensagem codificada no parâmetro text.
// Número vazio cai no destinatário da demo.
func Link(number string, b model.BookingDetails) string {
	if number == "" {
		number = DefaultNumber
	}
	// espaços como %20, não "+": o WhatsApp espera codificação de URI
	encoded := strings.ReplaceAll(url.QueryEscape(Message(b)), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
