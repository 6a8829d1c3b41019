package common

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common/keyboard"
	"github.com/Gust4dev/agendakit-demo/internal/model"
	"github.com/Gust4dev/agendakit-demo/internal/whatsapp"
)

// TelegramNotifier entrega notificações transitórias como mensagens que
// se apagam sozinhas após a duração pedida.
type TelegramNotifier struct {
	b      *bot.Bot
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier cria o colaborador de notificações de um chat.
func NewTelegramNotifier(b *bot.Bot, chatID int64, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{b: b, chatID: chatID, logger: logger}
}

// Notify envia a notificação e agenda a remoção. Fire-and-forget: falhas
// são apenas logadas.
func (n *TelegramNotifier) Notify(message string, kind booking.NoticeKind, duration time.Duration) {
	prefix := "ℹ️ "
	switch kind {
	case booking.NoticeSuccess:
		prefix = "✅ "
	case booking.NoticeError:
		prefix = "❌ "
	}

	msg, err := n.b.SendMessage(context.Background(), &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   prefix + message,
	})
	if err != nil {
		n.logger.Error("Failed to send notice",
			zap.Error(err),
			zap.Int64("chat_id", n.chatID))
		return
	}

	if duration > 0 {
		chatID, messageID := n.chatID, msg.ID
		time.AfterFunc(duration, func() {
			n.b.DeleteMessage(context.Background(), &bot.DeleteMessageParams{
				ChatID:    chatID,
				MessageID: messageID,
			})
		})
	}
}

// WhatsAppHandoff entrega a intenção de agendamento: envia o botão com o
// link wa.me pré-preenchido quando o atraso de feedback expira.
type WhatsAppHandoff struct {
	b      *bot.Bot
	chatID int64
	number string
	logger *zap.Logger
}

// NewWhatsAppHandoff cria o colaborador de hand-off de um chat.
func NewWhatsAppHandoff(b *bot.Bot, chatID int64, number string, logger *zap.Logger) *WhatsAppHandoff {
	return &WhatsAppHandoff{b: b, chatID: chatID, number: number, logger: logger}
}

// Deliver envia a mensagem final com o link do WhatsApp.
func (h *WhatsAppHandoff) Deliver(details model.BookingDetails) {
	link := whatsapp.Link(h.number, details)

	kb := keyboard.NewBuilder().
		Row(keyboard.URLButton("💬 Abrir WhatsApp", link)).
		Build()

	_, err := h.b.SendMessage(context.Background(), &bot.SendMessageParams{
		ChatID: h.chatID,
		Text: "💬 Sua mensagem de agendamento está pronta!\n\n" +
			"Toque no botão abaixo para abrir o WhatsApp e completar o envio manualmente.",
		ReplyMarkup: kb,
	})
	if err != nil {
		h.logger.Error("Failed to deliver hand-off",
			zap.Error(err),
			zap.Int64("chat_id", h.chatID))
		return
	}

	h.logger.Info("Hand-off delivered",
		zap.Int64("chat_id", h.chatID),
		zap.String("service", details.ServiceName))
}
