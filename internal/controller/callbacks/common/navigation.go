package common

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/callbacktypes"
	"github.com/Gust4dev/agendakit-demo/internal/model"
	"github.com/Gust4dev/agendakit-demo/internal/schedule"
)

// StartBooking abre uma sessão de agendamento para o serviço resolvido,
// encerrando sessão e diálogo anteriores do chat.
func StartBooking(b *bot.Bot, h *callbacktypes.Handler, chatID int64, svc model.Service, pinned int) *booking.Wizard {
	w := booking.New(booking.Config{
		Service:  svc,
		Pinned:   pinned,
		Catalog:  h.Catalog,
		Notifier: NewTelegramNotifier(b, chatID, h.Logger),
		Handoff:  NewWhatsAppHandoff(b, chatID, h.WhatsAppNumber, h.Logger),
		Delay:    h.HandoffDelay,
		Logger:   h.Logger,
	})

	h.Sessions.Start(chatID, w)
	h.Dialogs.Clear(chatID)

	return w
}

// RenderStep monta a tela da etapa corrente da sessão. Voltar para uma
// etapa reexibe o que já foi escolhido, sem descartar nada.
func RenderStep(h *callbacktypes.Handler, w *booking.Wizard) (string, *models.InlineKeyboardMarkup) {
	st := w.State()

	switch st.Step {
	case booking.StepSelectingDateTime:
		if st.Selection.HasDate() {
			return BuildSlotPicker(w.Service(), st.Selection.Date, w.Pinned(), st.Selection.Time)
		}
		return BuildDayPicker(w.Service(), w.Pinned(), schedule.WeekDays(time.Now()))

	case booking.StepSelectingProfessional:
		return BuildProfessionalPicker(h.Catalog, w.Service(), st.Selection.Date, st.Selection.Time)

	case booking.StepCapturingContact:
		if draft := w.ContactDraft(); draft.Name != "" && draft.Phone != "" {
			return BuildConfirmation(h.Catalog, w)
		}
		return BuildSummary(h.Catalog, w)

	case booking.StepHandedOff:
		return "⏳ Abrindo WhatsApp...", nil
	}

	return BuildDayPicker(w.Service(), w.Pinned(), schedule.WeekDays(time.Now()))
}

// EditScreen troca o conteúdo da mensagem da tela corrente.
func EditScreen(ctx context.Context, b *bot.Bot, logger *zap.Logger, msg *models.Message, text string, kb *models.InlineKeyboardMarkup) {
	params := &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      text,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}

	if _, err := b.EditMessageText(ctx, params); err != nil {
		logger.Error("Failed to edit screen",
			zap.Error(err),
			zap.Int64("chat_id", msg.Chat.ID))
	}
}

// SendScreen envia uma tela como mensagem nova.
func SendScreen(ctx context.Context, b *bot.Bot, logger *zap.Logger, chatID int64, text string, kb *models.InlineKeyboardMarkup) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		logger.Error("Failed to send screen",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
