// Package agendar contém os callback handlers do fluxo de agendamento:
// serviço → dia/horário → profissional → contato → hand-off.
package agendar

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/callbacktypes"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common/keyboard"
	"github.com/Gust4dev/agendakit-demo/internal/controller/state"
)

// requireSession recupera a sessão ativa do chat ou avisa que expirou.
func requireSession(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, chatID int64) (*booking.Wizard, bool) {
	w, ok := h.Sessions.Get(chatID)
	if !ok {
		common.AnswerCallbackAlert(ctx, b, callback.ID,
			"❌ Sessão de agendamento expirada. Use /agendar para recomeçar.")
		return nil, false
	}
	return w, true
}

// HandleServiceSelected resolve o slug do serviço e abre a sessão.
func HandleServiceSelected(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	slug := common.Suffix(callback.Data, common.SelectService)
	svc, ok := h.Catalog.ServiceBySlug(slug)
	if !ok {
		// slug desconhecido não é erro fatal: tela de recuperação
		text, kb := common.BuildNotFound(slug)
		common.EditScreen(ctx, b, h.Logger, msg, text, kb)
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	w := common.StartBooking(b, h, msg.Chat.ID, svc, 0)

	text, kb := common.RenderStep(h, w)
	common.EditScreen(ctx, b, h.Logger, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, svc.Name)
}

// HandleStartContact inicia o diálogo de captura de contato.
func HandleStartContact(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	if !w.State().Selection.Complete() {
		common.AnswerCallbackAlert(ctx, b, callback.ID,
			"❌ Escolha dia, horário e profissional antes de informar seus dados.")
		return
	}

	h.Dialogs.Set(msg.Chat.ID, state.StateContactName)

	prompt := "👋 Como é seu nome?\n\n(de 2 a 100 caracteres)\n\nPara desistir use /cancelar"
	if draft := w.ContactDraft(); draft.Name != "" {
		prompt = "👋 Como é seu nome?\n\nAtual: " + draft.Name + "\n\nPara desistir use /cancelar"
	}

	common.SendScreen(ctx, b, h.Logger, msg.Chat.ID, prompt, nil)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleSkipObservations pula o campo opcional de observações.
func HandleSkipObservations(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	draft := w.ContactDraft()
	draft.Observations = ""
	w.SetContactDraft(draft)
	h.Dialogs.Clear(msg.Chat.ID)

	text, kb := common.BuildConfirmation(h.Catalog, w)
	common.SendScreen(ctx, b, h.Logger, msg.Chat.ID, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleConfirmBooking submete o contato e dispara o hand-off adiado.
func HandleConfirmBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	draft := w.ContactDraft()
	details, err := w.SubmitContact(booking.ContactForm{
		Name:         draft.Name,
		Phone:        draft.Phone,
		Observations: draft.Observations,
	})
	if err != nil {
		var verrs booking.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ "+verrs[0].Message)
		case errors.Is(err, booking.ErrAlreadySubmitted):
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Este agendamento já foi enviado.")
		default:
			common.AnswerCallbackAlert(ctx, b, callback.ID,
				"❌ Complete todas as etapas antes de confirmar.")
		}
		return
	}

	h.Logger.Info("Booking confirmed",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.String("service", details.ServiceName),
		zap.String("professional", details.ProfessionalName))

	common.EditScreen(ctx, b, h.Logger, msg, "⏳ Abrindo WhatsApp...", nil)
	common.AnswerCallback(ctx, b, callback.ID, "✅ Agendamento preparado")
}

// HandleCancelBooking descarta a sessão e o diálogo do chat.
func HandleCancelBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	h.Sessions.End(msg.Chat.ID)
	h.Dialogs.Clear(msg.Chat.ID)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📋 Ver serviços", common.ListServices)).
		Build()
	common.EditScreen(ctx, b, h.Logger, msg,
		"❌ Agendamento cancelado.\n\nQuando quiser, é só recomeçar:", kb)
	common.AnswerCallback(ctx, b, callback.ID, "Agendamento cancelado")
}

// HandleListServices mostra o catálogo, encerrando sessão anterior.
func HandleListServices(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	h.Sessions.End(msg.Chat.ID)
	h.Dialogs.Clear(msg.Chat.ID)

	text, kb := common.BuildServiceList(h.Catalog)
	common.EditScreen(ctx, b, h.Logger, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}
