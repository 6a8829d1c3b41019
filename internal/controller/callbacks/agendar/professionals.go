package agendar

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Gust4dev/agendakit-demo/internal/availability"
	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/callbacktypes"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common"
)

// HandleProfessionalSelected aplica a escolha do profissional e avança
// para a coleta de contato.
func HandleProfessionalSelected(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	id, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Formato de dados inválido")
		return
	}

	if err := w.SelectProfessional(id); err != nil {
		st := w.State()
		switch {
		case errors.Is(err, booking.ErrProfessionalTaken):
			text := "⚠️ Este profissional já está reservado neste horário"
			if client := availability.BlockedSlotClient(st.Selection.Date, st.Selection.Time, id); client != "" {
				text = "⚠️ Já reservado por " + client + " neste horário"
			}
			common.AnswerCallbackAlert(ctx, b, callback.ID, text)
		case errors.Is(err, booking.ErrNotEligible):
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Este profissional não atende este serviço")
		case errors.Is(err, booking.ErrIncomplete):
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Escolha dia e horário primeiro")
		default:
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Profissional não encontrado")
		}
		return
	}

	text, kb := common.RenderStep(h, w)
	common.EditScreen(ctx, b, h.Logger, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleProfessionalTaken responde o toque num profissional indisponível.
func HandleProfessionalTaken(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	id, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Formato de dados inválido")
		return
	}

	st := w.State()
	prof, _ := h.Catalog.ProfessionalByID(id)

	text := "⚠️ " + prof.Name + " já está reservado neste horário"
	if client := availability.BlockedSlotClient(st.Selection.Date, st.Selection.Time, id); client != "" {
		text = "⚠️ " + prof.Name + " já está reservado por " + client + " neste horário"
	}
	common.AnswerCallbackAlert(ctx, b, callback.ID, text)
}
