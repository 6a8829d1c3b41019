package agendar

import (
	"context"
	"errors"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Gust4dev/agendakit-demo/internal/availability"
	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/callbacktypes"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common"
	"github.com/Gust4dev/agendakit-demo/internal/schedule"
)

// HandleDaySelected aplica a escolha do dia e mostra os horários.
// Escolher um dia limpa horário e profissional anteriores.
func HandleDaySelected(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	raw := common.Suffix(callback.Data, common.SelectDay)
	day, err := time.ParseInLocation(common.DayLayout, raw, time.Local)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Formato de data inválido")
		return
	}

	if err := w.SelectDate(day); err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Não foi possível escolher esse dia")
		return
	}

	text, kb := common.RenderStep(h, w)
	common.EditScreen(ctx, b, h.Logger, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleTimeSelected aplica a escolha do horário e avança para os
// profissionais. Horário ocupado (sessão com profissional fixado) vira
// alerta transitório, sem mudança de estado.
func HandleTimeSelected(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	label := common.Suffix(callback.Data, common.SelectTime)

	if err := w.SelectTime(label); err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotTaken):
			common.AnswerCallbackAlert(ctx, b, callback.ID, "⚠️ Este horário já está reservado")
		case errors.Is(err, booking.ErrNoDate):
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Escolha um dia primeiro")
		default:
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Não foi possível escolher esse horário")
		}
		return
	}

	text, kb := common.RenderStep(h, w)
	common.EditScreen(ctx, b, h.Logger, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleTimeTaken responde o toque num horário ocupado com o nome do
// cliente fictício que o reservou.
func HandleTimeTaken(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	label := common.Suffix(callback.Data, common.TimeTaken)
	st := w.State()

	text := "⚠️ Este horário já está reservado"
	if client := availability.BlockedSlotClient(st.Selection.Date, label, w.Pinned()); client != "" {
		text = "⚠️ Já reservado por " + client
	}
	common.AnswerCallbackAlert(ctx, b, callback.ID, text)
}

// HandlePickDay volta para a escolha do dia mantendo as seleções.
func HandlePickDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	if err := w.GoTo(booking.StepSelectingDateTime); err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Erro de navegação")
		return
	}

	text, kb := common.BuildDayPicker(w.Service(), w.Pinned(), schedule.WeekDays(time.Now()))
	common.EditScreen(ctx, b, h.Logger, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleStep navega entre as etapas: para trás livre, para frente só com
// as seleções exigidas.
func HandleStep(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Erro")
		return
	}

	w, ok := requireSession(ctx, b, callback, h, msg.Chat.ID)
	if !ok {
		return
	}

	var target booking.Step
	switch common.Suffix(callback.Data, common.GoToStep) {
	case "1":
		target = booking.StepSelectingDateTime
	case "2":
		target = booking.StepSelectingProfessional
	case "3":
		target = booking.StepCapturingContact
	default:
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Etapa desconhecida")
		return
	}

	if err := w.GoTo(target); err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID,
			"⚠️ Complete a etapa atual antes de avançar")
		return
	}

	text, kb := common.RenderStep(h, w)
	common.EditScreen(ctx, b, h.Logger, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}
