package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/agendar"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/callbacktypes"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common"
)

// Handler recebe os callback queries do bot e os roteia.
type Handler struct {
	deps *callbacktypes.Handler
}

// NewHandler cria o roteador de callbacks com as dependências do fluxo.
func NewHandler(deps *callbacktypes.Handler) *Handler {
	return &Handler{deps: deps}
}

// HandleCallbackQuery é o ponto de entrada registrado no bot.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	Route(ctx, b, update.CallbackQuery, h.deps)
}

// Route distribui o callback query para o handler correspondente.
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	// ===== Navegação =====
	case data == common.ListServices || data == common.BackToServices:
		agendar.HandleListServices(ctx, b, callback, h)
	case data == common.Noop:
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Fluxo de agendamento =====
	case strings.HasPrefix(data, common.SelectService):
		agendar.HandleServiceSelected(ctx, b, callback, h)
	case strings.HasPrefix(data, common.SelectDay):
		agendar.HandleDaySelected(ctx, b, callback, h)
	case strings.HasPrefix(data, common.SelectTime):
		agendar.HandleTimeSelected(ctx, b, callback, h)
	case strings.HasPrefix(data, common.TimeTaken):
		agendar.HandleTimeTaken(ctx, b, callback, h)
	case strings.HasPrefix(data, common.SelectProf):
		agendar.HandleProfessionalSelected(ctx, b, callback, h)
	case strings.HasPrefix(data, common.ProfTaken):
		agendar.HandleProfessionalTaken(ctx, b, callback, h)
	case strings.HasPrefix(data, common.GoToStep):
		agendar.HandleStep(ctx, b, callback, h)
	case data == common.PickDay:
		agendar.HandlePickDay(ctx, b, callback, h)

	// ===== Contato e confirmação =====
	case data == common.StartContact:
		agendar.HandleStartContact(ctx, b, callback, h)
	case data == common.SkipObservations:
		agendar.HandleSkipObservations(ctx, b, callback, h)
	case data == common.ConfirmBooking:
		agendar.HandleConfirmBooking(ctx, b, callback, h)
	case data == common.CancelBooking:
		agendar.HandleCancelBooking(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback data", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
