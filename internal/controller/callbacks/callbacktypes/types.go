package callbacktypes

import (
	"time"

	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/catalog"
	"github.com/Gust4dev/agendakit-demo/internal/controller/state"
)

// Handler reúne as dependências compartilhadas por todos os callback
// handlers do assistente de agendamento.
type Handler struct {
	Catalog  *catalog.Catalog
	Sessions *booking.Sessions
	Dialogs  *state.Manager
	Logger   *zap.Logger

	// destinatário do hand-off e atraso de feedback visual
	WhatsAppNumber string
	HandoffDelay   time.Duration
}
