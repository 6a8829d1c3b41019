package handlers

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common/keyboard"
	"github.com/Gust4dev/agendakit-demo/internal/controller/state"
	"github.com/Gust4dev/agendakit-demo/internal/format"
)

// HandleTextMessage roteia mensagens de texto livres conforme o diálogo de
// contato ativo do chat. Fora de um diálogo, apenas orienta o cliente.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	dialog := h.deps.Dialogs.Get(chatID)
	if dialog == state.StateNone {
		common.SendScreen(ctx, b, h.deps.Logger, chatID,
			"Não entendi. 🙂 Use /servicos para ver o catálogo ou /agendar para marcar um horário.", nil)
		return
	}

	w, ok := h.deps.Sessions.Get(chatID)
	if !ok {
		h.deps.Dialogs.Clear(chatID)
		common.SendScreen(ctx, b, h.deps.Logger, chatID,
			"Sessão de agendamento expirada. Use /agendar para recomeçar.", nil)
		return
	}

	h.deps.Logger.Debug("Handling dialog input",
		zap.Int64("chat_id", chatID),
		zap.String("dialog", string(dialog)))

	switch dialog {
	case state.StateContactName:
		h.handleNameInput(ctx, b, chatID, w, text)
	case state.StateContactPhone:
		h.handlePhoneInput(ctx, b, chatID, w, text)
	case state.StateContactObservations:
		h.handleObservationsInput(ctx, b, chatID, w, text)
	}
}

func (h *Handlers) handleNameInput(ctx context.Context, b *bot.Bot, chatID int64, w *booking.Wizard, text string) {
	if n := utf8.RuneCountInString(text); n < booking.NameMinLength {
		common.SendScreen(ctx, b, h.deps.Logger, chatID,
			fmt.Sprintf("❌ Nome deve ter pelo menos %d caracteres. Tente novamente:", booking.NameMinLength), nil)
		return
	} else if n > booking.NameMaxLength {
		common.SendScreen(ctx, b, h.deps.Logger, chatID,
			"❌ Nome muito longo. Tente novamente:", nil)
		return
	}

	draft := w.ContactDraft()
	draft.Name = text
	w.SetContactDraft(draft)

	h.deps.Dialogs.Set(chatID, state.StateContactPhone)

	common.SendScreen(ctx, b, h.deps.Logger, chatID,
		fmt.Sprintf("Prazer, %s! 📱\n\nAgora me informe seu telefone com DDD (ex.: 61 99803-1185):", text), nil)
}

func (h *Handlers) handlePhoneInput(ctx context.Context, b *bot.Bot, chatID int64, w *booking.Wizard, text string) {
	formatted := format.Phone(text)
	if n := utf8.RuneCountInString(formatted); n < booking.PhoneMinLength || n > booking.PhoneMaxLength {
		common.SendScreen(ctx, b, h.deps.Logger, chatID,
			"❌ Telefone inválido. Informe DDD + número (ex.: 61 99803-1185):", nil)
		return
	}

	draft := w.ContactDraft()
	draft.Phone = formatted
	w.SetContactDraft(draft)

	h.deps.Dialogs.Set(chatID, state.StateContactObservations)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("⏭ Pular", common.SkipObservations)).
		Build()
	common.SendScreen(ctx, b, h.deps.Logger, chatID,
		fmt.Sprintf("Telefone registrado: %s ✅\n\nAlguma observação? (alergias, preferências...) "+
			"Você também pode pular esta etapa.", formatted), kb)
}

func (h *Handlers) handleObservationsInput(ctx context.Context, b *bot.Bot, chatID int64, w *booking.Wizard, text string) {
	if utf8.RuneCountInString(text) > booking.ObservationsMaxLength {
		common.SendScreen(ctx, b, h.deps.Logger, chatID,
			fmt.Sprintf("❌ Máximo %d caracteres. Tente um texto mais curto:", booking.ObservationsMaxLength), nil)
		return
	}

	draft := w.ContactDraft()
	draft.Observations = text
	w.SetContactDraft(draft)

	h.deps.Dialogs.Clear(chatID)

	screen, kb := common.BuildConfirmation(h.deps.Catalog, w)
	common.SendScreen(ctx, b, h.deps.Logger, chatID, screen, kb)
}
