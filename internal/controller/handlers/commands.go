package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common/keyboard"
)

// HandleStart dá as boas-vindas e aponta para o catálogo.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.deps.Logger.Info("Handling /start",
		zap.Int64("chat_id", chatID),
		zap.String("user_name", update.Message.From.FirstName))

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📋 Ver serviços", common.ListServices)).
		Build()

	text := "👋 Bem-vindo ao AgendaKit!\n\n" +
		"Aqui você agenda serviços de barbearia, saúde, fitness e estética " +
		"em poucos toques. No final, enviamos sua mensagem de agendamento " +
		"pronta para o WhatsApp.\n\n" +
		"Use /servicos para ver o catálogo ou /agendar para começar."

	common.SendScreen(ctx, b, h.deps.Logger, chatID, text, kb)
}

// HandleHelp lista os comandos disponíveis.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "❓ Comandos disponíveis\n\n" +
		"/servicos — catálogo de serviços\n" +
		"/agendar — iniciar um agendamento\n" +
		"/agendar <serviço> — ir direto ao serviço (ex.: /agendar corte-de-cabelo)\n" +
		"/cancelar — descartar o agendamento em andamento\n" +
		"/help — esta ajuda\n\n" +
		"O agendamento termina com um link do WhatsApp com sua mensagem " +
		"pronta; o envio é concluído manualmente por você."

	common.SendScreen(ctx, b, h.deps.Logger, update.Message.Chat.ID, text, nil)
}

// HandleServices mostra o catálogo agrupado por categoria.
func (h *Handlers) HandleServices(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text, kb := common.BuildServiceList(h.deps.Catalog)
	common.SendScreen(ctx, b, h.deps.Logger, update.Message.Chat.ID, text, kb)
}

// HandleAgendar inicia um agendamento. Aceita um slug de serviço como
// argumento; sem argumento, mostra o catálogo para escolha.
func (h *Handlers) HandleAgendar(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	arg := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/agendar"))
	if arg == "" {
		text, kb := common.BuildServiceList(h.deps.Catalog)
		common.SendScreen(ctx, b, h.deps.Logger, chatID, text, kb)
		return
	}

	svc, ok := h.deps.Catalog.ServiceBySlug(arg)
	if !ok {
		h.deps.Logger.Info("Unknown service slug",
			zap.Int64("chat_id", chatID),
			zap.String("slug", arg))

		text, kb := common.BuildNotFound(arg)
		common.SendScreen(ctx, b, h.deps.Logger, chatID, text, kb)
		return
	}

	w := common.StartBooking(b, h.deps, chatID, svc, 0)

	text, kb := common.RenderStep(h.deps, w)
	common.SendScreen(ctx, b, h.deps.Logger, chatID, text, kb)
}

// HandleCancel descarta o agendamento em andamento.
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	_, active := h.deps.Sessions.Get(chatID)
	h.deps.Sessions.End(chatID)
	h.deps.Dialogs.Clear(chatID)

	if !active {
		common.SendScreen(ctx, b, h.deps.Logger, chatID,
			"Não há agendamento em andamento. Use /agendar para começar.", nil)
		return
	}

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📋 Ver serviços", common.ListServices)).
		Build()
	common.SendScreen(ctx, b, h.deps.Logger, chatID,
		"❌ Agendamento cancelado.\n\nQuando quiser, é só recomeçar:", kb)
}
