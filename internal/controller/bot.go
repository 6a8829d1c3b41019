package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/catalog"
	"github.com/Gust4dev/agendakit-demo/internal/config"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/callbacktypes"
	"github.com/Gust4dev/agendakit-demo/internal/controller/handlers"
	"github.com/Gust4dev/agendakit-demo/internal/controller/state"
)

// BotController amarra comandos, diálogos e callbacks do assistente.
type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	sessions        *booking.Sessions
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	cfg *config.Config,
	cat *catalog.Catalog,
	logger *zap.Logger,
) *BotController {
	sessions := booking.NewSessions()
	dialogs := state.NewManager()

	deps := &callbacktypes.Handler{
		Catalog:        cat,
		Sessions:       sessions,
		Dialogs:        dialogs,
		Logger:         logger,
		WhatsAppNumber: cfg.WhatsAppNumber,
		HandoffDelay:   cfg.HandoffDelay,
	}

	return &BotController{
		bot:             botInstance,
		handlers:        handlers.New(deps),
		callbackHandler: callbacks.NewHandler(deps),
		sessions:        sessions,
		logger:          logger,
	}
}

// RegisterHandlers registra comandos, diálogos de texto e callbacks de
// botões.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/servicos", bot.MatchTypeExact, c.handlers.HandleServices)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancelar", bot.MatchTypeExact, c.handlers.HandleCancel)

	// /agendar aceita argumento (slug do serviço), por isso prefixo
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/agendar", bot.MatchTypePrefix, c.handlers.HandleAgendar)

	// Mensagens de texto livres (diálogos do formulário de contato)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Toques nos botões inline
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands define o menu de comandos do bot.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Começar a usar o bot"},
		{Command: "servicos", Description: "📋 Catálogo de serviços"},
		{Command: "agendar", Description: "📅 Agendar um horário"},
		{Command: "cancelar", Description: "❌ Cancelar agendamento em andamento"},
		{Command: "help", Description: "❓ Ajuda"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start inicia o bot e bloqueia até o contexto ser cancelado; na saída,
// encerra as sessões ativas cancelando hand-offs pendentes.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)

	c.sessions.Shutdown()
	return nil
}
