package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helpers compartilhados pelos callback handlers.

// AnswerCallback responde o callback query sem alerta (toast discreto).
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert responde o callback query com janela de alerta.
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback extrai a mensagem do callback query.
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// Suffix extrai o dado após o prefixo: Suffix("day:2025-06-09", "day:")
// -> "2025-06-09".
func Suffix(data, prefix string) string {
	return strings.TrimPrefix(data, prefix)
}

// ParseIDFromCallback extrai um ID numérico do callback data.
// Ex.: "prof:2" -> 2.
func ParseIDFromCallback(data string) (int, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("formato de callback data inválido")
	}
	return strconv.Atoi(parts[1])
}
