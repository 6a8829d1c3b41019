package keyboard

import "github.com/go-telegram/bot/models"

// Builder simplifica a montagem de teclados inline.
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

// NewBuilder cria um builder de teclado vazio.
func NewBuilder() *Builder {
	return &Builder{
		rows: make([][]models.InlineKeyboardButton, 0),
	}
}

// Row adiciona uma linha de botões.
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Grid distribui os botões em linhas de até perRow colunas.
func (b *Builder) Grid(perRow int, buttons ...models.InlineKeyboardButton) *Builder {
	for len(buttons) > 0 {
		n := perRow
		if n > len(buttons) {
			n = len(buttons)
		}
		b.rows = append(b.rows, buttons[:n])
		buttons = buttons[n:]
	}
	return b
}

// Build monta o teclado final.
func (b *Builder) Build() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: b.rows,
	}
}

// Button cria um botão de callback.
func Button(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// URLButton cria um botão que abre uma URL externa.
func URLButton(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text: text,
		URL:  url,
	}
}
