package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRowAndGrid(t *testing.T) {
	kb := NewBuilder().
		Row(Button("a", "cb:a"), Button("b", "cb:b")).
		Grid(2, Button("1", "n:1"), Button("2", "n:2"), Button("3", "n:3")).
		Build()

	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 2)
	assert.Len(t, kb.InlineKeyboard[2], 1)

	assert.Equal(t, "cb:a", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "3", kb.InlineKeyboard[2][0].Text)
}

func TestBuilderSkipsEmptyRow(t *testing.T) {
	kb := NewBuilder().Row().Row(Button("a", "cb:a")).Build()
	assert.Len(t, kb.InlineKeyboard, 1)
}

func TestURLButton(t *testing.T) {
	btn := URLButton("abrir", "https://wa.me/5561998031185")
	assert.Equal(t, "https://wa.me/5561998031185", btn.URL)
	assert.Empty(t, btn.CallbackData)
}
