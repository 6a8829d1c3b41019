package handlers

import (
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/callbacktypes"
)

// Handlers processa comandos e mensagens de texto do bot. Compartilha as
// mesmas dependências dos callback handlers.
type Handlers struct {
	deps *callbacktypes.Handler
}

// New cria o conjunto de handlers de comandos.
func New(deps *callbacktypes.Handler) *Handlers {
	return &Handlers{deps: deps}
}
