package booking

import "sync"

// Sessions guarda a sessão de agendamento ativa de cada chat. Cada sessão
// pertence a um único chat por vez; iniciar outra encerra a anterior.
type Sessions struct {
	mu     sync.RWMutex
	byChat map[int64]*Wizard
}

// NewSessions cria o registro de sessões.
func NewSessions() *Sessions {
	return &Sessions{
		byChat: make(map[int64]*Wizard),
	}
}

// Start registra a sessão do chat, encerrando a anterior se existir.
func (s *Sessions) Start(chatID int64, w *Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.byChat[chatID]; ok {
		old.Close()
	}
	s.byChat[chatID] = w
}

// Get retorna a sessão ativa do chat.
func (s *Sessions) Get(chatID int64) (*Wizard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.byChat[chatID]
	return w, ok
}

// End encerra e remove a sessão do chat, cancelando hand-off pendente.
func (s *Sessions) End(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.byChat[chatID]; ok {
		w.Close()
		delete(s.byChat, chatID)
	}
}

// Shutdown encerra todas as sessões; usado na parada do processo.
func (s *Sessions) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for chatID, w := range s.byChat {
		w.Close()
		delete(s.byChat, chatID)
	}
}
