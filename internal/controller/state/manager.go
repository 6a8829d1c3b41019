package state

import "sync"

// DialogState identifica qual campo do formulário de contato o chat está
// digitando no momento. O rascunho em si fica na sessão de agendamento;
// aqui vive apenas o ponteiro do diálogo.
type DialogState string

const (
	StateNone DialogState = "" // nenhum diálogo ativo

	StateContactName         DialogState = "contact_name"
	StateContactPhone        DialogState = "contact_phone"
	StateContactObservations DialogState = "contact_observations"
)

// Manager controla o estado de diálogo por chat.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]DialogState
}

// NewManager cria um novo gerenciador de diálogos.
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]DialogState),
	}
}

// Get retorna o estado de diálogo do chat.
func (m *Manager) Get(chatID int64) DialogState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.states[chatID]
}

// Set define o estado de diálogo do chat. StateNone remove a entrada.
func (m *Manager) Set(chatID int64, s DialogState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s == StateNone {
		delete(m.states, chatID)
		return
	}
	m.states[chatID] = s
}

// Clear encerra o diálogo do chat.
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, chatID)
}
