// Package booking implementa o assistente de agendamento: a máquina de
// estados dia → horário → profissional → confirmação, com navegação livre
// para trás e invalidação das seleções dependentes. As transições são uma
// função pura (Reduce); o Wizard embrulha o estado de uma sessão e o
// hand-off adiado.
package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gust4dev/agendakit-demo/internal/availability"
	"github.com/Gust4dev/agendakit-demo/internal/catalog"
	"github.com/Gust4dev/agendakit-demo/internal/model"
	"github.com/Gust4dev/agendakit-demo/internal/schedule"
)

// Step é a etapa corrente do assistente. O indicador de etapa é
// consultivo: voltar é sempre permitido, avançar depende de completude.
type Step int

const (
	StepSelectingDateTime Step = iota + 1
	StepSelectingProfessional
	StepCapturingContact
	StepHandedOff
)

func (s Step) String() string {
	switch s {
	case StepSelectingDateTime:
		return "data_hora"
	case StepSelectingProfessional:
		return "profissional"
	case StepCapturingContact:
		return "contato"
	case StepHandedOff:
		return "enviado"
	}
	return "desconhecida"
}

// Selection é o estado de seleção da sessão. Invariantes: Time só é
// preenchido com Date preenchido; ProfessionalID só com ambos.
type Selection struct {
	Date           time.Time // zero = nenhum dia escolhido
	Time           string    // "HH:MM"; vazio = nenhum horário
	ProfessionalID int       // 0 = nenhum profissional
	Contact        model.Contact
}

func (s Selection) HasDate() bool         { return !s.Date.IsZero() }
func (s Selection) HasTime() bool         { return s.Time != "" }
func (s Selection) HasProfessional() bool { return s.ProfessionalID != 0 }

// Complete informa se há seleção suficiente para submeter o contato.
func (s Selection) Complete() bool {
	return s.HasDate() && s.HasTime() && s.HasProfessional()
}

// State é o estado completo do assistente, reduzível por Reduce.
type State struct {
	Step      Step
	Selection Selection
}

// Rules é o ambiente somente-leitura do redutor: o serviço resolvido na
// entrada, o profissional fixado (0 = nenhum) e o catálogo.
type Rules struct {
	Service model.Service
	Pinned  int
	Catalog *catalog.Catalog
}

// Action é uma das quatro ações de seleção do assistente.
type Action interface{ isAction() }

type SelectDate struct{ Date time.Time }

type SelectTime struct{ Label string }

type SelectProfessional struct{ ID int }

// GoTo navega para uma etapa: para trás sempre, para frente só com as
// seleções exigidas.
type GoTo struct{ Step Step }

func (SelectDate) isAction()         {}
func (SelectTime) isAction()         {}
func (SelectProfessional) isAction() {}
func (GoTo) isAction()               {}

// Reduce aplica uma ação ao estado. Pura e determinística: rejeições
// devolvem o estado inalterado com o erro correspondente.
func Reduce(r Rules, st State, a Action) (State, error) {
	switch act := a.(type) {
	case SelectDate:
		st.Selection.Date = schedule.StartOfDay(act.Date)
		st.Selection.Time = ""
		st.Selection.ProfessionalID = 0
		st.Step = StepSelectingDateTime
		return st, nil

	case SelectTime:
		if !st.Selection.HasDate() {
			return st, ErrNoDate
		}
		if r.Pinned != 0 && availability.IsSlotBlocked(st.Selection.Date, act.Label, r.Pinned) {
			return st, ErrSlotTaken
		}
		// trocar de horário invalida o profissional: a disponibilidade
		// dele foi calculada contra o horário antigo
		st.Selection.Time = act.Label
		st.Selection.ProfessionalID = 0
		st.Step = StepSelectingProfessional
		return st, nil

	case SelectProfessional:
		if !st.Selection.HasDate() || !st.Selection.HasTime() {
			return st, ErrIncomplete
		}
		p, ok := r.Catalog.ProfessionalByID(act.ID)
		if !ok {
			return st, ErrUnknownProfessional
		}
		if !p.Attends(r.Service.ID) {
			return st, ErrNotEligible
		}
		if availability.IsSlotBlocked(st.Selection.Date, st.Selection.Time, act.ID) {
			return st, ErrProfessionalTaken
		}
		st.Selection.ProfessionalID = act.ID
		st.Step = StepCapturingContact
		return st, nil

	case GoTo:
		if act.Step < StepSelectingDateTime || act.Step > StepCapturingContact {
			return st, ErrForwardBlocked
		}
		if act.Step > st.Step && !reachable(st.Selection, act.Step) {
			return st, ErrForwardBlocked
		}
		// reentrar numa etapa anterior não limpa as seleções seguintes
		st.Step = act.Step
		return st, nil
	}

	return st, nil
}

// reachable verifica a completude exigida para entrar na etapa.
func reachable(sel Selection, s Step) bool {
	switch s {
	case StepSelectingDateTime:
		return true
	case StepSelectingProfessional:
		return sel.HasDate() && sel.HasTime()
	case StepCapturingContact:
		return sel.Complete()
	}
	return false
}

// NoticeKind é o tipo de uma notificação transitória.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeInfo
)

// Notifier é o colaborador de notificações: fire-and-forget, a mensagem
// some sozinha após duration.
type Notifier interface {
	Notify(message string, kind NoticeKind, duration time.Duration)
}

// Handoff é o colaborador que entrega a intenção de agendamento ao canal
// externo depois do atraso de feedback visual.
type Handoff interface {
	Deliver(details model.BookingDetails)
}

const (
	// DefaultHandoffDelay é o atraso entre a confirmação e a abertura
	// do canal externo.
	DefaultHandoffDelay = 800 * time.Millisecond

	successNoticeDuration = 5 * time.Second
)

// Config monta um Wizard para um serviço resolvido.
type Config struct {
	Service  model.Service
	Pinned   int // profissional fixado na entrada; 0 = nenhum
	Catalog  *catalog.Catalog
	Notifier Notifier
	Handoff  Handoff
	Delay    time.Duration // zero = DefaultHandoffDelay
	Logger   *zap.Logger
}

// Wizard é a sessão de agendamento de um único cliente. Criado quando o
// serviço é resolvido, descartado com Close; nada é persistido.
type Wizard struct {
	id    string
	rules Rules

	notifier Notifier
	handoff  Handoff
	delay    time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	state   State
	pending *time.Timer
}

// New cria uma sessão vazia na etapa de dia/horário.
func New(cfg Config) *Wizard {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultHandoffDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	w := &Wizard{
		id: uuid.NewString(),
		rules: Rules{
			Service: cfg.Service,
			Pinned:  cfg.Pinned,
			Catalog: cfg.Catalog,
		},
		notifier: cfg.Notifier,
		handoff:  cfg.Handoff,
		delay:    cfg.Delay,
		logger:   cfg.Logger,
		state:    State{Step: StepSelectingDateTime},
	}

	w.logger.Info("Booking session started",
		zap.String("session_id", w.id),
		zap.Int("service_id", cfg.Service.ID),
		zap.String("service", cfg.Service.Name),
		zap.Int("pinned_professional", cfg.Pinned))

	return w
}

// ID identifica a sessão nos logs.
func (w *Wizard) ID() string { return w.id }

// Service retorna o serviço fixado na entrada da sessão.
func (w *Wizard) Service() model.Service { return w.rules.Service }

// Pinned retorna o profissional fixado na entrada (0 = nenhum).
func (w *Wizard) Pinned() int { return w.rules.Pinned }

// State retorna uma cópia do estado corrente.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// ContactDraft retorna o rascunho de contato digitado até aqui.
func (w *Wizard) ContactDraft() model.Contact {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Selection.Contact
}

// SetContactDraft guarda o rascunho de contato. Sobrevive à navegação
// para trás: voltar de etapa não descarta o que já foi digitado.
func (w *Wizard) SetContactDraft(c model.Contact) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Selection.Contact = c
}

// SelectDate escolhe o dia e limpa horário e profissional.
func (w *Wizard) SelectDate(d time.Time) error {
	return w.apply(SelectDate{Date: d})
}

// SelectTime escolhe o horário e limpa o profissional. Com profissional
// fixado na sessão, horários ocupados são rejeitados com ErrSlotTaken.
func (w *Wizard) SelectTime(label string) error {
	return w.apply(SelectTime{Label: label})
}

// SelectProfessional escolhe um profissional elegível e livre.
func (w *Wizard) SelectProfessional(id int) error {
	return w.apply(SelectProfessional{ID: id})
}

// GoTo navega entre etapas.
func (w *Wizard) GoTo(s Step) error {
	return w.apply(GoTo{Step: s})
}

func (w *Wizard) apply(a Action) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, err := Reduce(w.rules, w.state, a)
	if err != nil {
		w.logger.Debug("Booking action rejected",
			zap.String("session_id", w.id),
			zap.String("step", w.state.Step.String()),
			zap.Error(err))
		return err
	}

	w.state = next
	w.logger.Debug("Booking action applied",
		zap.String("session_id", w.id),
		zap.String("step", next.Step.String()))
	return nil
}

// SubmitContact valida o formulário, monta o BookingDetails definitivo,
// emite a notificação de sucesso e agenda o hand-off adiado. A seleção
// precisa estar completa; com formulário inválido nada muda de estado.
func (w *Wizard) SubmitContact(f ContactForm) (model.BookingDetails, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Step == StepHandedOff {
		return model.BookingDetails{}, ErrAlreadySubmitted
	}

	sel := w.state.Selection
	if !sel.Complete() {
		return model.BookingDetails{}, ErrIncomplete
	}

	if errs := ValidateContact(f); len(errs) > 0 {
		return model.BookingDetails{}, errs
	}

	prof, ok := w.rules.Catalog.ProfessionalByID(sel.ProfessionalID)
	if !ok {
		return model.BookingDetails{}, ErrUnknownProfessional
	}

	w.state.Selection.Contact = model.Contact{
		Name:         f.Name,
		Phone:        f.Phone,
		Observations: f.Observations,
	}

	details := model.BookingDetails{
		ServiceName:      w.rules.Service.Name,
		ProfessionalName: prof.Name,
		Date:             sel.Date,
		Time:             sel.Time,
		ClientName:       f.Name,
		ClientPhone:      f.Phone,
		Observations:     f.Observations,
	}

	w.state.Step = StepHandedOff

	w.logger.Info("Booking submitted",
		zap.String("session_id", w.id),
		zap.String("service", details.ServiceName),
		zap.String("professional", details.ProfessionalName),
		zap.String("slot", details.Time))

	if w.notifier != nil {
		w.notifier.Notify("Agendamento preparado! Complete o envio no WhatsApp",
			NoticeSuccess, successNoticeDuration)
	}

	w.scheduleHandoffLocked(details)

	return details, nil
}

// scheduleHandoffLocked agenda o hand-off depois do atraso de feedback.
// Tarefa adiada e cancelável: Close antes do disparo impede a entrega.
func (w *Wizard) scheduleHandoffLocked(details model.BookingDetails) {
	if w.handoff == nil {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.delay, func() {
		w.handoff.Deliver(details)
	})
}

// Close descarta a sessão e cancela um hand-off ainda pendente.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		if w.pending.Stop() {
			w.logger.Info("Pending hand-off canceled", zap.String("session_id", w.id))
		}
		w.pending = nil
	}

	w.logger.Info("Booking session closed",
		zap.String("session_id", w.id),
		zap.String("step", w.state.Step.String()))
}
