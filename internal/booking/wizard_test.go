package booking

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gust4dev/agendakit-demo/internal/catalog"
	"github.com/Gust4dev/agendakit-demo/internal/model"
)

// Segunda-feira, 9 de junho de 2025. Neste dia, para o serviço 1
// (Corte de Cabelo): às 10:00 Ana (1) e Carlos (2) estão livres; às
// 11:30 Carlos está ocupado; às 12:30 ambos estão ocupados.
var refDay = time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

func testRules(pinned int) Rules {
	c := catalog.Default()
	svc, _ := c.ServiceByID(1)
	return Rules{Service: svc, Pinned: pinned, Catalog: c}
}

func newTestWizard(pinned int, opts ...func(*Config)) *Wizard {
	c := catalog.Default()
	svc, _ := c.ServiceByID(1)
	cfg := Config{Service: svc, Pinned: pinned, Catalog: c}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

func advanceToContact(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.SelectDate(refDay))
	require.NoError(t, w.SelectTime("10:00"))
	require.NoError(t, w.SelectProfessional(1))
}

func validForm() ContactForm {
	return ContactForm{Name: "João Souza", Phone: "(61) 99803-1185"}
}

func TestReduceSelectDate(t *testing.T) {
	r := testRules(0)

	st, err := Reduce(r, State{Step: StepSelectingDateTime}, SelectDate{Date: refDay})
	require.NoError(t, err)

	// a hora do dia é descartada
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), st.Selection.Date)
	assert.Equal(t, StepSelectingDateTime, st.Step)
}

func TestReduceSelectDateClearsDependents(t *testing.T) {
	r := testRules(0)
	st := State{
		Step: StepCapturingContact,
		Selection: Selection{
			Date:           refDay,
			Time:           "10:00",
			ProfessionalID: 1,
		},
	}

	st, err := Reduce(r, st, SelectDate{Date: refDay.AddDate(0, 0, 1)})
	require.NoError(t, err)

	assert.False(t, st.Selection.HasTime())
	assert.False(t, st.Selection.HasProfessional())
	assert.Equal(t, StepSelectingDateTime, st.Step)
}

func TestReduceSelectTimeRequiresDate(t *testing.T) {
	r := testRules(0)

	st := State{Step: StepSelectingDateTime}
	got, err := Reduce(r, st, SelectTime{Label: "10:00"})

	assert.ErrorIs(t, err, ErrNoDate)
	assert.Equal(t, st, got) // rejeição não muda o estado
}

func TestReduceSelectTimeClearsProfessional(t *testing.T) {
	r := testRules(0)
	st := State{
		Step: StepCapturingContact,
		Selection: Selection{
			Date:           refDay,
			Time:           "10:00",
			ProfessionalID: 1,
		},
	}

	st, err := Reduce(r, st, SelectTime{Label: "10:30"})
	require.NoError(t, err)

	assert.Equal(t, "10:30", st.Selection.Time)
	assert.False(t, st.Selection.HasProfessional())
	assert.Equal(t, StepSelectingProfessional, st.Step)
}

func TestReduceSelectTimePinnedBlocked(t *testing.T) {
	// Carlos (2) fixado: 11:30 está ocupado para ele no dia de referência
	r := testRules(2)
	st := State{Step: StepSelectingDateTime}

	st, err := Reduce(r, st, SelectDate{Date: refDay})
	require.NoError(t, err)

	got, err := Reduce(r, st, SelectTime{Label: "11:30"})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, st, got)

	// horário livre para o fixado passa normalmente
	_, err = Reduce(r, st, SelectTime{Label: "10:00"})
	assert.NoError(t, err)
}

func TestReduceSelectTimeUnpinnedNeverBlocks(t *testing.T) {
	// Sem profissional fixado, o horário não é rejeitado nem quando
	// todos os profissionais do serviço estão ocupados (12:30).
	r := testRules(0)
	st, err := Reduce(r, State{Step: StepSelectingDateTime}, SelectDate{Date: refDay})
	require.NoError(t, err)

	_, err = Reduce(r, st, SelectTime{Label: "12:30"})
	assert.NoError(t, err)
}

func TestReduceSelectProfessional(t *testing.T) {
	r := testRules(0)

	st := State{Step: StepSelectingProfessional, Selection: Selection{Date: refDay, Time: "10:00"}}
	st, err := Reduce(r, st, SelectProfessional{ID: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, st.Selection.ProfessionalID)
	assert.Equal(t, StepCapturingContact, st.Step)
	assert.True(t, st.Selection.Complete())
}

func TestReduceSelectProfessionalRejections(t *testing.T) {
	r := testRules(0)
	base := Selection{Date: refDay, Time: "10:00"}

	tests := []struct {
		name string
		sel  Selection
		id   int
		want error
	}{
		{"sem horário", Selection{Date: refDay}, 1, ErrIncomplete},
		{"sem dia", Selection{Time: "10:00"}, 1, ErrIncomplete},
		{"desconhecido", base, 99, ErrUnknownProfessional},
		{"não atende o serviço", base, 3, ErrNotEligible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := State{Step: StepSelectingProfessional, Selection: tt.sel}
			got, err := Reduce(r, st, SelectProfessional{ID: tt.id})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, st, got)
		})
	}
}

func TestReduceSelectProfessionalTaken(t *testing.T) {
	r := testRules(0)

	// Carlos (2) está ocupado às 11:30 do dia de referência
	st := State{Step: StepSelectingProfessional, Selection: Selection{Date: refDay, Time: "11:30"}}
	got, err := Reduce(r, st, SelectProfessional{ID: 2})

	assert.ErrorIs(t, err, ErrProfessionalTaken)
	assert.Equal(t, st, got)
}

func TestReduceGoToBackward(t *testing.T) {
	r := testRules(0)
	st := State{
		Step: StepCapturingContact,
		Selection: Selection{
			Date:           refDay,
			Time:           "10:00",
			ProfessionalID: 1,
			Contact:        model.Contact{Name: "João"},
		},
	}

	st, err := Reduce(r, st, GoTo{Step: StepSelectingDateTime})
	require.NoError(t, err)

	// voltar preserva tudo que já foi escolhido e digitado
	assert.Equal(t, StepSelectingDateTime, st.Step)
	assert.True(t, st.Selection.Complete())
	assert.Equal(t, "João", st.Selection.Contact.Name)
}

func TestReduceGoToForwardGated(t *testing.T) {
	r := testRules(0)

	tests := []struct {
		name string
		sel  Selection
		to   Step
		ok   bool
	}{
		{"profissional sem horário", Selection{Date: refDay}, StepSelectingProfessional, false},
		{"profissional com dia e horário", Selection{Date: refDay, Time: "10:00"}, StepSelectingProfessional, true},
		{"contato incompleto", Selection{Date: refDay, Time: "10:00"}, StepCapturingContact, false},
		{"contato completo", Selection{Date: refDay, Time: "10:00", ProfessionalID: 1}, StepCapturingContact, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := State{Step: StepSelectingDateTime, Selection: tt.sel}
			got, err := Reduce(r, st, GoTo{Step: tt.to})
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got.Step)
			} else {
				assert.ErrorIs(t, err, ErrForwardBlocked)
				assert.Equal(t, st, got)
			}
		})
	}
}

func TestReduceGoToRejectsHandedOff(t *testing.T) {
	r := testRules(0)
	st := State{Step: StepCapturingContact, Selection: Selection{Date: refDay, Time: "10:00", ProfessionalID: 1}}

	_, err := Reduce(r, st, GoTo{Step: StepHandedOff})
	assert.ErrorIs(t, err, ErrForwardBlocked)
}

func TestWizardFlow(t *testing.T) {
	w := newTestWizard(0)
	defer w.Close()

	assert.Equal(t, StepSelectingDateTime, w.State().Step)
	assert.NotEmpty(t, w.ID())

	advanceToContact(t, w)

	st := w.State()
	assert.Equal(t, StepCapturingContact, st.Step)
	assert.True(t, st.Selection.Complete())
}

func TestWizardContactDraftSurvivesBackNavigation(t *testing.T) {
	w := newTestWizard(0)
	defer w.Close()

	advanceToContact(t, w)
	w.SetContactDraft(model.Contact{Name: "João Souza", Phone: "(61) 99803-1185"})

	require.NoError(t, w.GoTo(StepSelectingDateTime))
	require.NoError(t, w.GoTo(StepCapturingContact))

	draft := w.ContactDraft()
	assert.Equal(t, "João Souza", draft.Name)
	assert.Equal(t, "(61) 99803-1185", draft.Phone)
}

type recordingNotifier struct {
	messages []string
	kinds    []NoticeKind
}

func (n *recordingNotifier) Notify(message string, kind NoticeKind, _ time.Duration) {
	n.messages = append(n.messages, message)
	n.kinds = append(n.kinds, kind)
}

type channelHandoff struct {
	delivered chan model.BookingDetails
}

func (h *channelHandoff) Deliver(details model.BookingDetails) {
	h.delivered <- details
}

func TestSubmitContact(t *testing.T) {
	notifier := &recordingNotifier{}
	handoff := &channelHandoff{delivered: make(chan model.BookingDetails, 1)}

	w := newTestWizard(0, func(cfg *Config) {
		cfg.Notifier = notifier
		cfg.Handoff = handoff
		cfg.Delay = 5 * time.Millisecond
	})
	defer w.Close()

	advanceToContact(t, w)

	form := validForm()
	form.Observations = "Sem máquina, só tesoura"

	details, err := w.SubmitContact(form)
	require.NoError(t, err)

	assert.Equal(t, "Corte de Cabelo", details.ServiceName)
	assert.Equal(t, "Ana Silva", details.ProfessionalName)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), details.Date)
	assert.Equal(t, "10:00", details.Time)
	assert.Equal(t, "João Souza", details.ClientName)
	assert.Equal(t, "(61) 99803-1185", details.ClientPhone)
	assert.Equal(t, "Sem máquina, só tesoura", details.Observations)

	assert.Equal(t, StepHandedOff, w.State().Step)

	require.Len(t, notifier.messages, 1)
	assert.True(t, strings.Contains(notifier.messages[0], "WhatsApp"))
	assert.Equal(t, NoticeSuccess, notifier.kinds[0])

	select {
	case got := <-handoff.delivered:
		assert.Equal(t, details, got)
	case <-time.After(time.Second):
		t.Fatal("hand-off não disparou dentro do prazo")
	}
}

func TestSubmitContactIncomplete(t *testing.T) {
	w := newTestWizard(0)
	defer w.Close()

	require.NoError(t, w.SelectDate(refDay))

	_, err := w.SubmitContact(validForm())
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.NotEqual(t, StepHandedOff, w.State().Step)
}

func TestSubmitContactInvalidForm(t *testing.T) {
	w := newTestWizard(0)
	defer w.Close()

	advanceToContact(t, w)

	_, err := w.SubmitContact(ContactForm{Name: "J", Phone: "123"})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	_, hasName := verrs.For("name")
	assert.True(t, hasName)
	_, hasPhone := verrs.For("phone")
	assert.True(t, hasPhone)

	// formulário inválido não muda de etapa
	assert.Equal(t, StepCapturingContact, w.State().Step)
}

func TestSubmitContactTwice(t *testing.T) {
	w := newTestWizard(0, func(cfg *Config) { cfg.Delay = time.Minute })
	defer w.Close()

	advanceToContact(t, w)

	_, err := w.SubmitContact(validForm())
	require.NoError(t, err)

	_, err = w.SubmitContact(validForm())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestCloseCancelsPendingHandoff(t *testing.T) {
	handoff := &channelHandoff{delivered: make(chan model.BookingDetails, 1)}

	w := newTestWizard(0, func(cfg *Config) {
		cfg.Handoff = handoff
		cfg.Delay = 30 * time.Millisecond
	})

	advanceToContact(t, w)
	_, err := w.SubmitContact(validForm())
	require.NoError(t, err)

	w.Close()

	select {
	case <-handoff.delivered:
		t.Fatal("hand-off entregue depois de Close")
	case <-time.After(100 * time.Millisecond):
	}
}
