package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/Gust4dev/agendakit-demo/internal/availability"
	"github.com/Gust4dev/agendakit-demo/internal/booking"
	"github.com/Gust4dev/agendakit-demo/internal/catalog"
	"github.com/Gust4dev/agendakit-demo/internal/controller/callbacks/common/keyboard"
	"github.com/Gust4dev/agendakit-demo/internal/format"
	"github.com/Gust4dev/agendakit-demo/internal/model"
	"github.com/Gust4dev/agendakit-demo/internal/schedule"
)

// Builders de tela: texto + teclado inline de cada passo do assistente.
// Funções puras; o envio fica por conta dos handlers.

// AvatarEmoji converte a cor do avatar em emoji.
func AvatarEmoji(color string) string {
	switch color {
	case "pink":
		return "🩷"
	case "blue":
		return "💙"
	case "purple":
		return "💜"
	}
	return "👤"
}

// BuildServiceList monta o catálogo agrupado por categoria, com um botão
// por serviço.
func BuildServiceList(c *catalog.Catalog) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("📋 Nossos serviços\n")

	for _, group := range c.ServicesByCategory() {
		sb.WriteString(fmt.Sprintf("\n%s %s\n", group.Category.Emoji(), group.Category.Label()))
		for _, s := range group.Services {
			sb.WriteString(fmt.Sprintf("%s %s — %s · %s\n",
				s.Icon, s.Name, format.Currency(s.Price), format.Duration(s.Duration)))
		}
	}
	sb.WriteString("\nEscolha um serviço para agendar:")

	kb := keyboard.NewBuilder()
	for _, s := range c.Services() {
		label := fmt.Sprintf("%s %s · %s", s.Icon, s.Name, format.Currency(s.Price))
		kb.Row(keyboard.Button(label, SelectService+catalog.Slugify(s.Name)))
	}

	return sb.String(), kb.Build()
}

// BuildServiceHeader monta o cabeçalho com o serviço resolvido.
func BuildServiceHeader(svc model.Service) string {
	return fmt.Sprintf("%s %s\n%s\n\n⏱ %s · 💰 %s",
		svc.Icon, svc.Name, svc.Description,
		format.Duration(svc.Duration), format.Currency(svc.Price))
}

// BuildNotFound monta a tela de recuperação para slug desconhecido.
func BuildNotFound(slug string) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("❌ Serviço não encontrado: %q\n\nConfira a lista de serviços disponíveis:", slug)
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📋 Ver serviços disponíveis", ListServices)).
		Build()
	return text, kb
}

// BuildDayPicker monta a etapa 1: escolha do dia, com contagem de vagas
// por dia (contra o profissional fixado, se houver).
func BuildDayPicker(svc model.Service, pinned int, days []time.Time) (string, *models.InlineKeyboardMarkup) {
	text := BuildServiceHeader(svc) +
		"\n\n1️⃣ Selecione o dia:"

	today := schedule.StartOfDay(time.Now())

	kb := keyboard.NewBuilder()
	for _, day := range days {
		stats := availability.SlotStats(day, pinned)

		label := format.DateShort(day)
		if day.Equal(today) {
			label = "hoje, " + day.Format("02/01")
		}
		label = fmt.Sprintf("%s · %d vagas", label, stats.Available)

		kb.Row(keyboard.Button(label, SelectDay+day.Format(DayLayout)))
	}
	kb.Row(
		keyboard.Button("⬅️ Serviços", BackToServices),
		keyboard.Button("❌ Cancelar", CancelBooking),
	)

	return text, kb.Build()
}

// BuildSlotPicker monta a escolha do horário do dia selecionado,
// agrupada por período. Com profissional fixado, horários ocupados
// aparecem com cadeado e viram alerta ao toque.
func BuildSlotPicker(svc model.Service, date time.Time, pinned int, selectedTime string) (string, *models.InlineKeyboardMarkup) {
	stats := availability.SlotStats(date, pinned)

	text := fmt.Sprintf("%s %s\n\n📆 %s\n🟢 %d livres · ⚪ %d ocupados\n\nSelecione o horário:",
		svc.Icon, svc.Name,
		format.DateLong(date),
		stats.Available, stats.Occupied)

	kb := keyboard.NewBuilder()
	for _, period := range schedule.ByPeriod(schedule.Slots(date)) {
		kb.Row(keyboard.Button(period.Emoji+" "+period.Label, Noop))

		buttons := make([]models.InlineKeyboardButton, 0, len(period.Slots))
		for _, slot := range period.Slots {
			blocked := pinned != 0 && availability.IsSlotBlocked(date, slot.Label, pinned)

			switch {
			case blocked:
				buttons = append(buttons, keyboard.Button("🔒 "+slot.Label, TimeTaken+slot.Label))
			case slot.Label == selectedTime:
				buttons = append(buttons, keyboard.Button("✅ "+slot.Label, SelectTime+slot.Label))
			default:
				buttons = append(buttons, keyboard.Button(slot.Label, SelectTime+slot.Label))
			}
		}
		kb.Grid(4, buttons...)
	}

	kb.Row(
		keyboard.Button("📅 Trocar dia", PickDay),
		keyboard.Button("❌ Cancelar", CancelBooking),
	)

	return text, kb.Build()
}

// BuildProfessionalPicker monta a etapa 2: profissionais que atendem o
// serviço, com disponibilidade calculada contra o horário escolhido.
func BuildProfessionalPicker(c *catalog.Catalog, svc model.Service, date time.Time, timeLabel string) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("%s %s\n📆 %s às %s\n\n2️⃣ Selecione o profissional:",
		svc.Icon, svc.Name, format.Date(date), timeLabel)

	kb := keyboard.NewBuilder()
	for _, p := range c.ProfessionalsFor(svc.ID) {
		if availability.IsSlotBlocked(date, timeLabel, p.ID) {
			label := fmt.Sprintf("⛔ %s · Indisponível", p.Name)
			kb.Row(keyboard.Button(label, ProfTaken+fmt.Sprint(p.ID)))
			continue
		}
		label := fmt.Sprintf("%s %s · Disponível", AvatarEmoji(p.Color), p.Name)
		kb.Row(keyboard.Button(label, SelectProf+fmt.Sprint(p.ID)))
	}

	kb.Row(
		keyboard.Button("⬅️ Voltar", GoToStep+"1"),
		keyboard.Button("❌ Cancelar", CancelBooking),
	)

	return text, kb.Build()
}

// BuildSummary monta o resumo do agendamento antes da coleta de contato.
func BuildSummary(c *catalog.Catalog, w *booking.Wizard) (string, *models.InlineKeyboardMarkup) {
	svc := w.Service()
	st := w.State()
	prof, _ := c.ProfessionalByID(st.Selection.ProfessionalID)

	text := fmt.Sprintf(
		"📋 Resumo do Agendamento\n\n"+
			"%s Serviço: %s (%s)\n"+
			"%s Profissional: %s\n"+
			"📆 Data: %s\n"+
			"🕐 Horário: %s\n\n"+
			"3️⃣ Falta pouco! Informe seus dados de contato.",
		svc.Icon, svc.Name, format.Currency(svc.Price),
		AvatarEmoji(prof.Color), prof.Name,
		format.Date(st.Selection.Date),
		st.Selection.Time,
	)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("🧾 Informar meus dados", StartContact))

	if draft := w.ContactDraft(); draft.Name != "" && draft.Phone != "" {
		kb.Row(keyboard.Button("✅ Revisar e confirmar", ConfirmBooking))
	}

	kb.Row(
		keyboard.Button("⬅️ Voltar", GoToStep+"2"),
		keyboard.Button("❌ Cancelar", CancelBooking),
	)

	return text, kb.Build()
}

// BuildConfirmation monta a tela final com todos os dados antes do envio.
func BuildConfirmation(c *catalog.Catalog, w *booking.Wizard) (string, *models.InlineKeyboardMarkup) {
	svc := w.Service()
	st := w.State()
	prof, _ := c.ProfessionalByID(st.Selection.ProfessionalID)
	draft := w.ContactDraft()

	var sb strings.Builder
	sb.WriteString("✅ Confira seu agendamento\n\n")
	sb.WriteString(fmt.Sprintf("%s Serviço: %s (%s)\n", svc.Icon, svc.Name, format.Currency(svc.Price)))
	sb.WriteString(fmt.Sprintf("%s Profissional: %s\n", AvatarEmoji(prof.Color), prof.Name))
	sb.WriteString(fmt.Sprintf("📆 Data: %s\n", format.Date(st.Selection.Date)))
	sb.WriteString(fmt.Sprintf("🕐 Horário: %s\n\n", st.Selection.Time))
	sb.WriteString(fmt.Sprintf("👋 Nome: %s\n", draft.Name))
	sb.WriteString(fmt.Sprintf("📱 WhatsApp: %s\n", draft.Phone))
	if draft.Observations != "" {
		sb.WriteString(fmt.Sprintf("📝 Observações: %s\n", draft.Observations))
	}
	sb.WriteString("\nAo confirmar, o WhatsApp será aberto com sua mensagem pronta. Complete o envio manualmente.")

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("✅ Confirmar Agendamento", ConfirmBooking)).
		Row(keyboard.Button("✏️ Corrigir meus dados", StartContact)).
		Row(
			keyboard.Button("⬅️ Voltar", GoToStep+"2"),
			keyboard.Button("❌ Cancelar", CancelBooking),
		).
		Build()

	return sb.String(), kb
}
