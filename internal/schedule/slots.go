package schedule

import (
	"fmt"
	"time"

	"github.com/Gust4dev/agendakit-demo/internal/model"
)

// Janela de expediente da demo: [09:00, 19:00) em passos de 30 minutos.
const (
	DefaultStartHour       = 9
	DefaultEndHour         = 19
	DefaultIntervalMinutes = 30
)

// StartOfDay retorna a meia-noite local do dia de t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Slots gera os horários do dia na janela padrão de expediente.
func Slots(date time.Time) []model.TimeSlot {
	return SlotsWindow(date, DefaultStartHour, DefaultEndHour, DefaultIntervalMinutes)
}

// SlotsWindow gera a sequência ordenada de horários de [startHour:00,
// endHour:00) no intervalo dado. Mesma entrada, mesma sequência: a função
// é pura e nada é persistido.
func SlotsWindow(date time.Time, startHour, endHour, intervalMinutes int) []model.TimeSlot {
	base := StartOfDay(date)

	var slots []model.TimeSlot
	for hour := startHour; hour < endHour; hour++ {
		for minute := 0; minute < 60; minute += intervalMinutes {
			at := base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
			slots = append(slots, model.TimeSlot{
				Label:  fmt.Sprintf("%02d:%02d", hour, minute),
				Hour:   hour,
				Minute: minute,
				At:     at,
			})
		}
	}
	return slots
}

// WeekDays retorna os 7 dias a partir do dia de start.
func WeekDays(start time.Time) []time.Time {
	first := StartOfDay(start)
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}

// Period é um trecho do dia usado para agrupar horários na interface.
type Period struct {
	Emoji string
	Label string
	Slots []model.TimeSlot
}

// ByPeriod divide os horários em Manhã (< 12h), Tarde (12h–17h) e
// Noite (>= 17h). Períodos vazios são omitidos.
func ByPeriod(slots []model.TimeSlot) []Period {
	periods := []Period{
		{Emoji: "🌅", Label: "Manhã"},
		{Emoji: "☀️", Label: "Tarde"},
		{Emoji: "🌙", Label: "Noite"},
	}
	for _, s := range slots {
		switch {
		case s.Hour < 12:
			periods[0].Slots = append(periods[0].Slots, s)
		case s.Hour < 17:
			periods[1].Slots = append(periods[1].Slots, s)
		default:
			periods[2].Slots = append(periods[2].Slots, s)
		}
	}

	var out []Period
	for _, p := range periods {
		if len(p.Slots) > 0 {
			out = append(out, p)
		}
	}
	return out
}
