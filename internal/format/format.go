// Package format concentra a formatação pt-BR usada pelo bot e pela
// mensagem de hand-off, para que o núcleo de agendamento fique testável
// sem depender de camada de apresentação.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Currency formata um valor em reais: 45 -> "R$ 45,00".
func Currency(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	// agrupamento de milhar com ponto
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Date formata a data curta brasileira: 09/06/2025.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateLong formata por extenso: "segunda-feira, 9 de junho".
func DateLong(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s", WeekdayName(t.Weekday()), t.Day(), MonthName(t.Month()))
}

// DateShort formata dia abreviado: "seg, 09/06".
func DateShort(t time.Time) string {
	return fmt.Sprintf("%s, %02d/%02d", WeekdayShort(t.Weekday()), t.Day(), int(t.Month()))
}

// Clock formata somente o horário: 15:04.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// Duration formata minutos em texto: "45min", "1h", "1h 30min".
func Duration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dmin", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// WeekdayName retorna o dia da semana em pt-BR.
func WeekdayName(d time.Weekday) string {
	names := [...]string{
		"domingo",
		"segunda-feira",
		"terça-feira",
		"quarta-feira",
		"quinta-feira",
		"sexta-feira",
		"sábado",
	}
	return names[d]
}

// WeekdayShort retorna o dia da semana abreviado em pt-BR.
func WeekdayShort(d time.Weekday) string {
	names := [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}
	return names[d]
}

// MonthName retorna o mês em pt-BR.
func MonthName(m time.Month) string {
	names := map[time.Month]string{
		time.January:   "janeiro",
		time.February:  "fevereiro",
		time.March:     "março",
		time.April:     "abril",
		time.May:       "maio",
		time.June:      "junho",
		time.July:      "julho",
		time.August:    "agosto",
		time.September: "setembro",
		time.October:   "outubro",
		time.November:  "novembro",
		time.December:  "dezembro",
	}
	return names[m]
}
