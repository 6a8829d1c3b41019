// Package availability simula a ocupação da agenda com uma função
// determinística de hash: não existe backend real de agendamento na demo,
// mas o mesmo trio (dia, horário, profissional) fica ocupado ou livre para
// sempre, em qualquer execução.
package availability

import (
	"fmt"
	"time"

	"github.com/Gust4dev/agendakit-demo/internal/catalog"
	"github.com/Gust4dev/agendakit-demo/internal/model"
	"github.com/Gust4dev/agendakit-demo/internal/schedule"
)

// IsSlotBlocked informa se o horário está ocupado para o profissional.
// Determinístico: ~30% dos trios ficam ocupados, estáveis para sempre.
func IsSlotBlocked(date time.Time, timeLabel string, professionalID int) bool {
	h := slotHash(date, timeLabel, professionalID)
	return abs64(h)%10 < 3
}

// slotKey monta a chave "ano-mêsZeroBased-dia-horário-profissional".
// O mês em base zero é herdado dos dados da demo; mudar o formato muda
// quais horários aparecem ocupados.
func slotKey(date time.Time, timeLabel string, professionalID int) string {
	return fmt.Sprintf("%d-%d-%d-%s-%d",
		date.Year(), int(date.Month())-1, date.Day(), timeLabel, professionalID)
}

// hashKey aplica a regra incremental h = h*31 + c truncando em int32 a
// cada caractere. O overflow com wrap faz parte do contrato: é ele que
// define o padrão de ocupação da demo.
func hashKey(key string) int32 {
	var h int32
	for i := 0; i < len(key); i++ {
		h = h<<5 - h + int32(key[i])
	}
	return h
}

func slotHash(date time.Time, timeLabel string, professionalID int) int32 {
	return hashKey(slotKey(date, timeLabel, professionalID))
}

// abs64 alarga para int64 antes de negar: -math.MinInt32 não cabe em
// int32, e o valor absoluto de referência é exato nesse caso.
func abs64(h int32) int64 {
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return n
}

// AvailableProfessionals filtra os profissionais do serviço que estão
// livres no horário.
func AvailableProfessionals(c *catalog.Catalog, serviceID int, date time.Time, timeLabel string) []model.Professional {
	var out []model.Professional
	for _, p := range c.ProfessionalsFor(serviceID) {
		if !IsSlotBlocked(date, timeLabel, p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// Stats conta horários livres e ocupados de um dia.
type Stats struct {
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}

// SlotStats calcula as estatísticas do dia para um profissional.
// Sem profissional (id 0) não há contra quem bloquear: tudo conta
// como livre.
func SlotStats(date time.Time, professionalID int) Stats {
	slots := schedule.Slots(date)
	if professionalID == 0 {
		return Stats{Available: len(slots)}
	}

	var st Stats
	for _, s := range slots {
		if IsSlotBlocked(date, s.Label, professionalID) {
			st.Occupied++
		} else {
			st.Available++
		}
	}
	return st
}

// Nomes fictícios exibidos nos horários ocupados da demo.
var demoClients = []string{
	"Marcos", "Juliana", "Pedro", "Fernanda",
	"Lucas", "Camila", "Rafael", "Patrícia",
}

// BlockedSlotClient devolve o nome do cliente fictício que "reservou" o
// horário, ou vazio se o horário está livre. Determinístico como o
// restante do oráculo; o hash é dividido por 10 para não correlacionar
// com a decisão de bloqueio.
func BlockedSlotClient(date time.Time, timeLabel string, professionalID int) string {
	if !IsSlotBlocked(date, timeLabel, professionalID) {
		return ""
	}
	h := abs64(slotHash(date, timeLabel, professionalID))
	return demoClients[(h/10)%int64(len(demoClients))]
}
