package common

// Padrões de callback data usados pelo assistente de agendamento.
const (
	ListServices   = "list_services"
	BackToServices = "back_to_services"
	Noop           = "noop"

	SelectService = "svc:"  // svc:corte-de-cabelo
	SelectDay     = "day:"  // day:2025-06-09
	SelectTime    = "time:" // time:09:00
	SelectProf    = "prof:" // prof:2

	// horário/profissional ocupado: toque vira alerta, nunca seleção
	TimeTaken = "time_taken:" // time_taken:09:00
	ProfTaken = "prof_taken:" // prof_taken:2

	GoToStep = "step:" // step:1..3
	PickDay  = "pick_day"

	StartContact     = "start_contact"
	SkipObservations = "skip_obs"
	ConfirmBooking   = "confirm_booking"
	CancelBooking    = "cancel_booking"
)

// Layout de data usado nos callbacks de dia.
const DayLayout = "2006-01-02"
