package model

import "time"

// TimeSlot é um valor derivado: um intervalo de atendimento dentro do
// expediente de um dia. Nunca é persistido.
type TimeSlot struct {
	Label  string    `json:"time"` // "HH:MM"
	Hour   int       `json:"hour"`
	Minute int       `json:"minute"`
	At     time.Time `json:"date"` // meia-noite local do dia + deslocamento
}
