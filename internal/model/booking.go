package model

import "time"

// Contact são os dados de contato digitados pelo cliente durante o
// agendamento. Vive apenas na sessão do assistente.
type Contact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"` // já formatado: (DD) DDDDD-DDDD
	Observations string `json:"observations,omitempty"`
}

// BookingDetails é a carga final de hand-off: montada de uma vez só, a
// partir de uma seleção completa, imediatamente antes do envio.
type BookingDetails struct {
	ServiceName      string    `json:"service_name"`
	ProfessionalName string    `json:"professional_name"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	ClientName       string    `json:"client_name"`
	ClientPhone      string    `json:"client_phone"`
	Observations     string    `json:"observations,omitempty"`
}
