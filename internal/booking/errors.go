package booking

import (
	"errors"
	"strings"
)

// Nenhuma rejeição do assistente é fatal: toda falha é local, o estado
// não é corrompido e a sessão continua utilizável.
var (
	// ErrNoDate: horário escolhido antes do dia.
	ErrNoDate = errors.New("selecione um dia antes do horário")

	// ErrSlotTaken: o oráculo reporta o horário ocupado para o
	// profissional fixado na sessão.
	ErrSlotTaken = errors.New("este horário já está reservado")

	// ErrIncomplete: ação exige seleções anteriores ainda vazias.
	ErrIncomplete = errors.New("seleção de agendamento incompleta")

	// ErrNotEligible: o profissional não atende o serviço da sessão.
	ErrNotEligible = errors.New("profissional não atende este serviço")

	// ErrProfessionalTaken: o profissional está ocupado neste horário.
	ErrProfessionalTaken = errors.New("profissional indisponível neste horário")

	// ErrUnknownProfessional: ID fora do catálogo.
	ErrUnknownProfessional = errors.New("profissional não encontrado")

	// ErrForwardBlocked: avanço de etapa sem as seleções exigidas.
	ErrForwardBlocked = errors.New("complete a etapa atual antes de avançar")

	// ErrAlreadySubmitted: o hand-off já foi disparado nesta sessão.
	ErrAlreadySubmitted = errors.New("agendamento já enviado")
)

// FieldError é um erro de validação restrito a um campo do formulário.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors agrega os erros de campo de uma submissão. A submissão
// é bloqueada, mas nada do que foi digitado é descartado.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// For retorna a mensagem do campo, se houver.
func (v ValidationErrors) For(field string) (string, bool) {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}
