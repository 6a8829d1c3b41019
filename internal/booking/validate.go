package booking

import (
	"fmt"
	"unicode/utf8"
)

// Limites do formulário de contato.
const (
	NameMinLength = 2
	NameMaxLength = 100

	// comprimento do telefone já formatado: (DD) DDDDD-DDDD
	PhoneMinLength = 14
	PhoneMaxLength = 15

	ObservationsMaxLength = 500
)

// ContactForm são os campos crus submetidos pelo cliente. O telefone deve
// chegar já com a máscara aplicada (format.Phone).
type ContactForm struct {
	Name         string
	Phone        string
	Observations string
}

// ValidateContact aplica as regras do formulário. Retorna nil quando o
// formulário é válido; os erros são por campo e não descartam valores.
func ValidateContact(f ContactForm) ValidationErrors {
	var errs ValidationErrors

	switch n := utf8.RuneCountInString(f.Name); {
	case n < NameMinLength:
		errs = append(errs, FieldError{
			Field:   "name",
			Message: fmt.Sprintf("Nome deve ter pelo menos %d caracteres", NameMinLength),
		})
	case n > NameMaxLength:
		errs = append(errs, FieldError{Field: "name", Message: "Nome muito longo"})
	}

	if n := utf8.RuneCountInString(f.Phone); n < PhoneMinLength || n > PhoneMaxLength {
		errs = append(errs, FieldError{Field: "phone", Message: "Telefone inválido"})
	}

	if utf8.RuneCountInString(f.Observations) > ObservationsMaxLength {
		errs = append(errs, FieldError{
			Field:   "observations",
			Message: fmt.Sprintf("Máximo %d caracteres", ObservationsMaxLength),
		})
	}

	return errs
}
