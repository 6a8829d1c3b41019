package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContactValid(t *testing.T) {
	errs := ValidateContact(ContactForm{
		Name:         "João Souza",
		Phone:        "(61) 99803-1185",
		Observations: "Prefiro atendimento pela manhã",
	})
	assert.Empty(t, errs)
}

func TestValidateContactName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"uma letra", "J", "Nome deve ter pelo menos 2 caracteres"},
		{"vazio", "", "Nome deve ter pelo menos 2 caracteres"},
		{"mínimo exato", "Jo", ""},
		{"máximo exato", strings.Repeat("a", 100), ""},
		{"longo demais", strings.Repeat("a", 101), "Nome muito longo"},
		// runas, não bytes: "Zé" tem 2 caracteres
		{"acentuado curto", "Zé", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateContact(ContactForm{Name: tt.value, Phone: "(61) 99803-1185"})
			msg, found := errs.For("name")
			if tt.want == "" {
				assert.False(t, found)
			} else {
				require.True(t, found)
				assert.Equal(t, tt.want, msg)
			}
		})
	}
}

func TestValidateContactPhone(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"celular formatado", "(61) 99803-1185", true},
		{"fixo formatado", "(61) 9980-1185", true},
		{"cru sem máscara", "61998031185", false},
		{"curto demais", "(61) 998", false},
		{"vazio", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateContact(ContactForm{Name: "João Souza", Phone: tt.value})
			msg, found := errs.For("phone")
			if tt.ok {
				assert.False(t, found)
			} else {
				require.True(t, found)
				assert.Equal(t, "Telefone inválido", msg)
			}
		})
	}
}

func TestValidateContactObservations(t *testing.T) {
	form := ContactForm{Name: "João Souza", Phone: "(61) 99803-1185"}

	form.Observations = strings.Repeat("x", 500)
	errs := ValidateContact(form)
	_, found := errs.For("observations")
	assert.False(t, found)

	form.Observations = strings.Repeat("x", 501)
	errs = ValidateContact(form)
	msg, found := errs.For("observations")
	require.True(t, found)
	assert.Equal(t, "Máximo 500 caracteres", msg)
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidateContact(ContactForm{Name: "J", Phone: "x"})
	require.Len(t, errs, 2)
	assert.Contains(t, errs.Error(), "name: ")
	assert.Contains(t, errs.Error(), "phone: ")
}
