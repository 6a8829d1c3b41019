package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gust4dev/agendakit-demo/internal/model"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Corte de Cabelo", "corte-de-cabelo"},
		{"Consulta Nutricional", "consulta-nutricional"},
		{"Design de Sobrancelha", "design-de-sobrancelha"},
		{"Massagem   Relaxante", "massagem-relaxante"},
		{"Época & Cia!", "epoca-cia"},
		{"Ação São João", "acao-sao-joao"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.name))
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Len(t, c.Services(), 6)
	assert.Len(t, c.Professionals(), 3)

	// Cada serviço é alcançável pelo seu slug
	for _, s := range c.Services() {
		got, ok := c.ServiceBySlug(Slugify(s.Name))
		require.True(t, ok, "slug de %q não resolve", s.Name)
		assert.Equal(t, s.ID, got.ID)
	}
}

func TestServiceLookups(t *testing.T) {
	c := Default()

	svc, ok := c.ServiceByID(1)
	require.True(t, ok)
	assert.Equal(t, "Corte de Cabelo", svc.Name)

	svc, ok = c.ServiceBySlug("corte-de-cabelo")
	require.True(t, ok)
	assert.Equal(t, 1, svc.ID)

	_, ok = c.ServiceByID(99)
	assert.False(t, ok)
	_, ok = c.ServiceBySlug("inexistente")
	assert.False(t, ok)
}

func TestProfessionalsFor(t *testing.T) {
	c := Default()

	names := func(ps []model.Professional) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Ana Silva", "Carlos Santos"}, names(c.ProfessionalsFor(1)))
	assert.Equal(t, []string{"Beatriz Costa"}, names(c.ProfessionalsFor(2)))
	assert.Equal(t, []string{"Carlos Santos"}, names(c.ProfessionalsFor(3)))
	assert.Empty(t, c.ProfessionalsFor(99))
}

func TestServicesByCategory(t *testing.T) {
	c := Default()
	groups := c.ServicesByCategory()

	require.Len(t, groups, 4)
	assert.Equal(t, model.CategoryBarbershop, groups[0].Category)
	assert.Equal(t, model.CategoryHealth, groups[1].Category)
	assert.Equal(t, model.CategoryFitness, groups[2].Category)
	assert.Equal(t, model.CategoryAesthetics, groups[3].Category)

	// saúde agrupa consulta nutricional e massagem, na ordem do catálogo
	require.Len(t, groups[1].Services, 2)
	assert.Equal(t, "Consulta Nutricional", groups[1].Services[0].Name)
	assert.Equal(t, "Massagem Relaxante", groups[1].Services[1].Name)
}

func TestNewRejectsDuplicates(t *testing.T) {
	dupID := []model.Service{
		{ID: 1, Name: "Corte de Cabelo"},
		{ID: 1, Name: "Outro Corte"},
	}
	_, err := New(dupID, nil)
	assert.Error(t, err)

	dupSlug := []model.Service{
		{ID: 1, Name: "Corte de Cabelo"},
		{ID: 2, Name: "CORTE DE CABELO"},
	}
	_, err = New(dupSlug, nil)
	assert.Error(t, err)

	dupProf := []model.Professional{
		{ID: 1, Name: "Ana"},
		{ID: 1, Name: "Bia"},
	}
	_, err = New(nil, dupProf)
	assert.Error(t, err)
}
