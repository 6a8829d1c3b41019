package catalog

import "github.com/Gust4dev/agendakit-demo/internal/model"

// Dados estáticos da demo. Carregados uma única vez no início do processo;
// nenhuma mutação é exposta ao restante do sistema.

var demoServices = []model.Service{
	{
		ID:          1,
		Name:        "Corte de Cabelo",
		Duration:    45,
		Price:       45,
		Category:    model.CategoryBarbershop,
		Icon:        "✂️",
		Description: "Corte masculino ou feminino com acabamento",
	},
	{
		ID:          2,
		Name:        "Consulta Nutricional",
		Duration:    60,
		Price:       120,
		Category:    model.CategoryHealth,
		Icon:        "🥗",
		Description: "Avaliação completa e plano alimentar personalizado",
	},
	{
		ID:          3,
		Name:        "Personal Training",
		Duration:    50,
		Price:       80,
		Category:    model.CategoryFitness,
		Icon:        "💪",
		Description: "Treino personalizado com acompanhamento",
	},
	{
		ID:          4,
		Name:        "Design de Sobrancelha",
		Duration:    30,
		Price:       35,
		Category:    model.CategoryAesthetics,
		Icon:        "✨",
		Description: "Design com henna ou micropigmentação",
	},
	{
		ID:          5,
		Name:        "Massagem Relaxante",
		Duration:    60,
		Price:       90,
		Category:    model.CategoryHealth,
		Icon:        "💆",
		Description: "Massagem corporal completa anti-stress",
	},
	{
		ID:          6,
		Name:        "Consultoria Fitness",
		Duration:    45,
		Price:       100,
		Category:    model.CategoryFitness,
		Icon:        "📋",
		Description: "Avaliação física e montagem de programa",
	},
}

var demoProfessionals = []model.Professional{
	{
		ID:          1,
		Name:        "Ana Silva",
		Specialties: []int{1, 4},
		Initials:    "AS",
		Color:       "pink",
	},
	{
		ID:          2,
		Name:        "Carlos Santos",
		Specialties: []int{1, 3, 6},
		Initials:    "CS",
		Color:       "blue",
	},
	{
		ID:          3,
		Name:        "Beatriz Costa",
		Specialties: []int{2, 5},
		Initials:    "BC",
		Color:       "purple",
	},
}
