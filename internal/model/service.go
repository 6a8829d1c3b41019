package model

// Category classifica os serviços do catálogo.
type Category string

const (
	CategoryBarbershop Category = "barbearia"
	CategoryHealth     Category = "saude"
	CategoryFitness    Category = "fitness"
	CategoryAesthetics Category = "estetica"
)

// Label retorna o nome de exibição da categoria.
func (c Category) Label() string {
	switch c {
	case CategoryBarbershop:
		return "Barbearia"
	case CategoryHealth:
		return "Saúde"
	case CategoryFitness:
		return "Fitness"
	case CategoryAesthetics:
		return "Estética"
	}
	return string(c)
}

// Emoji retorna o emoji da categoria para listagens.
func (c Category) Emoji() string {
	switch c {
	case CategoryBarbershop:
		return "💈"
	case CategoryHealth:
		return "🩺"
	case CategoryFitness:
		return "🏋️"
	case CategoryAesthetics:
		return "✨"
	}
	return "📌"
}

type Service struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Duration    int      `json:"duration"` // em minutos
	Price       float64  `json:"price"`    // em reais (BRL)
	Category    Category `json:"category"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}
