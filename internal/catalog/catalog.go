package catalog

import (
	"fmt"

	"github.com/Gust4dev/agendakit-demo/internal/model"
)

// Catalog é o repositório somente-leitura de serviços e profissionais,
// indexado por ID e por slug. Construído uma vez no início do processo.
type Catalog struct {
	services      []model.Service
	professionals []model.Professional

	serviceByID   map[int]model.Service
	serviceBySlug map[string]model.Service
	profByID      map[int]model.Professional
}

// New monta o catálogo e valida que os slugs derivados são únicos.
func New(services []model.Service, professionals []model.Professional) (*Catalog, error) {
	c := &Catalog{
		services:      services,
		professionals: professionals,
		serviceByID:   make(map[int]model.Service, len(services)),
		serviceBySlug: make(map[string]model.Service, len(services)),
		profByID:      make(map[int]model.Professional, len(professionals)),
	}

	for _, s := range services {
		if _, dup := c.serviceByID[s.ID]; dup {
			return nil, fmt.Errorf("catalog: id de serviço duplicado: %d", s.ID)
		}
		slug := Slugify(s.Name)
		if other, dup := c.serviceBySlug[slug]; dup {
			return nil, fmt.Errorf("catalog: slug %q colide entre %q e %q", slug, other.Name, s.Name)
		}
		c.serviceByID[s.ID] = s
		c.serviceBySlug[slug] = s
	}

	for _, p := range professionals {
		if _, dup := c.profByID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: id de profissional duplicado: %d", p.ID)
		}
		c.profByID[p.ID] = p
	}

	return c, nil
}

// Default retorna o catálogo da demo.
func Default() *Catalog {
	c, err := New(demoServices, demoProfessionals)
	if err != nil {
		panic("catalog: dados da demo inválidos: " + err.Error())
	}
	return c
}

// Services retorna todos os serviços, na ordem do catálogo.
func (c *Catalog) Services() []model.Service {
	out := make([]model.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Professionals retorna todos os profissionais, na ordem do catálogo.
func (c *Catalog) Professionals() []model.Professional {
	out := make([]model.Professional, len(c.professionals))
	copy(out, c.professionals)
	return out
}

// ServiceByID busca um serviço pelo ID.
func (c *Catalog) ServiceByID(id int) (model.Service, bool) {
	s, ok := c.serviceByID[id]
	return s, ok
}

// ServiceBySlug resolve o parâmetro de rota para um serviço.
func (c *Catalog) ServiceBySlug(slug string) (model.Service, bool) {
	s, ok := c.serviceBySlug[slug]
	return s, ok
}

// ProfessionalByID busca um profissional pelo ID.
func (c *Catalog) ProfessionalByID(id int) (model.Professional, bool) {
	p, ok := c.profByID[id]
	return p, ok
}

// ProfessionalsFor retorna os profissionais que atendem o serviço.
func (c *Catalog) ProfessionalsFor(serviceID int) []model.Professional {
	var out []model.Professional
	for _, p := range c.professionals {
		if p.Attends(serviceID) {
			out = append(out, p)
		}
	}
	return out
}

// ServicesByCategory agrupa os serviços preservando a ordem das categorias
// conforme aparecem no catálogo.
func (c *Catalog) ServicesByCategory() []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[model.Category]int)
	for _, s := range c.services {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, CategoryGroup{Category: s.Category})
		}
		groups[i].Services = append(groups[i].Services, s)
	}
	return groups
}

// CategoryGroup é uma categoria com seus serviços.
type CategoryGroup struct {
	Category model.Category
	Services []model.Service
}
