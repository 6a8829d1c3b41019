package model

type Professional struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Specialties []int  `json:"specialties"` // IDs dos serviços que atende
	Initials    string `json:"initials"`
	Color       string `json:"color"` // cor do avatar
}

// Attends informa se o profissional atende o serviço.
func (p Professional) Attends(serviceID int) bool {
	for _, id := range p.Specialties {
		if id == serviceID {
			return true
		}
	}
	return false
}
