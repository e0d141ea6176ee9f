package domain

// Seller representa um vendedor cadastrado no conjunto de dados
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StartDate string `json:"start_date,omitempty"`
	Position  string `json:"position,omitempty"`
}

// FullName retorna nome e sobrenome separados por espaço
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}
