package entity

import "time"

// Categoria agrupa produtos de uma empresa. Toda empresa nasce com a
// categoria padrão "Geral".
type Categoria struct {
	ID        string
	EmpresaID string
	Nome      string
	Descricao string
	CreatedAt time.Time
}
