package entity

import "time"

// Empresa representa o tenant: dona de usuários, depósitos, categorias e produtos.
type Empresa struct {
	ID        string
	Nome      string
	CNPJ      string
	Email     string
	Status    string // ativo, inativo
	CreatedAt time.Time
	UpdatedAt time.Time
}
