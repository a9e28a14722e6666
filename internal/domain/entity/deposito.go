package entity

import "time"

// Deposito representa um local físico ou lógico de armazenagem de uma empresa.
// Nome único por empresa entre depósitos ativos. Exclusão é soft delete e é
// recusada enquanto houver estoque com quantidade > 0 no depósito.
type Deposito struct {
	ID        string
	EmpresaID string
	Nome      string
	Descricao string
	Endereco  string
	Status    string // ativo, inativo
	CreatedAt time.Time
	UpdatedAt time.Time
}
