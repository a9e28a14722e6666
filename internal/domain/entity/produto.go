package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de produto e depósito (soft delete: nunca removemos a linha).
const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
)

// Produto representa um item rastreável do catálogo de uma empresa.
// A quantidade em mãos não mora aqui: ela é por depósito, na tabela estoque.
type Produto struct {
	ID            string
	EmpresaID     string
	CategoriaID   *string
	Codigo        string // código interno, único por empresa entre produtos ativos (opcional)
	Nome          string
	Descricao     string
	UnidadeMedida string // UN, KG, CX, ...
	PrecoCusto    decimal.Decimal
	PrecoVenda    decimal.Decimal
	EstoqueMinimo int        // limiar de alerta de estoque baixo
	Validade      *time.Time // data de validade (opcional)
	Status        string     // ativo, inativo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
