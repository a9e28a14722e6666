package repository

import "github.com/pocket-estoque/api/internal/domain/entity"

// DepositoComTotais é a linha da listagem de depósitos: o depósito mais os
// agregados do estoque que ele guarda.
type DepositoComTotais struct {
	entity.Deposito
	TotalProdutos int
	TotalItens    int
}

// DepositoRepository porta de persistência de depósitos.
type DepositoRepository interface {
	Criar(deposito *entity.Deposito) error
	BuscarPorID(id, empresaID string) (*entity.Deposito, error)
	// BuscarPorNome busca por nome entre depósitos ativos da empresa.
	BuscarPorNome(empresaID, nome string) (*entity.Deposito, error)
	Atualizar(deposito *entity.Deposito) error
	// Inativar marca o depósito como inativo (soft delete).
	Inativar(id string) error
	// ListarPorEmpresa lista depósitos ativos com totais de produtos e itens.
	ListarPorEmpresa(empresaID string) ([]*DepositoComTotais, error)
}
