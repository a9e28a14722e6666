package repository

import "github.com/pocket-estoque/api/internal/domain/entity"

// EstoqueRepository porta de persistência das linhas de estoque.
// Buscar retorna (nil, nil) quando não existe linha para o par; ausência
// significa estoque zero e muda o tipo de movimentação gravada pelo Ledger.
type EstoqueRepository interface {
	Buscar(produtoID, depositoID string) (*entity.Estoque, error)
	// BuscarParaUpdate busca bloqueando a linha (SELECT ... FOR UPDATE).
	// Só faz sentido dentro de uma transação.
	BuscarParaUpdate(produtoID, depositoID string) (*entity.Estoque, error)
	Upsert(estoque *entity.Estoque) error
	// TotalNoDeposito soma as quantidades de todas as linhas do depósito.
	TotalNoDeposito(depositoID string) (int, error)
}
