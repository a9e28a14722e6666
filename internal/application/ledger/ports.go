package ledger

import (
	"context"

	"github.com/pocket-estoque/api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados àquela transação. É o que garante a atomicidade do
// Ledger: linha de estoque e movimentação confirmam ou desfazem juntas,
// junto com qualquer outra escrita que o chamador componha no mesmo fn.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		estoqueRepo repository.EstoqueRepository,
		movRepo repository.MovimentacaoRepository,
	) error) error
}
