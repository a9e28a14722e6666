package memory

import (
	"context"

	"github.com/pocket-estoque/api/internal/application/auth"
	"github.com/pocket-estoque/api/internal/application/ledger"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var (
	_ ledger.TxRunner     = (*TxRunner)(nil)
	_ auth.ContasTxRunner = (*TxRunner)(nil)
)

// TxRunner executa o fn direto sobre o Store, sem transação: suficiente para
// os testes, que não exercitam rollback de banco.
type TxRunner struct {
	store *Store
}

func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (t *TxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentacaoRepository,
) error) error {
	return fn(
		NewProdutoRepository(t.store),
		NewEstoqueRepository(t.store),
		NewMovimentacaoRepository(t.store),
	)
}

func (t *TxRunner) RunContas(ctx context.Context, fn func(
	empresaRepo repository.EmpresaRepository,
	usuarioRepo repository.UsuarioRepository,
	depositoRepo repository.DepositoRepository,
	categoriaRepo repository.CategoriaRepository,
) error) error {
	return fn(
		NewEmpresaRepository(t.store),
		NewUsuarioRepository(t.store),
		NewDepositoRepository(t.store),
		NewCategoriaRepository(t.store),
	)
}
