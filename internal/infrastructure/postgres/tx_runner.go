package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pocket-estoque/api/internal/application/auth"
	"github.com/pocket-estoque/api/internal/application/ledger"
	"github.com/pocket-estoque/api/internal/application/usecase"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

// Garante que TxRunner implementa as portas transacionais da aplicação.
var (
	_ ledger.TxRunner        = (*TxRunner)(nil)
	_ auth.ContasTxRunner    = (*TxRunner)(nil)
	_ usecase.ContasTxRunner = (*TxRunner)(nil)
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios de estoque atados à
// tx e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentacaoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProdutoRepository(tx), NewEstoqueRepository(tx), NewMovimentacaoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunContas inicia uma transação com os repositórios de contas (cadastro de
// empresa e edição de perfil).
func (r *TxRunner) RunContas(ctx context.Context, fn func(
	empresaRepo repository.EmpresaRepository,
	usuarioRepo repository.UsuarioRepository,
	depositoRepo repository.DepositoRepository,
	categoriaRepo repository.CategoriaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEmpresaRepository(tx), NewUsuarioRepository(tx), NewDepositoRepository(tx), NewCategoriaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
