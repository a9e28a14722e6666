package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação da porta EstoqueRepository sobre PostgreSQL
// (usável com pool ou tx).
type EstoqueRepo struct {
	q Querier
}

// NewEstoqueRepository constrói o adaptador de estoque. Passar pool ou tx (Querier).
func NewEstoqueRepository(q Querier) *EstoqueRepo {
	return &EstoqueRepo{q: q}
}

// Buscar busca a linha de estoque do par (produto, depósito).
// Retorna (nil, nil) quando não existe: ausência significa estoque zero.
func (r *EstoqueRepo) Buscar(produtoID, depositoID string) (*entity.Estoque, error) {
	query := `
		SELECT produto_id, deposito_id, quantidade, quantidade_reservada, updated_at
		FROM estoque WHERE produto_id = $1 AND deposito_id = $2`
	return scanEstoque(r.q.QueryRow(context.Background(), query, produtoID, depositoID), "get estoque")
}

// BuscarParaUpdate busca bloqueando a linha (SELECT ... FOR UPDATE), para o
// read-modify-write do Ledger não perder escritas concorrentes.
func (r *EstoqueRepo) BuscarParaUpdate(produtoID, depositoID string) (*entity.Estoque, error) {
	query := `
		SELECT produto_id, deposito_id, quantidade, quantidade_reservada, updated_at
		FROM estoque WHERE produto_id = $1 AND deposito_id = $2
		FOR UPDATE`
	return scanEstoque(r.q.QueryRow(context.Background(), query, produtoID, depositoID), "get estoque for update")
}

// Upsert insere ou atualiza a quantidade (por produto e depósito).
func (r *EstoqueRepo) Upsert(estoque *entity.Estoque) error {
	query := `
		INSERT INTO estoque (produto_id, deposito_id, quantidade, quantidade_reservada, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (produto_id, deposito_id)
		DO UPDATE SET quantidade = EXCLUDED.quantidade, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		estoque.ProdutoID, estoque.DepositoID, estoque.Quantidade, estoque.QuantidadeReservada)
	if err != nil {
		return fmt.Errorf("upsert estoque: %w", err)
	}
	return nil
}

// TotalNoDeposito soma as quantidades do depósito (zero se não há linhas).
func (r *EstoqueRepo) TotalNoDeposito(depositoID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantidade), 0) FROM estoque WHERE deposito_id = $1`,
		depositoID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total no deposito: %w", err)
	}
	return total, nil
}

func scanEstoque(row pgx.Row, op string) (*entity.Estoque, error) {
	var e entity.Estoque
	err := row.Scan(&e.ProdutoID, &e.DepositoID, &e.Quantidade, &e.QuantidadeReservada, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}
