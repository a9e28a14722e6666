package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo trilha de movimentações, append-only.
type MovimentacaoRepo struct {
	q Querier
}

func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Criar registra uma movimentação. ID e CreatedAt são preenchidos se vazios.
func (r *MovimentacaoRepo) Criar(mov *entity.Movimentacao) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	if mov.CreatedAt.IsZero() {
		mov.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO movimentacoes (id, produto_id, deposito_id, usuario_id, tipo, quantidade, anterior, atual, motivo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProdutoID, mov.DepositoID, mov.UsuarioID,
		mov.Tipo, mov.Quantidade, mov.Anterior, mov.Atual, mov.Motivo, mov.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movimentacao: %w", err)
	}
	return nil
}
