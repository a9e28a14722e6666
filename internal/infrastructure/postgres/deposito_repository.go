package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var _ repository.DepositoRepository = (*DepositoRepo)(nil)

// DepositoRepo implementação PostgreSQL de DepositoRepository.
type DepositoRepo struct {
	q Querier
}

func NewDepositoRepository(q Querier) *DepositoRepo {
	return &DepositoRepo{q: q}
}

const depositoColunas = `id, empresa_id, nome, descricao, endereco, status, created_at, updated_at`

func (r *DepositoRepo) Criar(d *entity.Deposito) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Status == "" {
		d.Status = entity.StatusAtivo
	}
	query := `
		INSERT INTO depositos (id, empresa_id, nome, descricao, endereco, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.EmpresaID, d.Nome, d.Descricao, d.Endereco, d.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create deposito: %w", err)
	}
	return nil
}

func (r *DepositoRepo) BuscarPorID(id, empresaID string) (*entity.Deposito, error) {
	query := `SELECT ` + depositoColunas + ` FROM depositos WHERE id = $1 AND empresa_id = $2`
	return r.scanUm(r.q.QueryRow(context.Background(), query, id, empresaID), "get deposito")
}

// BuscarPorNome busca ativo por nome exato dentro da empresa.
func (r *DepositoRepo) BuscarPorNome(empresaID, nome string) (*entity.Deposito, error) {
	query := `SELECT ` + depositoColunas + ` FROM depositos WHERE empresa_id = $1 AND nome = $2 AND status = 'ativo'`
	return r.scanUm(r.q.QueryRow(context.Background(), query, empresaID, nome), "get deposito por nome")
}

func (r *DepositoRepo) Atualizar(d *entity.Deposito) error {
	query := `
		UPDATE depositos SET nome = $1, descricao = $2, endereco = $3, updated_at = now()
		WHERE id = $4 AND empresa_id = $5`
	_, err := r.q.Exec(context.Background(), query, d.Nome, d.Descricao, d.Endereco, d.ID, d.EmpresaID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update deposito: %w", err)
	}
	return nil
}

// Inativar marca o depósito como inativo. Exclusão é sempre lógica.
func (r *DepositoRepo) Inativar(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE depositos SET status = 'inativo', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("inativar deposito: %w", err)
	}
	return nil
}

// ListarPorEmpresa lista os depósitos ativos com totais agregados de estoque.
func (r *DepositoRepo) ListarPorEmpresa(empresaID string) ([]*repository.DepositoComTotais, error) {
	query := `
		SELECT d.id, d.empresa_id, d.nome, d.descricao, d.endereco, d.status, d.created_at, d.updated_at,
		       COUNT(e.produto_id) FILTER (WHERE e.quantidade > 0) AS total_produtos,
		       COALESCE(SUM(e.quantidade), 0) AS total_itens
		FROM depositos d
		LEFT JOIN estoque e ON e.deposito_id = d.id
		WHERE d.empresa_id = $1 AND d.status = 'ativo'
		GROUP BY d.id
		ORDER BY d.created_at`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list depositos: %w", err)
	}
	defer rows.Close()

	var out []*repository.DepositoComTotais
	for rows.Next() {
		var d repository.DepositoComTotais
		err := rows.Scan(&d.ID, &d.EmpresaID, &d.Nome, &d.Descricao, &d.Endereco,
			&d.Status, &d.CreatedAt, &d.UpdatedAt, &d.TotalProdutos, &d.TotalItens)
		if err != nil {
			return nil, fmt.Errorf("scan deposito: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *DepositoRepo) scanUm(row pgx.Row, op string) (*entity.Deposito, error) {
	var d entity.Deposito
	err := row.Scan(&d.ID, &d.EmpresaID, &d.Nome, &d.Descricao, &d.Endereco,
		&d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}
