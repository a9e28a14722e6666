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

var (
	_ repository.EmpresaRepository   = (*EmpresaRepo)(nil)
	_ repository.CategoriaRepository = (*CategoriaRepo)(nil)
)

// EmpresaRepo implementação PostgreSQL de EmpresaRepository.
type EmpresaRepo struct {
	q Querier
}

func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

func (r *EmpresaRepo) Criar(e *entity.Empresa) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = entity.StatusAtivo
	}
	query := `
		INSERT INTO empresas (id, nome, cnpj, email, status, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, now(), now())`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.Nome, e.CNPJ, e.Email, e.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create empresa: %w", err)
	}
	return nil
}

func (r *EmpresaRepo) BuscarPorID(id string) (*entity.Empresa, error) {
	query := `
		SELECT id, nome, COALESCE(cnpj, ''), email, status, created_at, updated_at
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Email, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

func (r *EmpresaRepo) Atualizar(e *entity.Empresa) error {
	query := `
		UPDATE empresas SET nome = $1, cnpj = NULLIF($2, ''), email = $3, updated_at = now()
		WHERE id = $4`
	_, err := r.q.Exec(context.Background(), query, e.Nome, e.CNPJ, e.Email, e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// CategoriaRepo implementação PostgreSQL de CategoriaRepository.
type CategoriaRepo struct {
	q Querier
}

func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

func (r *CategoriaRepo) Criar(c *entity.Categoria) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO categorias (id, empresa_id, nome, descricao, created_at)
		VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.EmpresaID, c.Nome, c.Descricao)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create categoria: %w", err)
	}
	return nil
}
