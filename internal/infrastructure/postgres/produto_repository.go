package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação da porta ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `id, empresa_id, categoria_id, codigo, nome, descricao, unidade_medida,
		preco_custo, preco_venda, estoque_minimo, validade, status, created_at, updated_at`

// Criar persiste um novo produto.
func (r *ProdutoRepo) Criar(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoColunas + `)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.EmpresaID, produto.CategoriaID, produto.Codigo, produto.Nome,
		produto.Descricao, produto.UnidadeMedida, produto.PrecoCusto, produto.PrecoVenda,
		produto.EstoqueMinimo, produto.Validade, produto.Status, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// BuscarPorID busca um produto da empresa. Produto de outra empresa é
// tratado como inexistente.
func (r *ProdutoRepo) BuscarPorID(id, empresaID string) (*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos WHERE id = $1 AND empresa_id = $2`
	return r.scanUm(r.q.QueryRow(context.Background(), query, id, empresaID), "get produto")
}

// BuscarPorCodigo busca por código interno entre produtos ativos da empresa.
func (r *ProdutoRepo) BuscarPorCodigo(empresaID, codigo string) (*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos WHERE empresa_id = $1 AND codigo = $2 AND status = 'ativo'`
	return r.scanUm(r.q.QueryRow(context.Background(), query, empresaID, codigo), "get produto por codigo")
}

// Atualizar grava os metadados editáveis do produto. Quantidade não passa por
// aqui: é responsabilidade do Ledger.
func (r *ProdutoRepo) Atualizar(produto *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, preco_venda = $3, validade = $4, estoque_minimo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.PrecoVenda, produto.Validade,
		produto.EstoqueMinimo, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Inativar marca o produto como inativo (soft delete).
func (r *ProdutoRepo) Inativar(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET status = 'inativo', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("inativar produto: %w", err)
	}
	return nil
}

func (r *ProdutoRepo) scanUm(row pgx.Row, op string) (*entity.Produto, error) {
	var p entity.Produto
	var codigo *string
	err := row.Scan(
		&p.ID, &p.EmpresaID, &p.CategoriaID, &codigo, &p.Nome, &p.Descricao, &p.UnidadeMedida,
		&p.PrecoCusto, &p.PrecoVenda, &p.EstoqueMinimo, &p.Validade, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if codigo != nil {
		p.Codigo = *codigo
	}
	return &p, nil
}
