package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de leitura (listagens e relatórios). Sem mutações.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ListarProdutos lista os produtos ativos da empresa com quantidade agregada
// entre todos os depósitos.
func (r *ReportRepo) ListarProdutos(empresaID string) ([]*repository.ProdutoListagem, error) {
	query := `
		SELECT p.id, COALESCE(p.codigo, ''), p.nome, COALESCE(c.nome, ''), p.unidade_medida,
		       p.preco_venda, p.estoque_minimo, p.validade,
		       COALESCE(SUM(e.quantidade), 0), COALESCE(SUM(e.quantidade_reservada), 0), ''
		FROM produtos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		LEFT JOIN estoque e ON e.produto_id = p.id
		WHERE p.empresa_id = $1 AND p.status = 'ativo'
		GROUP BY p.id, c.nome
		ORDER BY p.nome`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	return scanListagem(rows)
}

// ListarProdutosPorDeposito lista os produtos ativos com a quantidade do
// depósito informado (zero quando não há linha de estoque nele).
func (r *ReportRepo) ListarProdutosPorDeposito(empresaID, depositoID string) ([]*repository.ProdutoListagem, error) {
	query := `
		SELECT p.id, COALESCE(p.codigo, ''), p.nome, COALESCE(c.nome, ''), p.unidade_medida,
		       p.preco_venda, p.estoque_minimo, p.validade,
		       COALESCE(e.quantidade, 0), COALESCE(e.quantidade_reservada, 0), COALESCE(d.nome, '')
		FROM produtos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		LEFT JOIN estoque e ON e.produto_id = p.id AND e.deposito_id = $2
		LEFT JOIN depositos d ON d.id = e.deposito_id
		WHERE p.empresa_id = $1 AND p.status = 'ativo'
		ORDER BY p.nome`
	rows, err := r.q.Query(context.Background(), query, empresaID, depositoID)
	if err != nil {
		return nil, fmt.Errorf("list produtos por deposito: %w", err)
	}
	return scanListagem(rows)
}

// EstoqueBaixo retorna linhas de estoque com quantidade igual ou abaixo do
// mínimo do produto, as mais críticas primeiro.
func (r *ReportRepo) EstoqueBaixo(empresaID string) ([]*repository.EstoqueBaixoItem, error) {
	query := `
		SELECT p.id, p.nome, p.estoque_minimo, e.quantidade, d.nome
		FROM estoque e
		JOIN produtos p ON p.id = e.produto_id
		JOIN depositos d ON d.id = e.deposito_id
		WHERE p.empresa_id = $1 AND p.status = 'ativo'
		  AND e.quantidade <= p.estoque_minimo
		ORDER BY e.quantidade ASC, p.nome`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("estoque baixo: %w", err)
	}
	defer rows.Close()

	var out []*repository.EstoqueBaixoItem
	for rows.Next() {
		var item repository.EstoqueBaixoItem
		err := rows.Scan(&item.ProdutoID, &item.Nome, &item.EstoqueMinimo, &item.Quantidade, &item.DepositoNome)
		if err != nil {
			return nil, fmt.Errorf("scan estoque baixo: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

// ValidadeProxima retorna produtos com validade entre hoje e o fim da janela
// em dias. Produtos já vencidos ficam de fora.
func (r *ReportRepo) ValidadeProxima(empresaID string, janelaDias int) ([]*repository.ValidadeProximaItem, error) {
	query := `
		SELECT p.id, p.nome, p.validade, COALESCE(SUM(e.quantidade), 0),
		       COALESCE(MIN(d.nome), ''),
		       (p.validade::date - CURRENT_DATE) AS dias_restantes
		FROM produtos p
		LEFT JOIN estoque e ON e.produto_id = p.id
		LEFT JOIN depositos d ON d.id = e.deposito_id
		WHERE p.empresa_id = $1 AND p.status = 'ativo'
		  AND p.validade IS NOT NULL
		  AND p.validade::date >= CURRENT_DATE
		  AND p.validade::date <= CURRENT_DATE + $2::int
		GROUP BY p.id
		ORDER BY p.validade ASC`
	rows, err := r.q.Query(context.Background(), query, empresaID, janelaDias)
	if err != nil {
		return nil, fmt.Errorf("validade proxima: %w", err)
	}
	defer rows.Close()

	var out []*repository.ValidadeProximaItem
	for rows.Next() {
		var item repository.ValidadeProximaItem
		err := rows.Scan(&item.ProdutoID, &item.Nome, &item.Validade, &item.Quantidade,
			&item.DepositoNome, &item.DiasRestantes)
		if err != nil {
			return nil, fmt.Errorf("scan validade proxima: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

func scanListagem(rows pgx.Rows) ([]*repository.ProdutoListagem, error) {
	defer rows.Close()
	var out []*repository.ProdutoListagem
	for rows.Next() {
		var item repository.ProdutoListagem
		err := rows.Scan(&item.ID, &item.Codigo, &item.Nome, &item.CategoriaNome,
			&item.UnidadeMedida, &item.PrecoVenda, &item.EstoqueMinimo, &item.Validade,
			&item.Quantidade, &item.QuantidadeReservada, &item.DepositoNome)
		if err != nil {
			return nil, fmt.Errorf("scan produto listagem: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}
