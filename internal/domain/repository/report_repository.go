package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProdutoListagem é a linha da listagem de produtos: campos do produto mais
// os agregados de estoque e o nome da categoria.
type ProdutoListagem struct {
	ID                  string
	Codigo              string
	Nome                string
	CategoriaNome       string
	UnidadeMedida       string
	PrecoVenda          decimal.Decimal
	EstoqueMinimo       int
	Validade            *time.Time
	Quantidade          int // no depósito filtrado, ou total da empresa
	QuantidadeReservada int
	DepositoNome        string // vazio na listagem agregada
}

// EstoqueBaixoItem é a linha do relatório de estoque baixo.
type EstoqueBaixoItem struct {
	ProdutoID     string
	Nome          string
	EstoqueMinimo int
	Quantidade    int
	DepositoNome  string
}

// ValidadeProximaItem é a linha do relatório de validade próxima.
type ValidadeProximaItem struct {
	ProdutoID     string
	Nome          string
	Validade      time.Time
	Quantidade    int
	DepositoNome  string
	DiasRestantes int
}

// ReportRepository consultas de leitura sobre produtos/estoque/depósitos.
// Nenhuma mutação: só joins sobre as mesmas tabelas que o Ledger escreve.
type ReportRepository interface {
	ListarProdutos(empresaID string) ([]*ProdutoListagem, error)
	ListarProdutosPorDeposito(empresaID, depositoID string) ([]*ProdutoListagem, error)
	// EstoqueBaixo: produtos ativos com quantidade <= estoque_minimo,
	// ordenados por quantidade ascendente.
	EstoqueBaixo(empresaID string) ([]*EstoqueBaixoItem, error)
	// ValidadeProxima: produtos ativos com validade dentro de janelaDias a
	// partir de hoje, ordenados por validade ascendente.
	ValidadeProxima(empresaID string, janelaDias int) ([]*ValidadeProximaItem, error)
}
