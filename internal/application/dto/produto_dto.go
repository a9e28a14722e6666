package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarProdutoRequest entrada para cadastrar um produto.
// Quantidade usa ponteiro para distinguir "omitido" de zero: nos dois casos
// nenhum estoque inicial é criado, mas valores negativos são rejeitados.
type CriarProdutoRequest struct {
	Codigo        string           `json:"codigo"`
	Nome          string           `json:"nome" validate:"required,min=1,max=200"`
	Descricao     string           `json:"descricao"`
	CategoriaID   *string          `json:"categoria_id"`
	UnidadeMedida string           `json:"unidade_medida"`
	PrecoCusto    decimal.Decimal  `json:"preco_custo"`
	Preco         *decimal.Decimal `json:"preco"`
	EstoqueMin    int              `json:"estoque_min" validate:"min=0"`
	Validade      string           `json:"validade"` // AAAA-MM-DD, opcional
	DepositoID    string           `json:"deposito_id" validate:"required"`
	Quantidade    *int             `json:"quantidade"`
}

// AtualizarProdutoRequest entrada para editar um produto. Quando Quantidade e
// DepositoID vêm juntos, o Ledger ajusta o estoque na mesma transação.
type AtualizarProdutoRequest struct {
	Nome       string           `json:"nome" validate:"required,min=1,max=200"`
	Preco      *decimal.Decimal `json:"preco"`
	Validade   string           `json:"validade"`
	EstoqueMin int              `json:"estoque_min" validate:"min=0"`
	DepositoID string           `json:"deposito_id"`
	Quantidade *int             `json:"quantidade"`
}

// ProdutoListagemResponse linha da listagem de produtos.
type ProdutoListagemResponse struct {
	ID                  string          `json:"id"`
	Codigo              string          `json:"codigo,omitempty"`
	Nome                string          `json:"nome"`
	CategoriaNome       string          `json:"categoria_nome,omitempty"`
	UnidadeMedida       string          `json:"unidade_medida"`
	Preco               decimal.Decimal `json:"preco"`
	EstoqueMin          int             `json:"estoque_min"`
	Validade            *time.Time      `json:"validade,omitempty"`
	Quantidade          int             `json:"quantidade"`
	QuantidadeReservada int             `json:"quantidade_reservada"`
	DepositoNome        string          `json:"deposito_nome,omitempty"`
}

// EstoqueBaixoResponse linha do relatório de estoque baixo.
type EstoqueBaixoResponse struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	EstoqueMin   int    `json:"estoque_min"`
	Quantidade   int    `json:"quantidade"`
	DepositoNome string `json:"deposito_nome"`
}

// ValidadeProximaResponse linha do relatório de validade próxima.
type ValidadeProximaResponse struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	Validade      time.Time `json:"validade"`
	Quantidade    int       `json:"quantidade"`
	DepositoNome  string    `json:"deposito_nome"`
	DiasRestantes int       `json:"dias_restantes"`
}
