package dto

// CriarDepositoRequest entrada para criar um depósito.
type CriarDepositoRequest struct {
	Nome      string `json:"nome" validate:"required,min=1,max=200"`
	Descricao string `json:"descricao"`
	Endereco  string `json:"endereco"`
}

// AtualizarDepositoRequest entrada para editar um depósito.
type AtualizarDepositoRequest struct {
	Nome      string `json:"nome" validate:"required,min=1,max=200"`
	Descricao string `json:"descricao"`
	Endereco  string `json:"endereco"`
}

// DepositoResponse linha da listagem de depósitos, com os agregados de estoque.
type DepositoResponse struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	Endereco      string `json:"endereco"`
	TotalProdutos int    `json:"total_produtos"`
	TotalItens    int    `json:"total_itens"`
}
