package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "entrada"
	MovimentacaoAjuste  = "ajuste"
	MovimentacaoSaida   = "saida" // reservado; nenhum fluxo atual gera saída
)

// Motivos padrão gravados pelo Ledger.
const (
	MotivoEstoqueInicial       = "Estoque inicial"
	MotivoAjusteEdicao         = "Ajuste via edição"
	MotivoEstoqueInicialEdicao = "Estoque inicial via edição"
)

// Movimentacao é o registro de auditoria de uma mutação de estoque.
// Append-only: nunca é atualizada nem excluída. Quantidade guarda o delta
// COM sinal (negativo em reduções); Anterior/Atual delimitam a mudança.
type Movimentacao struct {
	ID         string
	ProdutoID  string
	DepositoID string
	UsuarioID  string
	Tipo       string // entrada, ajuste, saida
	Quantidade int    // delta com sinal
	Anterior   int    // quantidade antes da mutação
	Atual      int    // quantidade depois da mutação
	Motivo     string
	CreatedAt  time.Time
}
