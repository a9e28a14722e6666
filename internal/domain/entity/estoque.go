package entity

import "time"

// Estoque é a quantidade atual de um produto em um depósito.
// Uma linha por par (produto, depósito); ausência de linha significa zero.
// Toda mutação de Quantidade passa pelo Ledger, que grava a Movimentacao
// correspondente na mesma transação.
type Estoque struct {
	ProdutoID           string
	DepositoID          string
	Quantidade          int
	QuantidadeReservada int
	UpdatedAt           time.Time
}
