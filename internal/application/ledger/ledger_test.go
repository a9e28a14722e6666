package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocket-estoque/api/internal/application/ledger"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/infrastructure/memory"
)

const (
	testProdutoID  = "00000000-0000-0000-0000-00000000000a"
	testDepositoID = "00000000-0000-0000-0000-00000000000b"
	testUsuarioID  = "00000000-0000-0000-0000-00000000000c"
)

func novoLedger() (*ledger.Ledger, *memory.Store) {
	store := memory.NewStore()
	return ledger.NewLedger(memory.NewTxRunner(store)), store
}

// ──────────────────────────────────────────────────────────────────────────────
// DefinirQuantidade
// ──────────────────────────────────────────────────────────────────────────────

// Linha inexistente + quantidade > 0: primeiro abastecimento, movimentação
// de entrada partindo de zero.
func TestDefinirQuantidade_PrimeiroAbastecimento(t *testing.T) {
	l, store := novoLedger()

	err := l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 15, entity.MotivoAjusteEdicao)
	require.NoError(t, err)

	e := store.Estoques[testProdutoID+"|"+testDepositoID]
	require.NotNil(t, e, "a linha de estoque deve existir após o abastecimento")
	assert.Equal(t, 15, e.Quantidade)

	require.Len(t, store.Movimentacoes, 1)
	mov := store.Movimentacoes[0]
	assert.Equal(t, entity.MovimentacaoEntrada, mov.Tipo)
	assert.Equal(t, 15, mov.Quantidade)
	assert.Equal(t, 0, mov.Anterior)
	assert.Equal(t, 15, mov.Atual)
	assert.Equal(t, entity.MotivoEstoqueInicialEdicao, mov.Motivo)
	assert.Equal(t, testUsuarioID, mov.UsuarioID)
}

// Linha existente: ajuste com delta assinado (aumento).
func TestDefinirQuantidade_AjusteAumento(t *testing.T) {
	l, store := novoLedger()
	require.NoError(t, l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 10, ""))

	err := l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 25, entity.MotivoAjusteEdicao)
	require.NoError(t, err)

	assert.Equal(t, 25, store.Estoques[testProdutoID+"|"+testDepositoID].Quantidade)

	require.Len(t, store.Movimentacoes, 2)
	mov := store.Movimentacoes[1]
	assert.Equal(t, entity.MovimentacaoAjuste, mov.Tipo)
	assert.Equal(t, 15, mov.Quantidade, "delta deve ser nova menos anterior")
	assert.Equal(t, 10, mov.Anterior)
	assert.Equal(t, 25, mov.Atual)
	assert.Equal(t, entity.MotivoAjusteEdicao, mov.Motivo)
}

// Redução: o delta gravado é negativo, nunca o valor absoluto.
func TestDefinirQuantidade_AjusteReducao_DeltaNegativo(t *testing.T) {
	l, store := novoLedger()
	require.NoError(t, l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 20, ""))

	err := l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 8, entity.MotivoAjusteEdicao)
	require.NoError(t, err)

	require.Len(t, store.Movimentacoes, 2)
	mov := store.Movimentacoes[1]
	assert.Equal(t, entity.MovimentacaoAjuste, mov.Tipo)
	assert.Equal(t, -12, mov.Quantidade)
	assert.Equal(t, 20, mov.Anterior)
	assert.Equal(t, 8, mov.Atual)
}

// Ajuste para o mesmo valor ainda registra a movimentação (delta zero).
func TestDefinirQuantidade_MesmoValor_RegistraDeltaZero(t *testing.T) {
	l, store := novoLedger()
	require.NoError(t, l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 10, ""))

	require.NoError(t, l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 10, entity.MotivoAjusteEdicao))

	require.Len(t, store.Movimentacoes, 2)
	assert.Equal(t, 0, store.Movimentacoes[1].Quantidade)
}

// Zerar estoque existente é um ajuste normal (linha fica com zero).
func TestDefinirQuantidade_ZerarEstoqueExistente(t *testing.T) {
	l, store := novoLedger()
	require.NoError(t, l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 7, ""))

	require.NoError(t, l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 0, entity.MotivoAjusteEdicao))

	assert.Equal(t, 0, store.Estoques[testProdutoID+"|"+testDepositoID].Quantidade)
	require.Len(t, store.Movimentacoes, 2)
	assert.Equal(t, -7, store.Movimentacoes[1].Quantidade)
}

// Linha inexistente + quantidade zero: nada a fazer, nada a registrar.
func TestDefinirQuantidade_ZeroSemLinha_NoOp(t *testing.T) {
	l, store := novoLedger()

	require.NoError(t, l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 0, ""))

	assert.Empty(t, store.Estoques)
	assert.Empty(t, store.Movimentacoes)
}

// Quantidade negativa é rejeitada sem tocar em nada.
func TestDefinirQuantidade_NegativaRejeitada(t *testing.T) {
	l, store := novoLedger()
	require.NoError(t, l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, 10, ""))

	err := l.DefinirQuantidade(context.Background(), testProdutoID, testDepositoID, testUsuarioID, -3, "")
	assert.ErrorIs(t, err, domain.ErrQuantidadeInvalida)

	assert.Equal(t, 10, store.Estoques[testProdutoID+"|"+testDepositoID].Quantidade, "o estoque não deve mudar")
	assert.Len(t, store.Movimentacoes, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegistrarEstoqueInicialTx
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarEstoqueInicial_CriaLinhaEMovimentacao(t *testing.T) {
	l, store := novoLedger()
	estoqueRepo := memory.NewEstoqueRepository(store)
	movRepo := memory.NewMovimentacaoRepository(store)

	err := l.RegistrarEstoqueInicialTx(estoqueRepo, movRepo, testProdutoID, testDepositoID, testUsuarioID, 30)
	require.NoError(t, err)

	assert.Equal(t, 30, store.Estoques[testProdutoID+"|"+testDepositoID].Quantidade)
	require.Len(t, store.Movimentacoes, 1)
	mov := store.Movimentacoes[0]
	assert.Equal(t, entity.MovimentacaoEntrada, mov.Tipo)
	assert.Equal(t, entity.MotivoEstoqueInicial, mov.Motivo)
	assert.Equal(t, 0, mov.Anterior)
	assert.Equal(t, 30, mov.Atual)
}

func TestRegistrarEstoqueInicial_ZeroEhNoOp(t *testing.T) {
	l, store := novoLedger()
	estoqueRepo := memory.NewEstoqueRepository(store)
	movRepo := memory.NewMovimentacaoRepository(store)

	require.NoError(t, l.RegistrarEstoqueInicialTx(estoqueRepo, movRepo, testProdutoID, testDepositoID, testUsuarioID, 0))

	assert.Empty(t, store.Estoques)
	assert.Empty(t, store.Movimentacoes)
}

func TestRegistrarEstoqueInicial_NegativoRejeitado(t *testing.T) {
	l, store := novoLedger()
	estoqueRepo := memory.NewEstoqueRepository(store)
	movRepo := memory.NewMovimentacaoRepository(store)

	err := l.RegistrarEstoqueInicialTx(estoqueRepo, movRepo, testProdutoID, testDepositoID, testUsuarioID, -1)
	assert.ErrorIs(t, err, domain.ErrQuantidadeInvalida)
	assert.Empty(t, store.Estoques)
	assert.Empty(t, store.Movimentacoes)
}

// Cada mutação gera exatamente uma movimentação: sequência de ajustes deixa
// uma trilha cuja soma dos deltas reproduz a quantidade final.
func TestLedger_TrilhaReconstroiQuantidade(t *testing.T) {
	l, store := novoLedger()
	ctx := context.Background()

	for _, q := range []int{5, 12, 3, 9, 0, 40} {
		require.NoError(t, l.DefinirQuantidade(ctx, testProdutoID, testDepositoID, testUsuarioID, q, "inventário"))
	}

	soma := 0
	for _, mov := range store.Movimentacoes {
		soma += mov.Quantidade
	}
	assert.Equal(t, 40, soma, "a soma dos deltas deve reproduzir a quantidade final")
	assert.Equal(t, 40, store.Estoques[testProdutoID+"|"+testDepositoID].Quantidade)
}
