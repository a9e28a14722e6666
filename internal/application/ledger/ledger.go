package ledger

import (
	"context"
	"time"

	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

// Ledger é a única autoridade sobre estoque.quantidade: toda mutação bloqueia
// a linha (SELECT ... FOR UPDATE), grava a nova quantidade e registra
// exatamente uma movimentação com anterior/atual delimitando a mudança, tudo
// na mesma transação.
//
// Quantidades negativas são rejeitadas com ErrQuantidadeInvalida; o delta
// gravado na movimentação carrega sinal (negativo em reduções).
type Ledger struct {
	txRunner TxRunner
}

// NewLedger constrói o ledger.
func NewLedger(txRunner TxRunner) *Ledger {
	return &Ledger{txRunner: txRunner}
}

// DefinirQuantidade ajusta o estoque de (produto, depósito) para novaQtd em
// uma transação própria. Para compor com outras escritas na mesma transação,
// usar DefinirQuantidadeTx dentro de um TxRunner.Run do chamador.
func (l *Ledger) DefinirQuantidade(ctx context.Context, produtoID, depositoID, usuarioID string, novaQtd int, motivo string) error {
	return l.txRunner.Run(ctx, func(
		_ repository.ProdutoRepository,
		estoqueRepo repository.EstoqueRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		return l.DefinirQuantidadeTx(estoqueRepo, movRepo, produtoID, depositoID, usuarioID, novaQtd, motivo)
	})
}

// DefinirQuantidadeTx executa o ajuste com repositórios já atados à transação
// do chamador.
//
// Linha existente: bloqueia, grava quantidade = novaQtd e movimentação de
// ajuste com delta assinado. Linha ausente: primeiro abastecimento, cria a
// linha e grava movimentação de entrada partindo de zero (novaQtd == 0 sem
// linha prévia é no-op: nada a registrar).
func (l *Ledger) DefinirQuantidadeTx(
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentacaoRepository,
	produtoID, depositoID, usuarioID string,
	novaQtd int, motivo string,
) error {
	if novaQtd < 0 {
		return domain.ErrQuantidadeInvalida
	}

	atual, err := estoqueRepo.BuscarParaUpdate(produtoID, depositoID)
	if err != nil {
		return err
	}

	now := time.Now()

	if atual == nil {
		if novaQtd == 0 {
			return nil
		}
		if err := estoqueRepo.Upsert(&entity.Estoque{
			ProdutoID:  produtoID,
			DepositoID: depositoID,
			Quantidade: novaQtd,
			UpdatedAt:  now,
		}); err != nil {
			return err
		}
		return movRepo.Criar(&entity.Movimentacao{
			ProdutoID:  produtoID,
			DepositoID: depositoID,
			UsuarioID:  usuarioID,
			Tipo:       entity.MovimentacaoEntrada,
			Quantidade: novaQtd,
			Anterior:   0,
			Atual:      novaQtd,
			Motivo:     entity.MotivoEstoqueInicialEdicao,
			CreatedAt:  now,
		})
	}

	anterior := atual.Quantidade
	atual.Quantidade = novaQtd
	atual.UpdatedAt = now
	if err := estoqueRepo.Upsert(atual); err != nil {
		return err
	}
	return movRepo.Criar(&entity.Movimentacao{
		ProdutoID:  produtoID,
		DepositoID: depositoID,
		UsuarioID:  usuarioID,
		Tipo:       entity.MovimentacaoAjuste,
		Quantidade: novaQtd - anterior,
		Anterior:   anterior,
		Atual:      novaQtd,
		Motivo:     motivo,
		CreatedAt:  now,
	})
}

// RegistrarEstoqueInicialTx grava o primeiro abastecimento de um produto
// recém-criado, com repositórios atados à transação do cadastro.
// Quantidade zero é no-op (nenhuma linha de estoque nem movimentação);
// negativa é rejeitada.
func (l *Ledger) RegistrarEstoqueInicialTx(
	estoqueRepo repository.EstoqueRepository,
	movRepo repository.MovimentacaoRepository,
	produtoID, depositoID, usuarioID string,
	quantidade int,
) error {
	if quantidade < 0 {
		return domain.ErrQuantidadeInvalida
	}
	if quantidade == 0 {
		return nil
	}

	now := time.Now()
	if err := estoqueRepo.Upsert(&entity.Estoque{
		ProdutoID:  produtoID,
		DepositoID: depositoID,
		Quantidade: quantidade,
		UpdatedAt:  now,
	}); err != nil {
		return err
	}
	return movRepo.Criar(&entity.Movimentacao{
		ProdutoID:  produtoID,
		DepositoID: depositoID,
		UsuarioID:  usuarioID,
		Tipo:       entity.MovimentacaoEntrada,
		Quantidade: quantidade,
		Anterior:   0,
		Atual:      quantidade,
		Motivo:     entity.MotivoEstoqueInicial,
		CreatedAt:  now,
	})
}
