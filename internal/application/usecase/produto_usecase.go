package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/application/ledger"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

// ProdutoUseCase cadastro, edição e exclusão (soft) de produtos.
// Toda mutação de quantidade passa pelo Ledger, na mesma transação das
// escritas de metadados: ou tudo confirma ou tudo desfaz.
type ProdutoUseCase struct {
	txRunner     ledger.TxRunner
	ledger       *ledger.Ledger
	produtoRepo  repository.ProdutoRepository
	depositoRepo repository.DepositoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	txRunner ledger.TxRunner,
	ldg *ledger.Ledger,
	produtoRepo repository.ProdutoRepository,
	depositoRepo repository.DepositoRepository,
) *ProdutoUseCase {
	return &ProdutoUseCase{
		txRunner:     txRunner,
		ledger:       ldg,
		produtoRepo:  produtoRepo,
		depositoRepo: depositoRepo,
	}
}

// Criar cadastra um produto e, se veio quantidade > 0, o estoque inicial com
// a movimentação de entrada. Produto, estoque e movimentação são gravados na
// mesma transação. Retorna o ID do produto criado.
func (uc *ProdutoUseCase) Criar(ctx context.Context, empresaID, usuarioID string, in dto.CriarProdutoRequest) (string, error) {
	if in.Nome == "" || in.DepositoID == "" {
		return "", domain.ErrInvalidInput
	}

	deposito, err := uc.depositoRepo.BuscarPorID(in.DepositoID, empresaID)
	if err != nil {
		return "", err
	}
	if deposito == nil {
		return "", domain.ErrNotFound
	}

	if in.Codigo != "" {
		existente, err := uc.produtoRepo.BuscarPorCodigo(empresaID, in.Codigo)
		if err != nil {
			return "", err
		}
		if existente != nil {
			return "", domain.ErrDuplicate
		}
	}

	quantidade := 0
	if in.Quantidade != nil {
		quantidade = *in.Quantidade
	}
	if quantidade < 0 {
		return "", domain.ErrQuantidadeInvalida
	}

	validade, err := parseValidade(in.Validade)
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	unidade := in.UnidadeMedida
	if unidade == "" {
		unidade = "UN"
	}
	// Sem preço de venda informado, vale o preço de custo.
	precoVenda := in.PrecoCusto
	if in.Preco != nil {
		precoVenda = *in.Preco
	}

	now := time.Now()
	produto := &entity.Produto{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		CategoriaID:   in.CategoriaID,
		Codigo:        in.Codigo,
		Nome:          in.Nome,
		Descricao:     in.Descricao,
		UnidadeMedida: unidade,
		PrecoCusto:    in.PrecoCusto,
		PrecoVenda:    precoVenda,
		EstoqueMinimo: in.EstoqueMin,
		Validade:      validade,
		Status:        entity.StatusAtivo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		estoqueRepo repository.EstoqueRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		if err := produtoRepo.Criar(produto); err != nil {
			return err
		}
		return uc.ledger.RegistrarEstoqueInicialTx(estoqueRepo, movRepo, produto.ID, in.DepositoID, usuarioID, quantidade)
	})
	if err != nil {
		return "", err
	}
	return produto.ID, nil
}

// Atualizar edita os metadados do produto e, quando quantidade + depósito
// vêm no corpo, ajusta o estoque via Ledger na mesma transação.
func (uc *ProdutoUseCase) Atualizar(ctx context.Context, empresaID, usuarioID, produtoID string, in dto.AtualizarProdutoRequest) error {
	if in.Nome == "" {
		return domain.ErrInvalidInput
	}

	produto, err := uc.produtoRepo.BuscarPorID(produtoID, empresaID)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}

	ajustarEstoque := in.Quantidade != nil && in.DepositoID != ""
	if ajustarEstoque {
		if *in.Quantidade < 0 {
			return domain.ErrQuantidadeInvalida
		}
		deposito, err := uc.depositoRepo.BuscarPorID(in.DepositoID, empresaID)
		if err != nil {
			return err
		}
		if deposito == nil {
			return domain.ErrNotFound
		}
	}

	validade, err := parseValidade(in.Validade)
	if err != nil {
		return domain.ErrInvalidInput
	}

	produto.Nome = in.Nome
	if in.Preco != nil {
		produto.PrecoVenda = *in.Preco
	}
	produto.Validade = validade
	produto.EstoqueMinimo = in.EstoqueMin
	produto.UpdatedAt = time.Now()

	return uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		estoqueRepo repository.EstoqueRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		if err := produtoRepo.Atualizar(produto); err != nil {
			return err
		}
		if !ajustarEstoque {
			return nil
		}
		return uc.ledger.DefinirQuantidadeTx(
			estoqueRepo, movRepo,
			produtoID, in.DepositoID, usuarioID,
			*in.Quantidade, entity.MotivoAjusteEdicao,
		)
	})
}

// Excluir marca o produto como inativo. A linha nunca é removida: as
// movimentações referenciam o produto para sempre.
func (uc *ProdutoUseCase) Excluir(empresaID, produtoID string) error {
	produto, err := uc.produtoRepo.BuscarPorID(produtoID, empresaID)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	return uc.produtoRepo.Inativar(produtoID)
}

// parseValidade converte a data AAAA-MM-DD do corpo. Vazio vira nil.
func parseValidade(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
