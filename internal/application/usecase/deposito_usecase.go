package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

// DepositoUseCase CRUD de depósitos. Nome único por empresa entre ativos;
// exclusão é soft e recusada enquanto houver estoque no depósito.
type DepositoUseCase struct {
	depositoRepo repository.DepositoRepository
	estoqueRepo  repository.EstoqueRepository
}

// NewDepositoUseCase constrói o caso de uso.
func NewDepositoUseCase(depositoRepo repository.DepositoRepository, estoqueRepo repository.EstoqueRepository) *DepositoUseCase {
	return &DepositoUseCase{depositoRepo: depositoRepo, estoqueRepo: estoqueRepo}
}

// Criar cadastra um depósito. Retorna o ID criado.
func (uc *DepositoUseCase) Criar(empresaID string, in dto.CriarDepositoRequest) (string, error) {
	if in.Nome == "" {
		return "", domain.ErrInvalidInput
	}
	existente, err := uc.depositoRepo.BuscarPorNome(empresaID, in.Nome)
	if err != nil {
		return "", err
	}
	if existente != nil {
		return "", domain.ErrDuplicate
	}
	now := time.Now()
	deposito := &entity.Deposito{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      in.Nome,
		Descricao: in.Descricao,
		Endereco:  in.Endereco,
		Status:    entity.StatusAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.depositoRepo.Criar(deposito); err != nil {
		return "", err
	}
	return deposito.ID, nil
}

// Atualizar edita um depósito, mantendo a unicidade do nome entre ativos.
func (uc *DepositoUseCase) Atualizar(empresaID, id string, in dto.AtualizarDepositoRequest) error {
	if in.Nome == "" {
		return domain.ErrInvalidInput
	}
	deposito, err := uc.depositoRepo.BuscarPorID(id, empresaID)
	if err != nil {
		return err
	}
	if deposito == nil {
		return domain.ErrNotFound
	}
	existente, err := uc.depositoRepo.BuscarPorNome(empresaID, in.Nome)
	if err != nil {
		return err
	}
	if existente != nil && existente.ID != id {
		return domain.ErrDuplicate
	}
	deposito.Nome = in.Nome
	deposito.Descricao = in.Descricao
	deposito.Endereco = in.Endereco
	deposito.UpdatedAt = time.Now()
	return uc.depositoRepo.Atualizar(deposito)
}

// Excluir marca o depósito como inativo. Recusa enquanto qualquer linha de
// estoque do depósito tiver quantidade > 0.
func (uc *DepositoUseCase) Excluir(empresaID, id string) error {
	deposito, err := uc.depositoRepo.BuscarPorID(id, empresaID)
	if err != nil {
		return err
	}
	if deposito == nil {
		return domain.ErrNotFound
	}
	total, err := uc.estoqueRepo.TotalNoDeposito(id)
	if err != nil {
		return err
	}
	if total > 0 {
		return domain.ErrDepositoComEstoque
	}
	return uc.depositoRepo.Inativar(id)
}

// Listar lista os depósitos ativos da empresa com os totais de estoque.
func (uc *DepositoUseCase) Listar(empresaID string) ([]dto.DepositoResponse, error) {
	list, err := uc.depositoRepo.ListarPorEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepositoResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.DepositoResponse{
			ID:            d.ID,
			Nome:          d.Nome,
			Descricao:     d.Descricao,
			Endereco:      d.Endereco,
			TotalProdutos: d.TotalProdutos,
			TotalItens:    d.TotalItens,
		})
	}
	return out, nil
}
