package report

import (
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

// Janela padrão do relatório de validade próxima, em dias.
const JanelaValidadeDias = 60

// ReportUseCase consultas de leitura sobre produtos e estoque. Nenhuma
// mutação: lê as mesmas tabelas que o Ledger escreve.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// ListarProdutos lista os produtos ativos da empresa. Com depositoID, as
// quantidades são do depósito; sem, são o total somado entre depósitos.
func (uc *ReportUseCase) ListarProdutos(empresaID, depositoID string) ([]dto.ProdutoListagemResponse, error) {
	var (
		list []*repository.ProdutoListagem
		err  error
	)
	if depositoID != "" {
		list, err = uc.repo.ListarProdutosPorDeposito(empresaID, depositoID)
	} else {
		list, err = uc.repo.ListarProdutos(empresaID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoListagemResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProdutoListagemResponse{
			ID:                  p.ID,
			Codigo:              p.Codigo,
			Nome:                p.Nome,
			CategoriaNome:       p.CategoriaNome,
			UnidadeMedida:       p.UnidadeMedida,
			Preco:               p.PrecoVenda,
			EstoqueMin:          p.EstoqueMinimo,
			Validade:            p.Validade,
			Quantidade:          p.Quantidade,
			QuantidadeReservada: p.QuantidadeReservada,
			DepositoNome:        p.DepositoNome,
		})
	}
	return out, nil
}

// EstoqueBaixo lista produtos ativos com quantidade <= estoque mínimo.
// Com estoque mínimo zero, só aparece quem está zerado.
func (uc *ReportUseCase) EstoqueBaixo(empresaID string) ([]dto.EstoqueBaixoResponse, error) {
	list, err := uc.repo.EstoqueBaixo(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EstoqueBaixoResponse, 0, len(list))
	for _, item := range list {
		out = append(out, dto.EstoqueBaixoResponse{
			ID:           item.ProdutoID,
			Nome:         item.Nome,
			EstoqueMin:   item.EstoqueMinimo,
			Quantidade:   item.Quantidade,
			DepositoNome: item.DepositoNome,
		})
	}
	return out, nil
}

// ValidadeProxima lista produtos ativos vencendo nos próximos 60 dias,
// ordenados pela validade.
func (uc *ReportUseCase) ValidadeProxima(empresaID string) ([]dto.ValidadeProximaResponse, error) {
	list, err := uc.repo.ValidadeProxima(empresaID, JanelaValidadeDias)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ValidadeProximaResponse, 0, len(list))
	for _, item := range list {
		out = append(out, dto.ValidadeProximaResponse{
			ID:            item.ProdutoID,
			Nome:          item.Nome,
			Validade:      item.Validade,
			Quantidade:    item.Quantidade,
			DepositoNome:  item.DepositoNome,
			DiasRestantes: item.DiasRestantes,
		})
	}
	return out, nil
}
