package memory

import (
	"sort"
	"time"

	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementação em memória de ReportRepository. Reproduz os
// predicados das consultas SQL (filtros, janelas e ordenação) para os testes
// cobrirem os mesmos limites que o banco aplica.
type ReportRepo struct {
	store *Store
}

func NewReportRepository(store *Store) *ReportRepo {
	return &ReportRepo{store: store}
}

func (r *ReportRepo) ListarProdutos(empresaID string) ([]*repository.ProdutoListagem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*repository.ProdutoListagem
	for _, p := range r.store.Produtos {
		if p.EmpresaID != empresaID || p.Status != entity.StatusAtivo {
			continue
		}
		item := r.linhaListagem(p)
		for _, e := range r.store.Estoques {
			if e.ProdutoID == p.ID {
				item.Quantidade += e.Quantidade
				item.QuantidadeReservada += e.QuantidadeReservada
			}
		}
		out = append(out, item)
	}
	ordenarPorNome(out)
	return out, nil
}

func (r *ReportRepo) ListarProdutosPorDeposito(empresaID, depositoID string) ([]*repository.ProdutoListagem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*repository.ProdutoListagem
	for _, p := range r.store.Produtos {
		if p.EmpresaID != empresaID || p.Status != entity.StatusAtivo {
			continue
		}
		item := r.linhaListagem(p)
		if e, ok := r.store.Estoques[chaveEstoque(p.ID, depositoID)]; ok {
			item.Quantidade = e.Quantidade
			item.QuantidadeReservada = e.QuantidadeReservada
			if d, ok := r.store.Depositos[depositoID]; ok {
				item.DepositoNome = d.Nome
			}
		}
		out = append(out, item)
	}
	ordenarPorNome(out)
	return out, nil
}

// EstoqueBaixo: linhas de estoque com quantidade <= estoque_minimo do
// produto. Com mínimo zero a linha só aparece quando a quantidade zera.
func (r *ReportRepo) EstoqueBaixo(empresaID string) ([]*repository.EstoqueBaixoItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*repository.EstoqueBaixoItem
	for _, e := range r.store.Estoques {
		p, ok := r.store.Produtos[e.ProdutoID]
		if !ok || p.EmpresaID != empresaID || p.Status != entity.StatusAtivo {
			continue
		}
		if e.Quantidade > p.EstoqueMinimo {
			continue
		}
		item := &repository.EstoqueBaixoItem{
			ProdutoID:     p.ID,
			Nome:          p.Nome,
			EstoqueMinimo: p.EstoqueMinimo,
			Quantidade:    e.Quantidade,
		}
		if d, ok := r.store.Depositos[e.DepositoID]; ok {
			item.DepositoNome = d.Nome
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantidade != out[j].Quantidade {
			return out[i].Quantidade < out[j].Quantidade
		}
		return out[i].Nome < out[j].Nome
	})
	return out, nil
}

// ValidadeProxima: produtos ativos com validade entre hoje e hoje+janelaDias.
// Vencidos ficam de fora, igual ao BETWEEN da consulta SQL.
func (r *ReportRepo) ValidadeProxima(empresaID string, janelaDias int) ([]*repository.ValidadeProximaItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	hoje := truncarDia(time.Now())
	limite := hoje.AddDate(0, 0, janelaDias)
	var out []*repository.ValidadeProximaItem
	for _, p := range r.store.Produtos {
		if p.EmpresaID != empresaID || p.Status != entity.StatusAtivo || p.Validade == nil {
			continue
		}
		validade := truncarDia(*p.Validade)
		if validade.Before(hoje) || validade.After(limite) {
			continue
		}
		item := &repository.ValidadeProximaItem{
			ProdutoID:     p.ID,
			Nome:          p.Nome,
			Validade:      validade,
			DiasRestantes: int(validade.Sub(hoje).Hours() / 24),
		}
		for _, e := range r.store.Estoques {
			if e.ProdutoID == p.ID {
				item.Quantidade += e.Quantidade
				if item.DepositoNome == "" {
					if d, ok := r.store.Depositos[e.DepositoID]; ok {
						item.DepositoNome = d.Nome
					}
				}
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Validade.Before(out[j].Validade) })
	return out, nil
}

func (r *ReportRepo) linhaListagem(p *entity.Produto) *repository.ProdutoListagem {
	item := &repository.ProdutoListagem{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		UnidadeMedida: p.UnidadeMedida,
		PrecoVenda:    p.PrecoVenda,
		EstoqueMinimo: p.EstoqueMinimo,
		Validade:      p.Validade,
	}
	if p.CategoriaID != nil {
		if c, ok := r.store.Categorias[*p.CategoriaID]; ok {
			item.CategoriaNome = c.Nome
		}
	}
	return item
}

func ordenarPorNome(itens []*repository.ProdutoListagem) {
	sort.Slice(itens, func(i, j int) bool { return itens[i].Nome < itens[j].Nome })
}

func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
