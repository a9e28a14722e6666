package memory

import (
	"github.com/google/uuid"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação em memória de ProdutoRepository.
type ProdutoRepo struct {
	store *Store
}

func NewProdutoRepository(store *Store) *ProdutoRepo {
	return &ProdutoRepo{store: store}
}

func (r *ProdutoRepo) Criar(p *entity.Produto) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = entity.StatusAtivo
	}
	if p.Codigo != "" {
		for _, outro := range r.store.Produtos {
			if outro.EmpresaID == p.EmpresaID && outro.Codigo == p.Codigo && outro.Status == entity.StatusAtivo {
				return domain.ErrDuplicate
			}
		}
	}
	copia := *p
	r.store.Produtos[p.ID] = &copia
	return nil
}

func (r *ProdutoRepo) BuscarPorID(id, empresaID string) (*entity.Produto, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.Produtos[id]
	if !ok || p.EmpresaID != empresaID {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *ProdutoRepo) BuscarPorCodigo(empresaID, codigo string) (*entity.Produto, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.Produtos {
		if p.EmpresaID == empresaID && p.Codigo == codigo && p.Status == entity.StatusAtivo {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *ProdutoRepo) Atualizar(p *entity.Produto) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	atual, ok := r.store.Produtos[p.ID]
	if !ok {
		return nil
	}
	atual.Nome = p.Nome
	atual.PrecoVenda = p.PrecoVenda
	atual.Validade = p.Validade
	atual.EstoqueMinimo = p.EstoqueMinimo
	return nil
}

func (r *ProdutoRepo) Inativar(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.Produtos[id]; ok {
		p.Status = entity.StatusInativo
	}
	return nil
}
