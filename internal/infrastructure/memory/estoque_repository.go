package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var (
	_ repository.EstoqueRepository      = (*EstoqueRepo)(nil)
	_ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)
)

// EstoqueRepo implementação em memória de EstoqueRepository.
type EstoqueRepo struct {
	store *Store
}

func NewEstoqueRepository(store *Store) *EstoqueRepo {
	return &EstoqueRepo{store: store}
}

func (r *EstoqueRepo) Buscar(produtoID, depositoID string) (*entity.Estoque, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.Estoques[chaveEstoque(produtoID, depositoID)]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

// BuscarParaUpdate em memória é igual a Buscar: o lock de linha só existe
// no banco real.
func (r *EstoqueRepo) BuscarParaUpdate(produtoID, depositoID string) (*entity.Estoque, error) {
	return r.Buscar(produtoID, depositoID)
}

func (r *EstoqueRepo) Upsert(e *entity.Estoque) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copia := *e
	copia.UpdatedAt = time.Now()
	r.store.Estoques[chaveEstoque(e.ProdutoID, e.DepositoID)] = &copia
	return nil
}

func (r *EstoqueRepo) TotalNoDeposito(depositoID string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	total := 0
	for _, e := range r.store.Estoques {
		if e.DepositoID == depositoID {
			total += e.Quantidade
		}
	}
	return total, nil
}

// MovimentacaoRepo implementação em memória de MovimentacaoRepository.
type MovimentacaoRepo struct {
	store *Store
}

func NewMovimentacaoRepository(store *Store) *MovimentacaoRepo {
	return &MovimentacaoRepo{store: store}
}

func (r *MovimentacaoRepo) Criar(mov *entity.Movimentacao) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	if mov.CreatedAt.IsZero() {
		mov.CreatedAt = time.Now()
	}
	copia := *mov
	r.store.Movimentacoes = append(r.store.Movimentacoes, &copia)
	return nil
}
