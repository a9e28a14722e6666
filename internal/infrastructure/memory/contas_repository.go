package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var (
	_ repository.DepositoRepository  = (*DepositoRepo)(nil)
	_ repository.UsuarioRepository   = (*UsuarioRepo)(nil)
	_ repository.EmpresaRepository   = (*EmpresaRepo)(nil)
	_ repository.CategoriaRepository = (*CategoriaRepo)(nil)
)

// DepositoRepo implementação em memória de DepositoRepository.
type DepositoRepo struct {
	store *Store
}

func NewDepositoRepository(store *Store) *DepositoRepo {
	return &DepositoRepo{store: store}
}

func (r *DepositoRepo) Criar(d *entity.Deposito) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Status == "" {
		d.Status = entity.StatusAtivo
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	copia := *d
	r.store.Depositos[d.ID] = &copia
	return nil
}

func (r *DepositoRepo) BuscarPorID(id, empresaID string) (*entity.Deposito, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	d, ok := r.store.Depositos[id]
	if !ok || d.EmpresaID != empresaID {
		return nil, nil
	}
	copia := *d
	return &copia, nil
}

func (r *DepositoRepo) BuscarPorNome(empresaID, nome string) (*entity.Deposito, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, d := range r.store.Depositos {
		if d.EmpresaID == empresaID && d.Nome == nome && d.Status == entity.StatusAtivo {
			copia := *d
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *DepositoRepo) Atualizar(d *entity.Deposito) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	atual, ok := r.store.Depositos[d.ID]
	if !ok {
		return nil
	}
	atual.Nome = d.Nome
	atual.Descricao = d.Descricao
	atual.Endereco = d.Endereco
	return nil
}

func (r *DepositoRepo) Inativar(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if d, ok := r.store.Depositos[id]; ok {
		d.Status = entity.StatusInativo
	}
	return nil
}

func (r *DepositoRepo) ListarPorEmpresa(empresaID string) ([]*repository.DepositoComTotais, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*repository.DepositoComTotais
	for _, d := range r.store.Depositos {
		if d.EmpresaID != empresaID || d.Status != entity.StatusAtivo {
			continue
		}
		item := &repository.DepositoComTotais{Deposito: *d}
		for _, e := range r.store.Estoques {
			if e.DepositoID == d.ID {
				if e.Quantidade > 0 {
					item.TotalProdutos++
				}
				item.TotalItens += e.Quantidade
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// UsuarioRepo implementação em memória de UsuarioRepository.
type UsuarioRepo struct {
	store *Store
}

func NewUsuarioRepository(store *Store) *UsuarioRepo {
	return &UsuarioRepo{store: store}
}

func (r *UsuarioRepo) Criar(u *entity.Usuario) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	for _, outro := range r.store.Usuarios {
		if outro.Usuario == u.Usuario {
			return domain.ErrUsuarioJaExiste
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	copia := *u
	r.store.Usuarios[u.ID] = &copia
	return nil
}

func (r *UsuarioRepo) BuscarPorID(id string) (*entity.Usuario, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.Usuarios[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *UsuarioRepo) BuscarPorLogin(login string) (*entity.Usuario, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.Usuarios {
		if u.Usuario == login {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *UsuarioRepo) BuscarDono(empresaID string) (*entity.Usuario, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.Usuarios {
		if u.EmpresaID == empresaID && u.Tipo == entity.TipoEmpresa {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *UsuarioRepo) Atualizar(u *entity.Usuario) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	atual, ok := r.store.Usuarios[u.ID]
	if !ok {
		return nil
	}
	for _, outro := range r.store.Usuarios {
		if outro.ID != u.ID && outro.Usuario == u.Usuario {
			return domain.ErrUsuarioJaExiste
		}
	}
	atual.Usuario = u.Usuario
	atual.NomeCompleto = u.NomeCompleto
	atual.Email = u.Email
	return nil
}

func (r *UsuarioRepo) AtualizarStatus(id, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.Usuarios[id]; ok {
		u.Status = status
	}
	return nil
}

func (r *UsuarioRepo) AtualizarSenha(id, senhaHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.Usuarios[id]; ok {
		u.SenhaHash = senhaHash
	}
	return nil
}

func (r *UsuarioRepo) AtualizarUltimoLogin(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.Usuarios[id]; ok {
		agora := time.Now()
		u.UltimoLogin = &agora
	}
	return nil
}

func (r *UsuarioRepo) ListarFuncionarios(empresaID string) ([]*entity.Usuario, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Usuario
	for _, u := range r.store.Usuarios {
		if u.EmpresaID == empresaID && u.Tipo == entity.TipoFuncionario {
			copia := *u
			out = append(out, &copia)
		}
	}
	// Mais recentes primeiro, como a consulta SQL.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// EmpresaRepo implementação em memória de EmpresaRepository.
type EmpresaRepo struct {
	store *Store
}

func NewEmpresaRepository(store *Store) *EmpresaRepo {
	return &EmpresaRepo{store: store}
}

func (r *EmpresaRepo) Criar(e *entity.Empresa) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = entity.StatusAtivo
	}
	copia := *e
	r.store.Empresas[e.ID] = &copia
	return nil
}

func (r *EmpresaRepo) BuscarPorID(id string) (*entity.Empresa, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.Empresas[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (r *EmpresaRepo) Atualizar(e *entity.Empresa) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	atual, ok := r.store.Empresas[e.ID]
	if !ok {
		return nil
	}
	atual.Nome = e.Nome
	atual.CNPJ = e.CNPJ
	atual.Email = e.Email
	return nil
}

// CategoriaRepo implementação em memória de CategoriaRepository.
type CategoriaRepo struct {
	store *Store
}

func NewCategoriaRepository(store *Store) *CategoriaRepo {
	return &CategoriaRepo{store: store}
}

func (r *CategoriaRepo) Criar(c *entity.Categoria) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	copia := *c
	r.store.Categorias[c.ID] = &copia
	return nil
}
