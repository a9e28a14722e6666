// Package memory fornece implementações em memória dos repositórios,
// usadas nos testes de caso de uso e do Ledger no lugar do PostgreSQL.
package memory

import (
	"sync"

	"github.com/pocket-estoque/api/internal/domain/entity"
)

// Store guarda todas as tabelas em memória. Os repositórios compartilham o
// mesmo Store para os testes enxergarem escritas entre si.
type Store struct {
	mu sync.Mutex

	Produtos      map[string]*entity.Produto
	Depositos     map[string]*entity.Deposito
	Estoques      map[string]*entity.Estoque // chave produtoID + "|" + depositoID
	Movimentacoes []*entity.Movimentacao
	Empresas      map[string]*entity.Empresa
	Usuarios      map[string]*entity.Usuario
	Categorias    map[string]*entity.Categoria
}

func NewStore() *Store {
	return &Store{
		Produtos:   map[string]*entity.Produto{},
		Depositos:  map[string]*entity.Deposito{},
		Estoques:   map[string]*entity.Estoque{},
		Empresas:   map[string]*entity.Empresa{},
		Usuarios:   map[string]*entity.Usuario{},
		Categorias: map[string]*entity.Categoria{},
	}
}

func chaveEstoque(produtoID, depositoID string) string {
	return produtoID + "|" + depositoID
}
