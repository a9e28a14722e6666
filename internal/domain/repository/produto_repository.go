package repository

import "github.com/pocket-estoque/api/internal/domain/entity"

// ProdutoRepository porta de persistência de produtos.
// Buscas retornam (nil, nil) quando não há linha; acesso cross-tenant é
// tratado como inexistente (as buscas filtram por empresa).
type ProdutoRepository interface {
	Criar(produto *entity.Produto) error
	BuscarPorID(id, empresaID string) (*entity.Produto, error)
	// BuscarPorCodigo busca por código interno entre produtos ativos da empresa.
	BuscarPorCodigo(empresaID, codigo string) (*entity.Produto, error)
	Atualizar(produto *entity.Produto) error
	// Inativar marca o produto como inativo (soft delete).
	Inativar(id string) error
}
