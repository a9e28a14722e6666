package repository

import "github.com/pocket-estoque/api/internal/domain/entity"

// EmpresaRepository porta de persistência de empresas.
type EmpresaRepository interface {
	Criar(empresa *entity.Empresa) error
	BuscarPorID(id string) (*entity.Empresa, error)
	Atualizar(empresa *entity.Empresa) error
}

// CategoriaRepository porta de persistência de categorias.
type CategoriaRepository interface {
	Criar(categoria *entity.Categoria) error
}
