package repository

import "github.com/pocket-estoque/api/internal/domain/entity"

// UsuarioRepository porta de persistência de usuários.
type UsuarioRepository interface {
	Criar(usuario *entity.Usuario) error
	BuscarPorID(id string) (*entity.Usuario, error)
	// BuscarPorLogin busca pelo nome de login (único globalmente).
	BuscarPorLogin(login string) (*entity.Usuario, error)
	// BuscarDono busca a conta tipo empresa de uma empresa.
	BuscarDono(empresaID string) (*entity.Usuario, error)
	Atualizar(usuario *entity.Usuario) error
	AtualizarStatus(id, status string) error
	AtualizarSenha(id, senhaHash string) error
	AtualizarUltimoLogin(id string) error
	// ListarFuncionarios lista os usuários tipo funcionário da empresa.
	ListarFuncionarios(empresaID string) ([]*entity.Usuario, error)
}
