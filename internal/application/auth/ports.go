package auth

import (
	"context"

	"github.com/pocket-estoque/api/internal/domain/repository"
)

// ContasTxRunner executa uma função dentro de uma transação com os
// repositórios de contas atados a ela. O cadastro de empresa cria empresa,
// conta dona, depósito padrão e categoria padrão de uma vez só.
type ContasTxRunner interface {
	RunContas(ctx context.Context, fn func(
		empresaRepo repository.EmpresaRepository,
		usuarioRepo repository.UsuarioRepository,
		depositoRepo repository.DepositoRepository,
		categoriaRepo repository.CategoriaRepository,
	) error) error
}
