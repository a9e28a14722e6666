package usecase

import (
	"context"
	"time"

	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// ContasTxRunner executa uma função dentro de uma transação com os
// repositórios de contas atados a ela. A edição de perfil atualiza empresa e
// conta dona juntas.
type ContasTxRunner interface {
	RunContas(ctx context.Context, fn func(
		empresaRepo repository.EmpresaRepository,
		usuarioRepo repository.UsuarioRepository,
		depositoRepo repository.DepositoRepository,
		categoriaRepo repository.CategoriaRepository,
	) error) error
}

// EmpresaUseCase perfil da empresa e troca de senha da conta logada.
type EmpresaUseCase struct {
	txRunner    ContasTxRunner
	empresaRepo repository.EmpresaRepository
	usuarioRepo repository.UsuarioRepository
}

// NewEmpresaUseCase constrói o caso de uso.
func NewEmpresaUseCase(txRunner ContasTxRunner, empresaRepo repository.EmpresaRepository, usuarioRepo repository.UsuarioRepository) *EmpresaUseCase {
	return &EmpresaUseCase{txRunner: txRunner, empresaRepo: empresaRepo, usuarioRepo: usuarioRepo}
}

// BuscarPerfil retorna os dados da empresa junto com a conta dona.
func (uc *EmpresaUseCase) BuscarPerfil(empresaID string) (*dto.PerfilEmpresaResponse, error) {
	empresa, err := uc.empresaRepo.BuscarPorID(empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	dono, err := uc.usuarioRepo.BuscarDono(empresaID)
	if err != nil {
		return nil, err
	}
	if dono == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PerfilEmpresaResponse{
		EmpresaID:    empresa.ID,
		EmpresaNome:  empresa.Nome,
		CNPJ:         empresa.CNPJ,
		EmpresaEmail: empresa.Email,
		Status:       empresa.Status,
		Usuario:      dono.Usuario,
		NomeCompleto: dono.NomeCompleto,
		UsuarioEmail: dono.Email,
	}, nil
}

// AtualizarPerfil edita empresa e conta dona na mesma transação. O novo login
// precisa estar livre (fora a própria conta).
func (uc *EmpresaUseCase) AtualizarPerfil(ctx context.Context, empresaID, usuarioID string, in dto.AtualizarPerfilRequest) error {
	if in.NomeEmpresa == "" || in.Email == "" || in.Usuario == "" {
		return domain.ErrInvalidInput
	}
	existente, err := uc.usuarioRepo.BuscarPorLogin(in.Usuario)
	if err != nil {
		return err
	}
	if existente != nil && existente.ID != usuarioID {
		return domain.ErrUsuarioJaExiste
	}

	empresa, err := uc.empresaRepo.BuscarPorID(empresaID)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNotFound
	}
	usuario, err := uc.usuarioRepo.BuscarPorID(usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	empresa.Nome = in.NomeEmpresa
	empresa.CNPJ = in.CNPJ
	empresa.Email = in.Email
	empresa.UpdatedAt = now

	usuario.Usuario = in.Usuario
	usuario.NomeCompleto = in.NomeEmpresa
	usuario.Email = in.Email
	usuario.UpdatedAt = now

	return uc.txRunner.RunContas(ctx, func(
		empresaRepo repository.EmpresaRepository,
		usuarioRepo repository.UsuarioRepository,
		_ repository.DepositoRepository,
		_ repository.CategoriaRepository,
	) error {
		if err := empresaRepo.Atualizar(empresa); err != nil {
			return err
		}
		return usuarioRepo.Atualizar(usuario)
	})
}

// AlterarSenha troca a senha da conta logada após conferir a senha atual.
func (uc *EmpresaUseCase) AlterarSenha(usuarioID string, in dto.AlterarSenhaRequest) error {
	if in.SenhaAtual == "" || in.NovaSenha == "" {
		return domain.ErrInvalidInput
	}
	if len(in.NovaSenha) < 6 {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.BuscarPorID(usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUsuarioNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.SenhaAtual)); err != nil {
		return domain.ErrSenhaIncorreta
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.AtualizarSenha(usuarioID, string(hash))
}
