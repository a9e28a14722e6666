package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
	"github.com/pocket-estoque/api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cadastro e login de empresas e funcionários, mais o fluxo de
// aprovação de funcionários.
type AuthUseCase struct {
	txRunner    ContasTxRunner
	usuarioRepo repository.UsuarioRepository
	empresaRepo repository.EmpresaRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(txRunner ContasTxRunner, usuarioRepo repository.UsuarioRepository, empresaRepo repository.EmpresaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, usuarioRepo: usuarioRepo, empresaRepo: empresaRepo, jwtCfg: jwtCfg}
}

// CadastrarEmpresa cria, em uma transação, a empresa, a conta dona (tipo
// empresa, já aprovada), o depósito padrão e a categoria padrão.
// Retorna o ID da empresa criada.
func (uc *AuthUseCase) CadastrarEmpresa(ctx context.Context, in dto.CadastrarEmpresaRequest) (string, error) {
	if in.Usuario == "" || in.Senha == "" {
		return "", domain.ErrInvalidInput
	}
	existente, err := uc.usuarioRepo.BuscarPorLogin(in.Usuario)
	if err != nil {
		return "", err
	}
	if existente != nil {
		return "", domain.ErrUsuarioJaExiste
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	nomeEmpresa := in.NomeEmpresa
	if nomeEmpresa == "" {
		nomeEmpresa = "Empresa de " + in.Usuario
	}

	now := time.Now()
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nome:      nomeEmpresa,
		CNPJ:      in.CNPJ,
		Email:     in.Email,
		Status:    entity.StatusAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.RunContas(ctx, func(
		empresaRepo repository.EmpresaRepository,
		usuarioRepo repository.UsuarioRepository,
		depositoRepo repository.DepositoRepository,
		categoriaRepo repository.CategoriaRepository,
	) error {
		if err := empresaRepo.Criar(empresa); err != nil {
			return err
		}
		if err := usuarioRepo.Criar(&entity.Usuario{
			ID:           uuid.New().String(),
			EmpresaID:    empresa.ID,
			Usuario:      in.Usuario,
			SenhaHash:    string(hash),
			NomeCompleto: nomeEmpresa,
			Email:        in.Email,
			Tipo:         entity.TipoEmpresa,
			Status:       entity.StatusAprovado,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
		if err := depositoRepo.Criar(&entity.Deposito{
			ID:        uuid.New().String(),
			EmpresaID: empresa.ID,
			Nome:      "Depósito Principal",
			Descricao: "Depósito padrão da empresa",
			Status:    entity.StatusAtivo,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return err
		}
		return categoriaRepo.Criar(&entity.Categoria{
			ID:        uuid.New().String(),
			EmpresaID: empresa.ID,
			Nome:      "Geral",
			Descricao: "Categoria padrão para produtos",
			CreatedAt: now,
		})
	})
	if err != nil {
		return "", err
	}
	return empresa.ID, nil
}

// CadastrarFuncionario cria um funcionário com status pendente, aguardando
// aprovação do dono da conta.
func (uc *AuthUseCase) CadastrarFuncionario(in dto.CadastrarFuncionarioRequest) error {
	if in.Usuario == "" || in.Senha == "" {
		return domain.ErrInvalidInput
	}
	existente, err := uc.usuarioRepo.BuscarPorLogin(in.Usuario)
	if err != nil {
		return err
	}
	if existente != nil {
		return domain.ErrUsuarioJaExiste
	}
	empresa, err := uc.empresaRepo.BuscarPorID(in.EmpresaID)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return uc.usuarioRepo.Criar(&entity.Usuario{
		ID:        uuid.New().String(),
		EmpresaID: in.EmpresaID,
		Usuario:   in.Usuario,
		SenhaHash: string(hash),
		Tipo:      entity.TipoFuncionario,
		Status:    entity.StatusPendente,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// LoginEmpresa autentica a conta dona. Recusa contas não aprovadas.
func (uc *AuthUseCase) LoginEmpresa(in dto.LoginRequest) (*dto.LoginResponse, error) {
	return uc.login(in, entity.TipoEmpresa)
}

// LoginFuncionario autentica um funcionário. O status vai na resposta para o
// frontend avisar contas pendentes/bloqueadas.
func (uc *AuthUseCase) LoginFuncionario(in dto.LoginRequest) (*dto.LoginResponse, error) {
	return uc.login(in, entity.TipoFuncionario)
}

func (uc *AuthUseCase) login(in dto.LoginRequest, tipo string) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.BuscarPorLogin(in.Usuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil || usuario.Tipo != tipo {
		return nil, domain.ErrUsuarioNotFound
	}
	// Conta dona precisa estar aprovada para entrar; funcionário entra e o
	// frontend decide o que mostrar conforme o status.
	if tipo == entity.TipoEmpresa && usuario.Status != entity.StatusAprovado {
		return nil, domain.ErrUsuarioNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if err := uc.usuarioRepo.AtualizarUltimoLogin(usuario.ID); err != nil {
		return nil, err
	}

	empresa, err := uc.empresaRepo.BuscarPorID(usuario.EmpresaID)
	if err != nil {
		return nil, err
	}
	empresaNome := ""
	if empresa != nil {
		empresaNome = empresa.Nome
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.EmpresaID, usuario.Tipo, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	out := &dto.LoginResponse{
		Token:       token,
		Tipo:        usuario.Tipo,
		Usuario:     usuario.Usuario,
		EmpresaID:   usuario.EmpresaID,
		EmpresaNome: empresaNome,
	}
	if tipo == entity.TipoFuncionario {
		out.Status = usuario.Status
	}
	return out, nil
}

// ListarFuncionarios lista os funcionários da empresa (só a conta dona chama).
func (uc *AuthUseCase) ListarFuncionarios(empresaID string) ([]dto.UsuarioResponse, error) {
	list, err := uc.usuarioRepo.ListarFuncionarios(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UsuarioResponse{
			ID:           u.ID,
			Usuario:      u.Usuario,
			NomeCompleto: u.NomeCompleto,
			Tipo:         u.Tipo,
			Status:       u.Status,
			UltimoLogin:  u.UltimoLogin,
			CreatedAt:    u.CreatedAt,
		})
	}
	return out, nil
}

// AlterarStatusFuncionario muda o status de um funcionário da empresa
// (aprovado, pendente ou bloqueado).
func (uc *AuthUseCase) AlterarStatusFuncionario(empresaID, funcionarioID, status string) error {
	if status != entity.StatusAprovado && status != entity.StatusPendente && status != entity.StatusBloqueado {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.BuscarPorID(funcionarioID)
	if err != nil {
		return err
	}
	if usuario == nil || usuario.EmpresaID != empresaID || usuario.Tipo != entity.TipoFuncionario {
		return domain.ErrNotFound
	}
	return uc.usuarioRepo.AtualizarStatus(funcionarioID, status)
}
