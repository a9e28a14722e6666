package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocket-estoque/api/internal/application/auth"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/infrastructure/memory"
)

func novoAuthUC(store *memory.Store) *auth.AuthUseCase {
	return auth.NewAuthUseCase(
		memory.NewTxRunner(store),
		memory.NewUsuarioRepository(store),
		memory.NewEmpresaRepository(store),
		auth.JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "teste"},
	)
}

func cadastrarEmpresa(t *testing.T, uc *auth.AuthUseCase, usuario string) string {
	t.Helper()
	empresaID, err := uc.CadastrarEmpresa(context.Background(), dto.CadastrarEmpresaRequest{
		Usuario:     usuario,
		Senha:       "senha123",
		NomeEmpresa: "Mercadinho " + usuario,
	})
	require.NoError(t, err)
	return empresaID
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadastro de empresa
// ──────────────────────────────────────────────────────────────────────────────

// O cadastro cria empresa, conta dona aprovada, depósito padrão e categoria
// padrão de uma vez.
func TestCadastrarEmpresa_CriaContaCompleta(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)

	empresaID := cadastrarEmpresa(t, uc, "dona_maria")

	require.Len(t, store.Empresas, 1)
	assert.Equal(t, "Mercadinho dona_maria", store.Empresas[empresaID].Nome)

	require.Len(t, store.Usuarios, 1)
	for _, u := range store.Usuarios {
		assert.Equal(t, entity.TipoEmpresa, u.Tipo)
		assert.Equal(t, entity.StatusAprovado, u.Status, "a conta dona nasce aprovada")
		assert.NotEqual(t, "senha123", u.SenhaHash, "a senha nunca é gravada em texto plano")
	}

	require.Len(t, store.Depositos, 1)
	for _, d := range store.Depositos {
		assert.Equal(t, "Depósito Principal", d.Nome)
		assert.Equal(t, empresaID, d.EmpresaID)
	}

	require.Len(t, store.Categorias, 1)
	for _, c := range store.Categorias {
		assert.Equal(t, "Geral", c.Nome)
	}
}

func TestCadastrarEmpresa_LoginDuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	cadastrarEmpresa(t, uc, "dona_maria")

	_, err := uc.CadastrarEmpresa(context.Background(), dto.CadastrarEmpresaRequest{
		Usuario: "dona_maria", Senha: "outra_senha",
	})
	assert.ErrorIs(t, err, domain.ErrUsuarioJaExiste)
	assert.Len(t, store.Empresas, 1)
}

func TestCadastrarEmpresa_CamposObrigatorios(t *testing.T) {
	uc := novoAuthUC(memory.NewStore())

	_, err := uc.CadastrarEmpresa(context.Background(), dto.CadastrarEmpresaRequest{Senha: "senha123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CadastrarEmpresa(context.Background(), dto.CadastrarEmpresaRequest{Usuario: "alguem"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadastro e aprovação de funcionário
// ──────────────────────────────────────────────────────────────────────────────

func TestCadastrarFuncionario_NascePendente(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	empresaID := cadastrarEmpresa(t, uc, "dona_maria")

	err := uc.CadastrarFuncionario(dto.CadastrarFuncionarioRequest{
		Usuario: "joao", Senha: "senha123", EmpresaID: empresaID,
	})
	require.NoError(t, err)

	u, err := memory.NewUsuarioRepository(store).BuscarPorLogin("joao")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.TipoFuncionario, u.Tipo)
	assert.Equal(t, entity.StatusPendente, u.Status)
}

func TestCadastrarFuncionario_EmpresaInexistente(t *testing.T) {
	uc := novoAuthUC(memory.NewStore())

	err := uc.CadastrarFuncionario(dto.CadastrarFuncionarioRequest{
		Usuario: "joao", Senha: "senha123", EmpresaID: "nao-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAlterarStatusFuncionario(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	empresaID := cadastrarEmpresa(t, uc, "dona_maria")
	require.NoError(t, uc.CadastrarFuncionario(dto.CadastrarFuncionarioRequest{
		Usuario: "joao", Senha: "senha123", EmpresaID: empresaID,
	}))
	funcionario, _ := memory.NewUsuarioRepository(store).BuscarPorLogin("joao")

	require.NoError(t, uc.AlterarStatusFuncionario(empresaID, funcionario.ID, entity.StatusAprovado))
	assert.Equal(t, entity.StatusAprovado, store.Usuarios[funcionario.ID].Status)

	require.NoError(t, uc.AlterarStatusFuncionario(empresaID, funcionario.ID, entity.StatusBloqueado))
	assert.Equal(t, entity.StatusBloqueado, store.Usuarios[funcionario.ID].Status)
}

func TestAlterarStatusFuncionario_StatusInvalido(t *testing.T) {
	uc := novoAuthUC(memory.NewStore())
	err := uc.AlterarStatusFuncionario("e1", "f1", "demitido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Outra empresa não enxerga (nem altera) o funcionário.
func TestAlterarStatusFuncionario_CrossTenant(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	empresaID := cadastrarEmpresa(t, uc, "dona_maria")
	outraEmpresa := cadastrarEmpresa(t, uc, "seu_jose")
	require.NoError(t, uc.CadastrarFuncionario(dto.CadastrarFuncionarioRequest{
		Usuario: "joao", Senha: "senha123", EmpresaID: empresaID,
	}))
	funcionario, _ := memory.NewUsuarioRepository(store).BuscarPorLogin("joao")

	err := uc.AlterarStatusFuncionario(outraEmpresa, funcionario.ID, entity.StatusAprovado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, entity.StatusPendente, store.Usuarios[funcionario.ID].Status)
}

// A conta dona não passa pelo fluxo de aprovação.
func TestAlterarStatus_ContaDonaNaoEhFuncionario(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	empresaID := cadastrarEmpresa(t, uc, "dona_maria")
	dono, _ := memory.NewUsuarioRepository(store).BuscarDono(empresaID)

	err := uc.AlterarStatusFuncionario(empresaID, dono.ID, entity.StatusBloqueado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListarFuncionarios(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	empresaID := cadastrarEmpresa(t, uc, "dona_maria")
	require.NoError(t, uc.CadastrarFuncionario(dto.CadastrarFuncionarioRequest{
		Usuario: "joao", Senha: "senha123", EmpresaID: empresaID,
	}))
	require.NoError(t, uc.CadastrarFuncionario(dto.CadastrarFuncionarioRequest{
		Usuario: "ana", Senha: "senha123", EmpresaID: empresaID,
	}))

	out, err := uc.ListarFuncionarios(empresaID)
	require.NoError(t, err)
	require.Len(t, out, 2, "a conta dona fica fora da lista")
	assert.Equal(t, "ana", out[0].Usuario, "o cadastro mais recente vem primeiro")
	assert.Equal(t, "joao", out[1].Usuario)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginEmpresa(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	empresaID := cadastrarEmpresa(t, uc, "dona_maria")

	out, err := uc.LoginEmpresa(dto.LoginRequest{Usuario: "dona_maria", Senha: "senha123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.TipoEmpresa, out.Tipo)
	assert.Equal(t, empresaID, out.EmpresaID)
	assert.Equal(t, "Mercadinho dona_maria", out.EmpresaNome)
	assert.Empty(t, out.Status, "status só vai na resposta de funcionário")

	dono, _ := memory.NewUsuarioRepository(store).BuscarDono(empresaID)
	assert.NotNil(t, dono.UltimoLogin, "o último login deve ser registrado")
}

func TestLoginEmpresa_SenhaErrada(t *testing.T) {
	uc := novoAuthUC(memory.NewStore())
	cadastrarEmpresa(t, uc, "dona_maria")

	_, err := uc.LoginEmpresa(dto.LoginRequest{Usuario: "dona_maria", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginEmpresa_UsuarioInexistente(t *testing.T) {
	uc := novoAuthUC(memory.NewStore())
	_, err := uc.LoginEmpresa(dto.LoginRequest{Usuario: "ninguem", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}

// Funcionário não entra pela rota de empresa e vice-versa.
func TestLogin_TipoErrado(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	empresaID := cadastrarEmpresa(t, uc, "dona_maria")
	require.NoError(t, uc.CadastrarFuncionario(dto.CadastrarFuncionarioRequest{
		Usuario: "joao", Senha: "senha123", EmpresaID: empresaID,
	}))

	_, err := uc.LoginEmpresa(dto.LoginRequest{Usuario: "joao", Senha: "senha123"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)

	_, err = uc.LoginFuncionario(dto.LoginRequest{Usuario: "dona_maria", Senha: "senha123"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}

// Funcionário pendente entra, e a resposta carrega o status para o frontend
// decidir o que liberar.
func TestLoginFuncionario_PendenteRecebeStatus(t *testing.T) {
	store := memory.NewStore()
	uc := novoAuthUC(store)
	empresaID := cadastrarEmpresa(t, uc, "dona_maria")
	require.NoError(t, uc.CadastrarFuncionario(dto.CadastrarFuncionarioRequest{
		Usuario: "joao", Senha: "senha123", EmpresaID: empresaID,
	}))

	out, err := uc.LoginFuncionario(dto.LoginRequest{Usuario: "joao", Senha: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendente, out.Status)
	assert.NotEmpty(t, out.Token)
}
