package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocket-estoque/api/internal/application/auth"
	"github.com/pocket-estoque/api/internal/application/ledger"
	"github.com/pocket-estoque/api/internal/application/report"
	"github.com/pocket-estoque/api/internal/application/usecase"
	"github.com/pocket-estoque/api/internal/infrastructure/memory"
	apphttp "github.com/pocket-estoque/api/internal/interfaces/http"
)

type apiFixture struct {
	app   *fiber.App
	store *memory.Store
}

// novaAPI monta a aplicação completa sobre os repositórios em memória.
func novaAPI(t *testing.T) *apiFixture {
	t.Helper()
	store := memory.NewStore()
	txRunner := memory.NewTxRunner(store)

	stockLedger := ledger.NewLedger(txRunner)
	produtoUC := usecase.NewProdutoUseCase(txRunner, stockLedger,
		memory.NewProdutoRepository(store), memory.NewDepositoRepository(store))
	depositoUC := usecase.NewDepositoUseCase(
		memory.NewDepositoRepository(store), memory.NewEstoqueRepository(store))
	empresaUC := usecase.NewEmpresaUseCase(txRunner,
		memory.NewEmpresaRepository(store), memory.NewUsuarioRepository(store))
	authUC := auth.NewAuthUseCase(txRunner,
		memory.NewUsuarioRepository(store), memory.NewEmpresaRepository(store),
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		EmpresaUC:  empresaUC,
		ProdutoUC:  produtoUC,
		DepositoUC: depositoUC,
		ReportUC:   report.NewReportUseCase(memory.NewReportRepository(store)),
		JWTSecret:  testJWTSecret,
	})
	return &apiFixture{app: app, store: store}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// cadastraELoga cadastra uma empresa e devolve o token da conta dona.
func (f *apiFixture) cadastraELoga(t *testing.T, usuario string) string {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/auth/cadastrar-empresa", "", map[string]any{
		"usuario": usuario, "senha": "senha123", "nome_empresa": "Loja " + usuario,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodPost, "/api/auth/login-empresa", "", map[string]any{
		"usuario": usuario, "senha": "senha123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// depositoPrincipal devolve o ID do depósito padrão criado no cadastro.
func (f *apiFixture) depositoPrincipal(t *testing.T) string {
	t.Helper()
	for id, d := range f.store.Depositos {
		if d.Nome == "Depósito Principal" {
			return id
		}
	}
	t.Fatal("depósito padrão não encontrado")
	return ""
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo de cadastro e login
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CadastroELogin(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")
	assert.NotEmpty(t, token)
}

func TestAPI_LoginSenhaErrada_Retorna401(t *testing.T) {
	f := novaAPI(t)
	f.cadastraELoga(t, "dona_maria")

	resp := f.do(t, http.MethodPost, "/api/auth/login-empresa", "", map[string]any{
		"usuario": "dona_maria", "senha": "errada",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_CadastroDuplicado_Retorna409(t *testing.T) {
	f := novaAPI(t)
	f.cadastraELoga(t, "dona_maria")

	resp := f.do(t, http.MethodPost, "/api/auth/cadastrar-empresa", "", map[string]any{
		"usuario": "dona_maria", "senha": "outra",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode(t, resp)
	assert.NotEmpty(t, body["erro"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Produtos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CriarProduto(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")
	depositoID := f.depositoPrincipal(t)

	resp := f.do(t, http.MethodPost, "/api/produtos", token, map[string]any{
		"nome": "Shampoo 300ml", "deposito_id": depositoID, "quantidade": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)

	assert.Equal(t, 10, f.store.Estoques[id+"|"+depositoID].Quantidade)
	assert.Len(t, f.store.Movimentacoes, 1)
}

func TestAPI_CriarProduto_SemToken_Retorna401(t *testing.T) {
	f := novaAPI(t)

	resp := f.do(t, http.MethodPost, "/api/produtos", "", map[string]any{"nome": "X"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_CriarProduto_SemNome_Retorna400(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")

	resp := f.do(t, http.MethodPost, "/api/produtos", token, map[string]any{
		"deposito_id": f.depositoPrincipal(t),
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_CriarProduto_QuantidadeNegativa_Retorna400(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")

	resp := f.do(t, http.MethodPost, "/api/produtos", token, map[string]any{
		"nome": "Creme", "deposito_id": f.depositoPrincipal(t), "quantidade": -2,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_AtualizarProduto_AjustaEstoque(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")
	depositoID := f.depositoPrincipal(t)

	resp := f.do(t, http.MethodPost, "/api/produtos", token, map[string]any{
		"nome": "Produto", "deposito_id": depositoID, "quantidade": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode(t, resp)["id"].(string)

	resp = f.do(t, http.MethodPut, "/api/produtos/"+id, token, map[string]any{
		"nome": "Produto", "deposito_id": depositoID, "quantidade": 3,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 3, f.store.Estoques[id+"|"+depositoID].Quantidade)
	require.Len(t, f.store.Movimentacoes, 2)
	assert.Equal(t, -7, f.store.Movimentacoes[1].Quantidade)
}

func TestAPI_CodigoDuplicado_Retorna400(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")
	depositoID := f.depositoPrincipal(t)

	corpo := map[string]any{"nome": "Café", "codigo": "X-1", "deposito_id": depositoID}
	resp := f.do(t, http.MethodPost, "/api/produtos", token, corpo)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodPost, "/api/produtos", token, corpo)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Produto de outra empresa não aparece nem pode ser alterado.
func TestAPI_ProdutoCrossTenant_Retorna404(t *testing.T) {
	f := novaAPI(t)
	tokenA := f.cadastraELoga(t, "dona_maria")
	depositoID := f.depositoPrincipal(t)

	resp := f.do(t, http.MethodPost, "/api/produtos", tokenA, map[string]any{
		"nome": "Segredo", "deposito_id": depositoID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode(t, resp)["id"].(string)

	tokenB := f.cadastraELoga(t, "seu_jose")
	resp = f.do(t, http.MethodPut, "/api/produtos/"+id, tokenB, map[string]any{"nome": "Invasor"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Depósitos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DepositoNomeDuplicado_Retorna400(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")

	resp := f.do(t, http.MethodPost, "/api/depositos", token, map[string]any{"nome": "Depósito Principal"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ExcluirDepositoComEstoque_Retorna400(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")
	depositoID := f.depositoPrincipal(t)

	resp := f.do(t, http.MethodPost, "/api/produtos", token, map[string]any{
		"nome": "Produto", "deposito_id": depositoID, "quantidade": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodDelete, "/api/depositos/"+depositoID, token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestão de funcionários
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FluxoAprovacaoFuncionario(t *testing.T) {
	f := novaAPI(t)
	tokenDona := f.cadastraELoga(t, "dona_maria")
	var empresaID string
	for id := range f.store.Empresas {
		empresaID = id
	}

	resp := f.do(t, http.MethodPost, "/api/auth/cadastrar-funcionario", "", map[string]any{
		"usuario": "joao", "senha": "senha123", "empresa_id": empresaID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodGet, "/api/auth/usuarios", tokenDona, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lista []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lista))
	resp.Body.Close()
	require.Len(t, lista, 1)
	funcionarioID := lista[0]["id"].(string)
	assert.Equal(t, "pendente", lista[0]["status"])

	resp = f.do(t, http.MethodPut, "/api/auth/usuarios/"+funcionarioID+"/status", tokenDona,
		map[string]any{"status": "aprovado"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, "aprovado", f.store.Usuarios[funcionarioID].Status)
}

// Funcionário não acessa a gestão de usuários.
func TestAPI_FuncionarioNaoListaUsuarios_Retorna403(t *testing.T) {
	f := novaAPI(t)
	f.cadastraELoga(t, "dona_maria")
	var empresaID string
	for id := range f.store.Empresas {
		empresaID = id
	}

	resp := f.do(t, http.MethodPost, "/api/auth/cadastrar-funcionario", "", map[string]any{
		"usuario": "joao", "senha": "senha123", "empresa_id": empresaID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodPost, "/api/auth/login-funcionario", "", map[string]any{
		"usuario": "joao", "senha": "senha123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tokenFuncionario := decode(t, resp)["token"].(string)

	resp = f.do(t, http.MethodGet, "/api/auth/usuarios", tokenFuncionario, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil da empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_PerfilETrocaDeSenha(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")

	resp := f.do(t, http.MethodGet, "/api/empresa/perfil", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	perfil := decode(t, resp)
	assert.Equal(t, "Loja dona_maria", perfil["empresa_nome"])

	resp = f.do(t, http.MethodPut, "/api/empresa/senha", token, map[string]any{
		"senhaAtual": "senha123", "novaSenha": "nova_senha_forte",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, http.MethodPost, "/api/auth/login-empresa", "", map[string]any{
		"usuario": "dona_maria", "senha": "nova_senha_forte",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_TrocaDeSenha_AtualErrada_Retorna400(t *testing.T) {
	f := novaAPI(t)
	token := f.cadastraELoga(t, "dona_maria")

	resp := f.do(t, http.MethodPut, "/api/empresa/senha", token, map[string]any{
		"senhaAtual": "errada", "novaSenha": "nova_senha_forte",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
