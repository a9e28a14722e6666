package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pocket-estoque/api/internal/application/auth"
	"github.com/pocket-estoque/api/internal/application/report"
	"github.com/pocket-estoque/api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	EmpresaUC    *usecase.EmpresaUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	DepositoUC   *usecase.DepositoUseCase
	ReportUC     *report.ReportUseCase
	JWTSecret    string
	LoginLimiter *LoginRateLimiter
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; logins com limite por IP)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/cadastrar-empresa", authHandler.CadastrarEmpresa)
	authGroup.Post("/cadastrar-funcionario", authHandler.CadastrarFuncionario)
	if deps.LoginLimiter != nil {
		authGroup.Post("/login-empresa", deps.LoginLimiter.Middleware(), authHandler.LoginEmpresa)
		authGroup.Post("/login-funcionario", deps.LoginLimiter.Middleware(), authHandler.LoginFuncionario)
	} else {
		authGroup.Post("/login-empresa", authHandler.LoginEmpresa)
		authGroup.Post("/login-funcionario", authHandler.LoginFuncionario)
	}

	// Gestão de funcionários (só a conta dona)
	usuarios := authGroup.Group("/usuarios", AuthMiddleware(deps.JWTSecret), RequireTipoEmpresa())
	usuarios.Get("/", authHandler.ListarUsuarios)
	usuarios.Put("/:id/status", authHandler.AlterarStatus)

	// Perfil da empresa (só a conta dona)
	empresa := api.Group("/empresa", AuthMiddleware(deps.JWTSecret), RequireTipoEmpresa())
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresa.Get("/perfil", empresaHandler.Perfil)
	empresa.Put("/perfil", empresaHandler.AtualizarPerfil)
	empresa.Put("/senha", empresaHandler.AlterarSenha)

	// Rotas protegidas (qualquer conta autenticada)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos; rotas nomeadas antes de /:id para o match não colidir
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.ReportUC)
	produtos.Get("/estoque-baixo", produtoHandler.EstoqueBaixo)
	produtos.Get("/validade-proxima", produtoHandler.ValidadeProxima)
	produtos.Get("/exportar", produtoHandler.Exportar)
	produtos.Get("/deposito/:deposito_id", produtoHandler.ListarPorDeposito)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Delete("/:id", produtoHandler.Excluir)

	// Depósitos
	depositos := protected.Group("/depositos")
	depositoHandler := NewDepositoHandler(deps.DepositoUC)
	depositos.Get("/", depositoHandler.Listar)
	depositos.Post("/", depositoHandler.Criar)
	depositos.Put("/:id", depositoHandler.Atualizar)
	depositos.Delete("/:id", depositoHandler.Excluir)
}
