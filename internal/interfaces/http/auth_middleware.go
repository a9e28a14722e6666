package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/pkg/jwt"
)

// Chaves em c.Locals preenchidas pelo middleware de auth.
const (
	LocalUserID    = "user_id"
	LocalEmpresaID = "empresa_id"
	LocalTipo      = "tipo"
)

// AuthMiddleware valida o Bearer Token JWT e extrai usuário, empresa e tipo
// para c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErroResponse{Erro: "token de autenticação requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErroResponse{Erro: "formato esperado: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErroResponse{Erro: "token vazio"})
		}
		userID, empresaID, tipo, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErroResponse{Erro: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmpresaID, empresaID)
		c.Locals(LocalTipo, tipo)
		return c.Next()
	}
}

// RequireTipoEmpresa restringe a rota à conta dona (tipo empresa).
// Usar depois de AuthMiddleware.
func RequireTipoEmpresa() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetTipo(c) != entity.TipoEmpresa {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErroResponse{Erro: "acesso restrito à conta da empresa"})
		}
		return c.Next()
	}
}

// GetUserID devolve o ID do usuário autenticado (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmpresaID devolve o ID da empresa do token (depois do middleware de auth).
func GetEmpresaID(c *fiber.Ctx) string {
	return localString(c, LocalEmpresaID)
}

// GetTipo devolve o tipo da conta (empresa ou funcionario).
func GetTipo(c *fiber.Ctx) string {
	return localString(c, LocalTipo)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
