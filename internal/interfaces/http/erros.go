package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/domain"
)

// responderErro mapeia erros de domínio para status HTTP e responde o corpo
// padrão {"erro": "..."}. Erros desconhecidos viram 500 sem vazar detalhes.
func responderErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrQuantidadeInvalida),
		errors.Is(err, domain.ErrSenhaIncorreta), errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrDepositoComEstoque):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErroResponse{Erro: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErroResponse{Erro: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUsuarioNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErroResponse{Erro: err.Error()})
	case errors.Is(err, domain.ErrUsuarioJaExiste):
		return c.Status(fiber.StatusConflict).JSON(dto.ErroResponse{Erro: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErroResponse{Erro: "erro interno do servidor"})
	}
}
