package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/application/usecase"
)

// EmpresaHandler trata perfil e troca de senha (restrito à conta dona).
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Perfil godoc
// @Summary      Perfil da empresa e da conta dona
// @Tags         empresa
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PerfilEmpresaResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/empresa/perfil [get]
func (h *EmpresaHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPerfil(GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AtualizarPerfil godoc
// @Summary      Editar perfil da empresa e da conta dona
// @Tags         empresa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AtualizarPerfilRequest  true  "Dados do perfil"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Failure      409   {object}  dto.ErroResponse
// @Router       /api/empresa/perfil [put]
func (h *EmpresaHandler) AtualizarPerfil(c *fiber.Ctx) error {
	var in dto.AtualizarPerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	if err := h.uc.AtualizarPerfil(c.UserContext(), GetEmpresaID(c), GetUserID(c), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "perfil atualizado com sucesso"})
}

// AlterarSenha godoc
// @Summary      Trocar a senha da conta logada
// @Tags         empresa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AlterarSenhaRequest  true  "Senha atual e nova"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Failure      404   {object}  dto.ErroResponse
// @Router       /api/empresa/senha [put]
func (h *EmpresaHandler) AlterarSenha(c *fiber.Ctx) error {
	var in dto.AlterarSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	if err := h.uc.AlterarSenha(GetUserID(c), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "senha alterada com sucesso"})
}
