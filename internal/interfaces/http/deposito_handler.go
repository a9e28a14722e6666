package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/application/usecase"
)

// DepositoHandler trata as rotas de depósito (protegidas).
type DepositoHandler struct {
	uc *usecase.DepositoUseCase
}

func NewDepositoHandler(uc *usecase.DepositoUseCase) *DepositoHandler {
	return &DepositoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar depósitos ativos com totais de estoque
// @Tags         depositos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepositoResponse
// @Router       /api/depositos [get]
func (h *DepositoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Criar depósito
// @Tags         depositos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarDepositoRequest  true  "Dados do depósito"
// @Success      201   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Router       /api/depositos [post]
func (h *DepositoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarDepositoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	id, err := h.uc.Criar(GetEmpresaID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "depósito criado com sucesso", ID: id})
}

// Atualizar godoc
// @Summary      Editar depósito
// @Tags         depositos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do depósito"
// @Param        body  body  dto.AtualizarDepositoRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Failure      404   {object}  dto.ErroResponse
// @Router       /api/depositos/{id} [put]
func (h *DepositoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarDepositoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	if err := h.uc.Atualizar(GetEmpresaID(c), c.Params("id"), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "depósito atualizado com sucesso"})
}

// Excluir godoc
// @Summary      Excluir depósito (recusado enquanto houver estoque)
// @Tags         depositos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do depósito"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      400  {object}  dto.ErroResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/depositos/{id} [delete]
func (h *DepositoHandler) Excluir(c *fiber.Ctx) error {
	if err := h.uc.Excluir(GetEmpresaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "depósito excluído com sucesso"})
}
