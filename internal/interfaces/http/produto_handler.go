package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pocket-estoque/api/internal/application/dto"
	"github.com/pocket-estoque/api/internal/application/report"
	"github.com/pocket-estoque/api/internal/application/usecase"
)

// ProdutoHandler trata as rotas de produto (protegidas).
type ProdutoHandler struct {
	uc     *usecase.ProdutoUseCase
	report *report.ReportUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase, reportUC *report.ReportUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, report: reportUC}
}

// Criar godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Failure      404   {object}  dto.ErroResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	id, err := h.uc.Criar(c.UserContext(), GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "produto cadastrado com sucesso", ID: id})
}

// Listar godoc
// @Summary      Listar produtos ativos (todos os depósitos)
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProdutoListagemResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.report.ListarProdutos(GetEmpresaID(c), "")
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ListarPorDeposito godoc
// @Summary      Listar produtos com o estoque de um depósito
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        deposito_id  path  string  true  "ID do depósito"
// @Success      200  {array}  dto.ProdutoListagemResponse
// @Router       /api/produtos/deposito/{deposito_id} [get]
func (h *ProdutoHandler) ListarPorDeposito(c *fiber.Ctx) error {
	depositoID := c.Params("deposito_id")
	if depositoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "deposito_id é obrigatório"})
	}
	out, err := h.report.ListarProdutos(GetEmpresaID(c), depositoID)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Editar produto (e opcionalmente ajustar o estoque)
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AtualizarProdutoRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Failure      404   {object}  dto.ErroResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AtualizarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	if err := h.uc.Atualizar(c.UserContext(), GetEmpresaID(c), GetUserID(c), id, in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "produto atualizado com sucesso"})
}

// Excluir godoc
// @Summary      Excluir produto (soft delete)
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErroResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Excluir(c *fiber.Ctx) error {
	if err := h.uc.Excluir(GetEmpresaID(c), c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "produto excluído com sucesso"})
}

// EstoqueBaixo godoc
// @Summary      Produtos com quantidade igual ou abaixo do estoque mínimo
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EstoqueBaixoResponse
// @Router       /api/produtos/estoque-baixo [get]
func (h *ProdutoHandler) EstoqueBaixo(c *fiber.Ctx) error {
	out, err := h.report.EstoqueBaixo(GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ValidadeProxima godoc
// @Summary      Produtos com validade nos próximos 60 dias
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ValidadeProximaResponse
// @Router       /api/produtos/validade-proxima [get]
func (h *ProdutoHandler) ValidadeProxima(c *fiber.Ctx) error {
	out, err := h.report.ValidadeProxima(GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Exportar godoc
// @Summary      Exportar os produtos ativos em planilha xlsx
// @Tags         produtos
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/produtos/exportar [get]
func (h *ProdutoHandler) Exportar(c *fiber.Ctx) error {
	conteudo, nome, err := h.report.ExportarProdutos(GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(conteudo)
}
