package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pocket-estoque/api/internal/application/auth"
	"github.com/pocket-estoque/api/internal/application/dto"
)

// AuthHandler trata cadastro, login e gestão de funcionários.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// CadastrarEmpresa godoc
// @Summary      Cadastrar empresa e conta dona
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CadastrarEmpresaRequest  true  "Dados da empresa"
// @Success      201   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Failure      409   {object}  dto.ErroResponse
// @Router       /api/auth/cadastrar-empresa [post]
func (h *AuthHandler) CadastrarEmpresa(c *fiber.Ctx) error {
	var in dto.CadastrarEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	empresaID, err := h.uc.CadastrarEmpresa(c.UserContext(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "empresa cadastrada com sucesso", ID: empresaID})
}

// CadastrarFuncionario godoc
// @Summary      Cadastrar funcionário (nasce pendente de aprovação)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CadastrarFuncionarioRequest  true  "Dados do funcionário"
// @Success      201   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Failure      404   {object}  dto.ErroResponse
// @Failure      409   {object}  dto.ErroResponse
// @Router       /api/auth/cadastrar-funcionario [post]
func (h *AuthHandler) CadastrarFuncionario(c *fiber.Ctx) error {
	var in dto.CadastrarFuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	if err := h.uc.CadastrarFuncionario(in); err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "cadastro enviado para aprovação"})
}

// LoginEmpresa godoc
// @Summary      Login da conta dona
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErroResponse
// @Failure      404   {object}  dto.ErroResponse
// @Router       /api/auth/login-empresa [post]
func (h *AuthHandler) LoginEmpresa(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.LoginEmpresa(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// LoginFuncionario godoc
// @Summary      Login de funcionário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErroResponse
// @Failure      404   {object}  dto.ErroResponse
// @Router       /api/auth/login-funcionario [post]
func (h *AuthHandler) LoginFuncionario(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	out, err := h.uc.LoginFuncionario(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ListarUsuarios godoc
// @Summary      Listar funcionários da empresa
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErroResponse
// @Router       /api/auth/usuarios [get]
func (h *AuthHandler) ListarUsuarios(c *fiber.Ctx) error {
	out, err := h.uc.ListarFuncionarios(GetEmpresaID(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AlterarStatus godoc
// @Summary      Aprovar, bloquear ou pendenciar um funcionário
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do funcionário"
// @Param        body  body  dto.AlterarStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErroResponse
// @Failure      403   {object}  dto.ErroResponse
// @Failure      404   {object}  dto.ErroResponse
// @Router       /api/auth/usuarios/{id}/status [put]
func (h *AuthHandler) AlterarStatus(c *fiber.Ctx) error {
	var in dto.AlterarStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "corpo inválido"})
	}
	if err := h.uc.AlterarStatusFuncionario(GetEmpresaID(c), c.Params("id"), in.Status); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "status atualizado com sucesso"})
}
