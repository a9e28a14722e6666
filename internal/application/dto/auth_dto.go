package dto

import "time"

// CadastrarEmpresaRequest entrada do cadastro de empresa (cria a conta dona).
type CadastrarEmpresaRequest struct {
	Usuario     string `json:"usuario" validate:"required,min=1,max=100"`
	Senha       string `json:"senha" validate:"required,min=6"`
	NomeEmpresa string `json:"nome_empresa"`
	CNPJ        string `json:"cnpj"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// CadastrarFuncionarioRequest entrada do cadastro de funcionário (nasce pendente).
type CadastrarFuncionarioRequest struct {
	Usuario   string `json:"usuario" validate:"required,min=1,max=100"`
	Senha     string `json:"senha" validate:"required,min=6"`
	EmpresaID string `json:"empresa_id" validate:"required"`
}

// LoginRequest entrada de login (empresa ou funcionário).
type LoginRequest struct {
	Usuario string `json:"usuario" validate:"required"`
	Senha   string `json:"senha" validate:"required"`
}

// LoginResponse saída de login com o token JWT.
type LoginResponse struct {
	Token       string `json:"token"`
	Tipo        string `json:"tipo"`
	Usuario     string `json:"usuario"`
	EmpresaID   string `json:"empresa_id"`
	EmpresaNome string `json:"empresa_nome"`
	Status      string `json:"status,omitempty"` // só no login de funcionário
}

// UsuarioResponse saída de um usuário (sem hash de senha).
type UsuarioResponse struct {
	ID           string     `json:"id"`
	Usuario      string     `json:"usuario"`
	NomeCompleto string     `json:"nome_completo,omitempty"`
	Tipo         string     `json:"tipo"`
	Status       string     `json:"status"`
	UltimoLogin  *time.Time `json:"ultimo_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AlterarStatusRequest entrada para mudar o status de um funcionário.
type AlterarStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=aprovado pendente bloqueado"`
}
