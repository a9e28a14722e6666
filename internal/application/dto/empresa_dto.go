package dto

// PerfilEmpresaResponse perfil da empresa com os dados da conta dona.
type PerfilEmpresaResponse struct {
	EmpresaID    string `json:"empresa_id"`
	EmpresaNome  string `json:"empresa_nome"`
	CNPJ         string `json:"cnpj,omitempty"`
	EmpresaEmail string `json:"empresa_email,omitempty"`
	Status       string `json:"status"`
	Usuario      string `json:"usuario"`
	NomeCompleto string `json:"nome_completo,omitempty"`
	UsuarioEmail string `json:"usuario_email,omitempty"`
}

// AtualizarPerfilRequest entrada para editar o perfil da empresa. Atualiza a
// empresa e a conta dona na mesma transação.
type AtualizarPerfilRequest struct {
	NomeEmpresa string `json:"nome_empresa" validate:"required"`
	CNPJ        string `json:"cnpj"`
	Email       string `json:"email" validate:"required,email"`
	Usuario     string `json:"usuario" validate:"required"`
}

// AlterarSenhaRequest entrada para trocar a senha da conta logada.
type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual" validate:"required"`
	NovaSenha  string `json:"novaSenha" validate:"required,min=6"`
}
