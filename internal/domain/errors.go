package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUsuarioNotFound    = errors.New("usuário não encontrado")
	ErrUsuarioJaExiste    = errors.New("usuário já existe")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrQuantidadeInvalida = errors.New("quantidade inválida")
	ErrDepositoComEstoque = errors.New("depósito possui produtos em estoque")
	ErrSenhaIncorreta     = errors.New("senha incorreta")
)
