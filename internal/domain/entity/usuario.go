package entity

import "time"

// Tipos de usuário.
const (
	TipoEmpresa     = "empresa"     // dono da conta, acesso total
	TipoFuncionario = "funcionario" // acesso restrito, passa por aprovação
)

// Status de funcionário no fluxo de aprovação.
const (
	StatusAprovado  = "aprovado"
	StatusPendente  = "pendente"
	StatusBloqueado = "bloqueado"
)

// Usuario representa uma conta de acesso, sempre vinculada a uma empresa.
// Usuários do tipo empresa nascem aprovados; funcionários nascem pendentes
// e dependem de aprovação do dono da conta.
type Usuario struct {
	ID           string
	EmpresaID    string
	Usuario      string // login, único globalmente
	SenhaHash    string // bcrypt; nunca em texto plano após persistir
	NomeCompleto string
	Email        string
	Tipo         string // empresa, funcionario
	Status       string // aprovado, pendente, bloqueado
	UltimoLogin  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
