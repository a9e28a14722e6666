package dto

// ErroResponse corpo de erro HTTP. Toda falha da API responde neste
// formato: {"erro": "..."}.
type ErroResponse struct {
	Erro string `json:"erro"`
}

// MensagemResponse corpo de sucesso das operações de escrita.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
	ID       string `json:"id,omitempty"`
}
