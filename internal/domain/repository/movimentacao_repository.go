package repository

import "github.com/pocket-estoque/api/internal/domain/entity"

// MovimentacaoRepository porta de persistência da trilha de auditoria.
// Só há escrita: movimentações nunca são atualizadas nem excluídas e não
// são expostas por nenhuma rota da API.
type MovimentacaoRepository interface {
	Criar(mov *entity.Movimentacao) error
}
