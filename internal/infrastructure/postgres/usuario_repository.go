package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pocket-estoque/api/internal/domain"
	"github.com/pocket-estoque/api/internal/domain/entity"
	"github.com/pocket-estoque/api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação PostgreSQL de UsuarioRepository.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColunas = `id, empresa_id, usuario, senha_hash, nome_completo, email, tipo, status, ultimo_login, created_at, updated_at`

func (r *UsuarioRepo) Criar(u *entity.Usuario) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	query := `
		INSERT INTO usuarios (id, empresa_id, usuario, senha_hash, nome_completo, email, tipo, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.EmpresaID, u.Usuario, u.SenhaHash, u.NomeCompleto, u.Email, u.Tipo, u.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioJaExiste
		}
		return fmt.Errorf("create usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) BuscarPorID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColunas + ` FROM usuarios WHERE id = $1`
	return r.scanUm(r.q.QueryRow(context.Background(), query, id), "get usuario")
}

func (r *UsuarioRepo) BuscarPorLogin(login string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColunas + ` FROM usuarios WHERE usuario = $1`
	return r.scanUm(r.q.QueryRow(context.Background(), query, login), "get usuario por login")
}

// BuscarDono busca a conta tipo empresa (dono) de uma empresa.
func (r *UsuarioRepo) BuscarDono(empresaID string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColunas + ` FROM usuarios WHERE empresa_id = $1 AND tipo = 'empresa'`
	return r.scanUm(r.q.QueryRow(context.Background(), query, empresaID), "get dono")
}

func (r *UsuarioRepo) Atualizar(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET usuario = $1, nome_completo = $2, email = $3, updated_at = now()
		WHERE id = $4`
	_, err := r.q.Exec(context.Background(), query, u.Usuario, u.NomeCompleto, u.Email, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioJaExiste
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) AtualizarStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update status usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) AtualizarSenha(id, senhaHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET senha_hash = $1, updated_at = now() WHERE id = $2`, senhaHash, id)
	if err != nil {
		return fmt.Errorf("update senha usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) AtualizarUltimoLogin(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET ultimo_login = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update ultimo login: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) ListarFuncionarios(empresaID string) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColunas + ` FROM usuarios
		WHERE empresa_id = $1 AND tipo = 'funcionario'
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		err := rows.Scan(&u.ID, &u.EmpresaID, &u.Usuario, &u.SenhaHash, &u.NomeCompleto,
			&u.Email, &u.Tipo, &u.Status, &u.UltimoLogin, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (r *UsuarioRepo) scanUm(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.EmpresaID, &u.Usuario, &u.SenhaHash, &u.NomeCompleto,
		&u.Email, &u.Tipo, &u.Status, &u.UltimoLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
