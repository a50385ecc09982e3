package postgres

import (
	"context"
	"fmt"

	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario nuevo y asigna su ID.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (empresa_id, nombre, email, password_hash, rol, activo, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		u.EmpresaID, u.Nombre, u.Email, u.PasswordHash, u.Rol, u.Activo, u.FechaRegistro,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	return r.getOne(ctx, `
		SELECT id, empresa_id, nombre, email, password_hash, rol, activo, fecha_registro
		FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.getOne(ctx, `
		SELECT id, empresa_id, nombre, email, password_hash, rol, activo, fecha_registro
		FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) getOne(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.EmpresaID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Activo, &u.FechaRegistro,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
