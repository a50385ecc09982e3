package postgres

import (
	"context"
	"fmt"

	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
)

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)

// ProyectoRepo implementación del puerto ProyectoRepository sobre PostgreSQL.
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

// Create persiste un proyecto nuevo y asigna su ID.
func (r *ProyectoRepo) Create(ctx context.Context, p *entity.Proyecto) error {
	query := `
		INSERT INTO proyectos (empresa_id, nombre, descripcion, fecha_registro)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.EmpresaID, p.Nombre, p.Descripcion, p.FechaRegistro).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert proyecto: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID; nil si no existe.
func (r *ProyectoRepo) GetByID(ctx context.Context, id int) (*entity.Proyecto, error) {
	query := `
		SELECT id, empresa_id, nombre, descripcion, fecha_registro
		FROM proyectos WHERE id = $1`
	var p entity.Proyecto
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.EmpresaID, &p.Nombre, &p.Descripcion, &p.FechaRegistro)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proyecto: %w", err)
	}
	return &p, nil
}

// ListByEmpresa devuelve los proyectos de una empresa.
func (r *ProyectoRepo) ListByEmpresa(ctx context.Context, empresaID int) ([]*entity.Proyecto, error) {
	query := `
		SELECT id, empresa_id, nombre, descripcion, fecha_registro
		FROM proyectos WHERE empresa_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Proyecto
	for rows.Next() {
		var p entity.Proyecto
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Nombre, &p.Descripcion, &p.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción de un proyecto.
func (r *ProyectoRepo) Update(ctx context.Context, p *entity.Proyecto) error {
	query := `UPDATE proyectos SET nombre = $2, descripcion = $3 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Descripcion); err != nil {
		return fmt.Errorf("update proyecto: %w", err)
	}
	return nil
}

// Delete elimina un proyecto; la cascada arrastra historias y tickets.
func (r *ProyectoRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM proyectos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete proyecto: %w", err)
	}
	return nil
}
