package postgres

import (
	"context"
	"fmt"

	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
)

var _ repository.HistoriaRepository = (*HistoriaRepo)(nil)

// HistoriaRepo implementación del puerto HistoriaRepository sobre PostgreSQL.
// Las lecturas resuelven la empresa dueña con un JOIN a proyectos, de modo
// que la capa de aplicación pueda autorizar sin consultas adicionales.
type HistoriaRepo struct {
	q Querier
}

// NewHistoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistoriaRepository(q Querier) *HistoriaRepo {
	return &HistoriaRepo{q: q}
}

// Create persiste una historia nueva y asigna su ID.
func (r *HistoriaRepo) Create(ctx context.Context, h *entity.HistoriaUsuario) error {
	query := `
		INSERT INTO historias_usuario (proyecto_id, titulo, descripcion, estado, prioridad, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		h.ProyectoID, h.Titulo, h.Descripcion, h.Estado, h.Prioridad, h.FechaCreacion,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("insert historia: %w", err)
	}
	return nil
}

// GetByID obtiene una historia con su empresa dueña resuelta; nil si no existe.
func (r *HistoriaRepo) GetByID(ctx context.Context, id int) (*entity.HistoriaUsuario, error) {
	query := `
		SELECT h.id, h.proyecto_id, h.titulo, h.descripcion, h.estado, h.prioridad,
		       h.fecha_creacion, p.empresa_id
		FROM historias_usuario h
		JOIN proyectos p ON p.id = h.proyecto_id
		WHERE h.id = $1`
	var h entity.HistoriaUsuario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.ProyectoID, &h.Titulo, &h.Descripcion, &h.Estado, &h.Prioridad,
		&h.FechaCreacion, &h.EmpresaID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get historia: %w", err)
	}
	return &h, nil
}

// ListByProyecto devuelve las historias de un proyecto.
func (r *HistoriaRepo) ListByProyecto(ctx context.Context, proyectoID int) ([]*entity.HistoriaUsuario, error) {
	query := `
		SELECT h.id, h.proyecto_id, h.titulo, h.descripcion, h.estado, h.prioridad,
		       h.fecha_creacion, p.empresa_id
		FROM historias_usuario h
		JOIN proyectos p ON p.id = h.proyecto_id
		WHERE h.proyecto_id = $1
		ORDER BY h.id`
	rows, err := r.q.Query(ctx, query, proyectoID)
	if err != nil {
		return nil, fmt.Errorf("list historias: %w", err)
	}
	defer rows.Close()

	var list []*entity.HistoriaUsuario
	for rows.Next() {
		var h entity.HistoriaUsuario
		if err := rows.Scan(
			&h.ID, &h.ProyectoID, &h.Titulo, &h.Descripcion, &h.Estado, &h.Prioridad,
			&h.FechaCreacion, &h.EmpresaID,
		); err != nil {
			return nil, fmt.Errorf("scan historia: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update actualiza título, descripción, estado y prioridad de una historia.
func (r *HistoriaRepo) Update(ctx context.Context, h *entity.HistoriaUsuario) error {
	query := `
		UPDATE historias_usuario
		SET titulo = $2, descripcion = $3, estado = $4, prioridad = $5
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, h.ID, h.Titulo, h.Descripcion, h.Estado, h.Prioridad); err != nil {
		return fmt.Errorf("update historia: %w", err)
	}
	return nil
}

// Delete elimina una historia; la cascada arrastra sus tickets.
func (r *HistoriaRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM historias_usuario WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete historia: %w", err)
	}
	return nil
}
