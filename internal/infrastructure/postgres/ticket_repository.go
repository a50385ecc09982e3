package postgres

import (
	"context"
	"fmt"

	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación del puerto TicketRepository sobre PostgreSQL.
// La empresa dueña se resuelve con el doble JOIN ticket -> historia -> proyecto.
type TicketRepo struct {
	q Querier
}

func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

// Create persiste un ticket nuevo y asigna su ID.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (historia_usuario_id, asunto, descripcion, estado, prioridad, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		t.HistoriaUsuarioID, t.Asunto, t.Descripcion, t.Estado, t.Prioridad, t.FechaCreacion,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket con su empresa dueña resuelta; nil si no existe.
func (r *TicketRepo) GetByID(ctx context.Context, id int) (*entity.Ticket, error) {
	query := `
		SELECT t.id, t.historia_usuario_id, t.asunto, t.descripcion, t.estado, t.prioridad,
		       t.fecha_creacion, p.empresa_id
		FROM tickets t
		JOIN historias_usuario h ON h.id = t.historia_usuario_id
		JOIN proyectos p ON p.id = h.proyecto_id
		WHERE t.id = $1`
	var t entity.Ticket
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.HistoriaUsuarioID, &t.Asunto, &t.Descripcion, &t.Estado, &t.Prioridad,
		&t.FechaCreacion, &t.EmpresaID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// ListByHistoria devuelve los tickets de una historia de usuario.
func (r *TicketRepo) ListByHistoria(ctx context.Context, historiaID int) ([]*entity.Ticket, error) {
	query := `
		SELECT t.id, t.historia_usuario_id, t.asunto, t.descripcion, t.estado, t.prioridad,
		       t.fecha_creacion, p.empresa_id
		FROM tickets t
		JOIN historias_usuario h ON h.id = t.historia_usuario_id
		JOIN proyectos p ON p.id = h.proyecto_id
		WHERE t.historia_usuario_id = $1
		ORDER BY t.id`
	rows, err := r.q.Query(ctx, query, historiaID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(
			&t.ID, &t.HistoriaUsuarioID, &t.Asunto, &t.Descripcion, &t.Estado, &t.Prioridad,
			&t.FechaCreacion, &t.EmpresaID,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza asunto, descripción, estado y prioridad de un ticket.
func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET asunto = $2, descripcion = $3, estado = $4, prioridad = $5
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, t.ID, t.Asunto, t.Descripcion, t.Estado, t.Prioridad); err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// UpdateEstado cambia únicamente el estado del ticket.
func (r *TicketRepo) UpdateEstado(ctx context.Context, id int, estado string) error {
	if _, err := r.q.Exec(ctx, `UPDATE tickets SET estado = $2 WHERE id = $1`, id, estado); err != nil {
		return fmt.Errorf("update estado ticket: %w", err)
	}
	return nil
}

// Delete elimina un ticket.
func (r *TicketRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
