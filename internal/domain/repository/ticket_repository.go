package repository

import (
	"context"

	"github.com/nomascartera/proyectos-api/internal/domain/entity"
)

// TicketRepository define el puerto de persistencia para Ticket.
// Las lecturas devuelven la entidad con EmpresaID resuelto (JOIN historia →
// proyecto) para la verificación de propiedad.
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id int) (*entity.Ticket, error)
	ListByHistoria(ctx context.Context, historiaID int) ([]*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	UpdateEstado(ctx context.Context, id int, estado string) error
	Delete(ctx context.Context, id int) error
}
