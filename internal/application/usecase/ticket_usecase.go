package usecase

import (
	"context"
	"time"

	"github.com/nomascartera/proyectos-api/internal/application/dto"
	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
	"github.com/nomascartera/proyectos-api/internal/domain/tenant"
)

// TicketUseCase CRUD de tickets. La propiedad se verifica por la cadena
// completa ticket → historia → proyecto → empresa; todo acceso ajeno
// responde ErrNotFound con independencia de que el ticket exista.
type TicketUseCase struct {
	tickets   repository.TicketRepository
	historias repository.HistoriaRepository
	tx        TxRunner
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(tickets repository.TicketRepository, historias repository.HistoriaRepository, tx TxRunner) *TicketUseCase {
	return &TicketUseCase{tickets: tickets, historias: historias, tx: tx}
}

// Create crea un ticket bajo una historia propia.
func (uc *TicketUseCase) Create(ctx context.Context, actor tenant.Actor, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.Asunto == "" || in.HistoriaUsuarioID == 0 {
		return nil, domain.ErrInvalidInput
	}
	estado, err := normalizarEstadoTicket(in.Estado)
	if err != nil {
		return nil, err
	}
	prioridad, err := normalizarPrioridad(in.Prioridad)
	if err != nil {
		return nil, err
	}
	historia, err := uc.historias.GetByID(ctx, in.HistoriaUsuarioID)
	if err != nil {
		return nil, err
	}
	if !tenant.OwnsHistoria(actor, historia) {
		return nil, domain.ErrNotFound
	}
	ticket := &entity.Ticket{
		HistoriaUsuarioID: in.HistoriaUsuarioID,
		Asunto:            in.Asunto,
		Descripcion:       in.Descripcion,
		Estado:            estado,
		Prioridad:         prioridad,
		FechaCreacion:     time.Now(),
		EmpresaID:         historia.EmpresaID,
	}
	if err := uc.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// ListByHistoria lista los tickets de una historia propia.
func (uc *TicketUseCase) ListByHistoria(ctx context.Context, actor tenant.Actor, historiaID int) ([]dto.TicketResponse, error) {
	historia, err := uc.historias.GetByID(ctx, historiaID)
	if err != nil {
		return nil, err
	}
	if !tenant.OwnsHistoria(actor, historia) {
		return nil, domain.ErrNotFound
	}
	tickets, err := uc.tickets.ListByHistoria(ctx, historiaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, *toTicketResponse(t))
	}
	return out, nil
}

// GetByID devuelve un ticket propio; ErrNotFound si no existe o es ajeno.
func (uc *TicketUseCase) GetByID(ctx context.Context, actor tenant.Actor, id int) (*dto.TicketResponse, error) {
	ticket, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tenant.OwnsTicket(actor, ticket) {
		return nil, domain.ErrNotFound
	}
	return toTicketResponse(ticket), nil
}

// Update reemplaza asunto, descripción, estado y prioridad de un ticket
// propio dentro de una transacción.
func (uc *TicketUseCase) Update(ctx context.Context, actor tenant.Actor, id int, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if in.Asunto == "" {
		return nil, domain.ErrInvalidInput
	}
	estado, err := normalizarEstadoTicket(in.Estado)
	if err != nil {
		return nil, err
	}
	prioridad, err := normalizarPrioridad(in.Prioridad)
	if err != nil {
		return nil, err
	}
	var out *dto.TicketResponse
	err = uc.tx.Run(ctx, func(_ repository.ProyectoRepository, _ repository.HistoriaRepository, tickets repository.TicketRepository) error {
		ticket, err := tickets.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !tenant.OwnsTicket(actor, ticket) {
			return domain.ErrNotFound
		}
		ticket.Asunto = in.Asunto
		ticket.Descripcion = in.Descripcion
		ticket.Estado = estado
		ticket.Prioridad = prioridad
		if err := tickets.Update(ctx, ticket); err != nil {
			return err
		}
		out = toTicketResponse(ticket)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateEstado cambia únicamente el estado de un ticket propio; asunto,
// descripción y prioridad quedan intactos.
func (uc *TicketUseCase) UpdateEstado(ctx context.Context, actor tenant.Actor, id int, in dto.TicketEstadoUpdateRequest) (*dto.TicketResponse, error) {
	if in.Estado == "" || !entity.EstadoTicketValido(in.Estado) {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.TicketResponse
	err := uc.tx.Run(ctx, func(_ repository.ProyectoRepository, _ repository.HistoriaRepository, tickets repository.TicketRepository) error {
		ticket, err := tickets.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !tenant.OwnsTicket(actor, ticket) {
			return domain.ErrNotFound
		}
		if err := tickets.UpdateEstado(ctx, ticket.ID, in.Estado); err != nil {
			return err
		}
		ticket.Estado = in.Estado
		out = toTicketResponse(ticket)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un ticket propio.
func (uc *TicketUseCase) Delete(ctx context.Context, actor tenant.Actor, id int) error {
	return uc.tx.Run(ctx, func(_ repository.ProyectoRepository, _ repository.HistoriaRepository, tickets repository.TicketRepository) error {
		ticket, err := tickets.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !tenant.OwnsTicket(actor, ticket) {
			return domain.ErrNotFound
		}
		return tickets.Delete(ctx, ticket.ID)
	})
}

func normalizarEstadoTicket(s string) (string, error) {
	if s == "" {
		return entity.TicketEstadoAbierto, nil
	}
	if !entity.EstadoTicketValido(s) {
		return "", domain.ErrInvalidInput
	}
	return s, nil
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:            t.ID,
		Asunto:        t.Asunto,
		Descripcion:   t.Descripcion,
		Estado:        t.Estado,
		Prioridad:     t.Prioridad,
		FechaCreacion: t.FechaCreacion,
	}
}
