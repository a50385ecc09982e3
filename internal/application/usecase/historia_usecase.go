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

// HistoriaUseCase CRUD de historias de usuario. La propiedad se verifica
// transitivamente: historia → proyecto → empresa. Acceso ajeno responde
// ErrNotFound.
type HistoriaUseCase struct {
	historias repository.HistoriaRepository
	proyectos repository.ProyectoRepository
	tx        TxRunner
}

// NewHistoriaUseCase construye el caso de uso.
func NewHistoriaUseCase(historias repository.HistoriaRepository, proyectos repository.ProyectoRepository, tx TxRunner) *HistoriaUseCase {
	return &HistoriaUseCase{historias: historias, proyectos: proyectos, tx: tx}
}

// Create crea una historia bajo un proyecto propio.
func (uc *HistoriaUseCase) Create(ctx context.Context, actor tenant.Actor, in dto.CreateHistoriaRequest) (*dto.HistoriaResponse, error) {
	if in.Titulo == "" || in.ProyectoID == 0 {
		return nil, domain.ErrInvalidInput
	}
	estado, err := normalizarEstadoHistoria(in.Estado)
	if err != nil {
		return nil, err
	}
	prioridad, err := normalizarPrioridad(in.Prioridad)
	if err != nil {
		return nil, err
	}
	proyecto, err := uc.proyectos.GetByID(ctx, in.ProyectoID)
	if err != nil {
		return nil, err
	}
	if !tenant.OwnsProyecto(actor, proyecto) {
		return nil, domain.ErrNotFound
	}
	historia := &entity.HistoriaUsuario{
		ProyectoID:    in.ProyectoID,
		Titulo:        in.Titulo,
		Descripcion:   in.Descripcion,
		Estado:        estado,
		Prioridad:     prioridad,
		FechaCreacion: time.Now(),
		EmpresaID:     proyecto.EmpresaID,
	}
	if err := uc.historias.Create(ctx, historia); err != nil {
		return nil, err
	}
	return toHistoriaResponse(historia), nil
}

// ListByProyecto lista las historias de un proyecto propio.
func (uc *HistoriaUseCase) ListByProyecto(ctx context.Context, actor tenant.Actor, proyectoID int) ([]dto.HistoriaResponse, error) {
	proyecto, err := uc.proyectos.GetByID(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	if !tenant.OwnsProyecto(actor, proyecto) {
		return nil, domain.ErrNotFound
	}
	historias, err := uc.historias.ListByProyecto(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoriaResponse, 0, len(historias))
	for _, h := range historias {
		out = append(out, *toHistoriaResponse(h))
	}
	return out, nil
}

// GetByID devuelve una historia propia; ErrNotFound si no existe o es ajena.
func (uc *HistoriaUseCase) GetByID(ctx context.Context, actor tenant.Actor, id int) (*dto.HistoriaResponse, error) {
	historia, err := uc.historias.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tenant.OwnsHistoria(actor, historia) {
		return nil, domain.ErrNotFound
	}
	return toHistoriaResponse(historia), nil
}

// Update reemplaza título, descripción, estado y prioridad de una historia
// propia dentro de una transacción.
func (uc *HistoriaUseCase) Update(ctx context.Context, actor tenant.Actor, id int, in dto.UpdateHistoriaRequest) (*dto.HistoriaResponse, error) {
	if in.Titulo == "" {
		return nil, domain.ErrInvalidInput
	}
	estado, err := normalizarEstadoHistoria(in.Estado)
	if err != nil {
		return nil, err
	}
	prioridad, err := normalizarPrioridad(in.Prioridad)
	if err != nil {
		return nil, err
	}
	var out *dto.HistoriaResponse
	err = uc.tx.Run(ctx, func(_ repository.ProyectoRepository, historias repository.HistoriaRepository, _ repository.TicketRepository) error {
		historia, err := historias.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !tenant.OwnsHistoria(actor, historia) {
			return domain.ErrNotFound
		}
		historia.Titulo = in.Titulo
		historia.Descripcion = in.Descripcion
		historia.Estado = estado
		historia.Prioridad = prioridad
		if err := historias.Update(ctx, historia); err != nil {
			return err
		}
		out = toHistoriaResponse(historia)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una historia propia; la cascada arrastra sus tickets.
func (uc *HistoriaUseCase) Delete(ctx context.Context, actor tenant.Actor, id int) error {
	return uc.tx.Run(ctx, func(_ repository.ProyectoRepository, historias repository.HistoriaRepository, _ repository.TicketRepository) error {
		historia, err := historias.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !tenant.OwnsHistoria(actor, historia) {
			return domain.ErrNotFound
		}
		return historias.Delete(ctx, historia.ID)
	})
}

func normalizarEstadoHistoria(s string) (string, error) {
	if s == "" {
		return entity.HistoriaEstadoPendiente, nil
	}
	if !entity.EstadoHistoriaValido(s) {
		return "", domain.ErrInvalidInput
	}
	return s, nil
}

func normalizarPrioridad(s string) (string, error) {
	if s == "" {
		return entity.PrioridadMedia, nil
	}
	if !entity.PrioridadValida(s) {
		return "", domain.ErrInvalidInput
	}
	return s, nil
}

func toHistoriaResponse(h *entity.HistoriaUsuario) *dto.HistoriaResponse {
	if h == nil {
		return nil
	}
	return &dto.HistoriaResponse{
		ID:            h.ID,
		Titulo:        h.Titulo,
		Descripcion:   h.Descripcion,
		Estado:        h.Estado,
		Prioridad:     h.Prioridad,
		FechaCreacion: h.FechaCreacion,
	}
}
