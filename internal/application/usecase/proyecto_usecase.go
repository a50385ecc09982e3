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

// ProyectoUseCase CRUD de proyectos con alcance estricto de tenant: toda
// operación verifica que el proyecto pertenezca a la empresa del actor. El
// acceso a un proyecto ajeno responde ErrNotFound, nunca ErrForbidden, para
// no revelar existencia entre tenants.
type ProyectoUseCase struct {
	proyectos repository.ProyectoRepository
	tx        TxRunner
}

// NewProyectoUseCase construye el caso de uso.
func NewProyectoUseCase(proyectos repository.ProyectoRepository, tx TxRunner) *ProyectoUseCase {
	return &ProyectoUseCase{proyectos: proyectos, tx: tx}
}

// Create crea un proyecto bajo la empresa del actor. La empresa dueña sale
// del token, nunca del cuerpo de la petición.
func (uc *ProyectoUseCase) Create(ctx context.Context, actor tenant.Actor, in dto.CreateProyectoRequest) (*dto.ProyectoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	proyecto := &entity.Proyecto{
		EmpresaID:     actor.EmpresaID(),
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		FechaRegistro: time.Now(),
	}
	if err := uc.proyectos.Create(ctx, proyecto); err != nil {
		return nil, err
	}
	return toProyectoResponse(proyecto), nil
}

// List devuelve los proyectos de la empresa del actor.
func (uc *ProyectoUseCase) List(ctx context.Context, actor tenant.Actor) ([]dto.ProyectoResponse, error) {
	proyectos, err := uc.proyectos.ListByEmpresa(ctx, actor.EmpresaID())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProyectoResponse, 0, len(proyectos))
	for _, p := range proyectos {
		out = append(out, *toProyectoResponse(p))
	}
	return out, nil
}

// GetByID devuelve un proyecto propio; ErrNotFound si no existe o es ajeno.
func (uc *ProyectoUseCase) GetByID(ctx context.Context, actor tenant.Actor, id int) (*dto.ProyectoResponse, error) {
	proyecto, err := uc.proyectos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tenant.OwnsProyecto(actor, proyecto) {
		return nil, domain.ErrNotFound
	}
	return toProyectoResponse(proyecto), nil
}

// Update reemplaza nombre y descripción de un proyecto propio. La
// verificación de propiedad y la escritura corren en una transacción.
func (uc *ProyectoUseCase) Update(ctx context.Context, actor tenant.Actor, id int, in dto.UpdateProyectoRequest) (*dto.ProyectoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProyectoResponse
	err := uc.tx.Run(ctx, func(proyectos repository.ProyectoRepository, _ repository.HistoriaRepository, _ repository.TicketRepository) error {
		proyecto, err := proyectos.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !tenant.OwnsProyecto(actor, proyecto) {
			return domain.ErrNotFound
		}
		proyecto.Nombre = in.Nombre
		proyecto.Descripcion = in.Descripcion
		if err := proyectos.Update(ctx, proyecto); err != nil {
			return err
		}
		out = toProyectoResponse(proyecto)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un proyecto propio; la cascada arrastra historias y tickets.
func (uc *ProyectoUseCase) Delete(ctx context.Context, actor tenant.Actor, id int) error {
	return uc.tx.Run(ctx, func(proyectos repository.ProyectoRepository, _ repository.HistoriaRepository, _ repository.TicketRepository) error {
		proyecto, err := proyectos.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !tenant.OwnsProyecto(actor, proyecto) {
			return domain.ErrNotFound
		}
		return proyectos.Delete(ctx, proyecto.ID)
	})
}

func toProyectoResponse(p *entity.Proyecto) *dto.ProyectoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProyectoResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		FechaRegistro: p.FechaRegistro,
	}
}
