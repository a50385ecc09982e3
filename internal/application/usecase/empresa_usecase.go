package usecase

import (
	"context"
	"time"

	"github.com/nomascartera/proyectos-api/internal/application/auth"
	"github.com/nomascartera/proyectos-api/internal/application/dto"
	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
	"github.com/nomascartera/proyectos-api/internal/domain/tenant"
)

// EmpresaUseCase listados globales de empresas y gestión de la empresa
// propia (actualización parcial y baja con cascada).
type EmpresaUseCase struct {
	empresas repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso.
func NewEmpresaUseCase(empresas repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{empresas: empresas}
}

// Listado devuelve todas las empresas registradas. Sin alcance de tenant:
// es un listado global del directorio.
func (uc *EmpresaUseCase) Listado(ctx context.Context) ([]dto.EmpresaResponse, error) {
	empresas, err := uc.empresas.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpresaResponse, 0, len(empresas))
	for _, e := range empresas {
		out = append(out, *auth.ToEmpresaResponse(e))
	}
	return out, nil
}

// Resumen devuelve solo id y nombre de cada empresa.
func (uc *EmpresaUseCase) Resumen(ctx context.Context) ([]dto.EmpresaResumenResponse, error) {
	empresas, err := uc.empresas.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpresaResumenResponse, 0, len(empresas))
	for _, e := range empresas {
		out = append(out, dto.EmpresaResumenResponse{ID: e.ID, Nombre: e.Nombre})
	}
	return out, nil
}

// ActualizarPropia aplica una actualización parcial sobre la empresa del
// actor. Solo una empresa autenticada puede modificarse a sí misma.
func (uc *EmpresaUseCase) ActualizarPropia(ctx context.Context, actor tenant.Actor, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	if actor == nil || actor.Kind() != tenant.KindEmpresa {
		return nil, domain.ErrForbidden
	}
	empresa, err := uc.empresas.GetByID(ctx, actor.EmpresaID())
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		empresa.Nombre = *in.Nombre
	}
	if in.TelefonoContacto != nil {
		empresa.TelefonoContacto = *in.TelefonoContacto
	}
	if in.Direccion != nil {
		empresa.Direccion = *in.Direccion
	}
	if in.Pais != nil {
		empresa.Pais = *in.Pais
	}
	if in.Ciudad != nil {
		empresa.Ciudad = *in.Ciudad
	}
	if in.WhatsappHabilitado != nil {
		empresa.WhatsappHabilitado = *in.WhatsappHabilitado
	}
	if in.Activa != nil {
		empresa.Activa = *in.Activa
	}
	now := time.Now()
	empresa.ActualizadaEn = &now
	if err := uc.empresas.Update(ctx, empresa); err != nil {
		return nil, err
	}
	return auth.ToEmpresaResponse(empresa), nil
}

// EliminarPropia elimina la empresa del actor. Las claves foráneas con
// ON DELETE CASCADE arrastran usuarios, proyectos, historias y tickets.
func (uc *EmpresaUseCase) EliminarPropia(ctx context.Context, actor tenant.Actor) error {
	if actor == nil || actor.Kind() != tenant.KindEmpresa {
		return domain.ErrForbidden
	}
	empresa, err := uc.empresas.GetByID(ctx, actor.EmpresaID())
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNotFound
	}
	return uc.empresas.Delete(ctx, empresa.ID)
}
