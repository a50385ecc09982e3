package repository

import (
	"context"

	"github.com/nomascartera/proyectos-api/internal/domain/entity"
)

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
// La implementación vive en infrastructure.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *entity.Empresa) error
	GetByID(ctx context.Context, id int) (*entity.Empresa, error)
	GetByEmail(ctx context.Context, email string) (*entity.Empresa, error)
	GetByIdentificacionTributaria(ctx context.Context, nit string) (*entity.Empresa, error)
	Update(ctx context.Context, empresa *entity.Empresa) error
	List(ctx context.Context) ([]*entity.Empresa, error)
	Delete(ctx context.Context, id int) error
}
