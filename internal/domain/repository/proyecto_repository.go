package repository

import (
	"context"

	"github.com/nomascartera/proyectos-api/internal/domain/entity"
)

// ProyectoRepository define el puerto de persistencia para Proyecto.
type ProyectoRepository interface {
	Create(ctx context.Context, proyecto *entity.Proyecto) error
	GetByID(ctx context.Context, id int) (*entity.Proyecto, error)
	ListByEmpresa(ctx context.Context, empresaID int) ([]*entity.Proyecto, error)
	Update(ctx context.Context, proyecto *entity.Proyecto) error
	Delete(ctx context.Context, id int) error
}
