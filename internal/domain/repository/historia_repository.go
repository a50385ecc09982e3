package repository

import (
	"context"

	"github.com/nomascartera/proyectos-api/internal/domain/entity"
)

// HistoriaRepository define el puerto de persistencia para HistoriaUsuario.
// Las lecturas devuelven la entidad con EmpresaID resuelto (JOIN con
// proyectos) para que la autorización no necesite consultas adicionales.
type HistoriaRepository interface {
	Create(ctx context.Context, historia *entity.HistoriaUsuario) error
	GetByID(ctx context.Context, id int) (*entity.HistoriaUsuario, error)
	ListByProyecto(ctx context.Context, proyectoID int) ([]*entity.HistoriaUsuario, error)
	Update(ctx context.Context, historia *entity.HistoriaUsuario) error
	Delete(ctx context.Context, id int) error
}
