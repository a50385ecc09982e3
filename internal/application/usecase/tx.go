package usecase

import (
	"context"

	"github.com/nomascartera/proyectos-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción. Las
// secuencias verificar-propiedad-y-mutar de proyectos, historias y tickets
// corren dentro de una transacción para que el dueño no pueda cambiar entre
// la verificación y la escritura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		proyectos repository.ProyectoRepository,
		historias repository.HistoriaRepository,
		tickets repository.TicketRepository,
	) error) error
}
