package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nomascartera/proyectos-api/internal/application/usecase"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner abre una transacción sobre el pool y entrega a fn los
// repositorios atados a esa transacción.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ejecuta fn dentro de una transacción. Si fn devuelve error se hace
// rollback; si no, commit.
func (r *TxRunner) Run(ctx context.Context, fn func(
	proyectos repository.ProyectoRepository,
	historias repository.HistoriaRepository,
	tickets repository.TicketRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(
		NewProyectoRepository(tx),
		NewHistoriaRepository(tx),
		NewTicketRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
