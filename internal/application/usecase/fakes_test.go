package usecase_test

import (
	"context"

	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
)

// memStore es una persistencia en memoria que imita la semántica de los
// repositorios PostgreSQL: IDs autoincrementales, EmpresaID resuelto por
// "join" al leer historias y tickets, y borrado en cascada.
type memStore struct {
	seq       int
	empresas  map[int]*entity.Empresa
	proyectos map[int]*entity.Proyecto
	historias map[int]*entity.HistoriaUsuario
	tickets   map[int]*entity.Ticket
}

func newMemStore() *memStore {
	return &memStore{
		empresas:  map[int]*entity.Empresa{},
		proyectos: map[int]*entity.Proyecto{},
		historias: map[int]*entity.HistoriaUsuario{},
		tickets:   map[int]*entity.Ticket{},
	}
}

func (s *memStore) nextID() int {
	s.seq++
	return s.seq
}

// ── EmpresaRepository ────────────────────────────────────────────────────────

type memEmpresaRepo struct{ s *memStore }

func (r *memEmpresaRepo) Create(_ context.Context, e *entity.Empresa) error {
	e.ID = r.s.nextID()
	cp := *e
	r.s.empresas[e.ID] = &cp
	return nil
}

func (r *memEmpresaRepo) GetByID(_ context.Context, id int) (*entity.Empresa, error) {
	e, ok := r.s.empresas[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEmpresaRepo) GetByEmail(_ context.Context, email string) (*entity.Empresa, error) {
	for _, e := range r.s.empresas {
		if e.EmailContacto == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memEmpresaRepo) GetByIdentificacionTributaria(_ context.Context, nit string) (*entity.Empresa, error) {
	for _, e := range r.s.empresas {
		if e.IdentificacionTributaria == nit {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memEmpresaRepo) Update(_ context.Context, e *entity.Empresa) error {
	cp := *e
	r.s.empresas[e.ID] = &cp
	return nil
}

func (r *memEmpresaRepo) List(_ context.Context) ([]*entity.Empresa, error) {
	out := make([]*entity.Empresa, 0, len(r.s.empresas))
	for _, e := range r.s.empresas {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memEmpresaRepo) Delete(_ context.Context, id int) error {
	delete(r.s.empresas, id)
	for pid, p := range r.s.proyectos {
		if p.EmpresaID == id {
			_ = (&memProyectoRepo{s: r.s}).Delete(context.Background(), pid)
		}
	}
	return nil
}

// ── ProyectoRepository ───────────────────────────────────────────────────────

type memProyectoRepo struct{ s *memStore }

func (r *memProyectoRepo) Create(_ context.Context, p *entity.Proyecto) error {
	p.ID = r.s.nextID()
	cp := *p
	r.s.proyectos[p.ID] = &cp
	return nil
}

func (r *memProyectoRepo) GetByID(_ context.Context, id int) (*entity.Proyecto, error) {
	p, ok := r.s.proyectos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProyectoRepo) ListByEmpresa(_ context.Context, empresaID int) ([]*entity.Proyecto, error) {
	var out []*entity.Proyecto
	for _, p := range r.s.proyectos {
		if p.EmpresaID == empresaID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProyectoRepo) Update(_ context.Context, p *entity.Proyecto) error {
	cp := *p
	r.s.proyectos[p.ID] = &cp
	return nil
}

func (r *memProyectoRepo) Delete(_ context.Context, id int) error {
	delete(r.s.proyectos, id)
	for hid, h := range r.s.historias {
		if h.ProyectoID == id {
			_ = (&memHistoriaRepo{s: r.s}).Delete(context.Background(), hid)
		}
	}
	return nil
}

// ── HistoriaRepository ───────────────────────────────────────────────────────

type memHistoriaRepo struct{ s *memStore }

func (r *memHistoriaRepo) Create(_ context.Context, h *entity.HistoriaUsuario) error {
	h.ID = r.s.nextID()
	cp := *h
	r.s.historias[h.ID] = &cp
	return nil
}

// GetByID resuelve EmpresaID vía el proyecto, como hace el JOIN real.
func (r *memHistoriaRepo) GetByID(_ context.Context, id int) (*entity.HistoriaUsuario, error) {
	h, ok := r.s.historias[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	if p, ok := r.s.proyectos[h.ProyectoID]; ok {
		cp.EmpresaID = p.EmpresaID
	}
	return &cp, nil
}

func (r *memHistoriaRepo) ListByProyecto(_ context.Context, proyectoID int) ([]*entity.HistoriaUsuario, error) {
	var out []*entity.HistoriaUsuario
	for _, h := range r.s.historias {
		if h.ProyectoID == proyectoID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memHistoriaRepo) Update(_ context.Context, h *entity.HistoriaUsuario) error {
	cp := *h
	r.s.historias[h.ID] = &cp
	return nil
}

func (r *memHistoriaRepo) Delete(_ context.Context, id int) error {
	delete(r.s.historias, id)
	for tid, t := range r.s.tickets {
		if t.HistoriaUsuarioID == id {
			delete(r.s.tickets, tid)
		}
	}
	return nil
}

// ── TicketRepository ─────────────────────────────────────────────────────────

type memTicketRepo struct{ s *memStore }

func (r *memTicketRepo) Create(_ context.Context, t *entity.Ticket) error {
	t.ID = r.s.nextID()
	cp := *t
	r.s.tickets[t.ID] = &cp
	return nil
}

// GetByID resuelve EmpresaID vía historia → proyecto, como el JOIN real.
func (r *memTicketRepo) GetByID(_ context.Context, id int) (*entity.Ticket, error) {
	t, ok := r.s.tickets[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	if h, ok := r.s.historias[t.HistoriaUsuarioID]; ok {
		if p, ok := r.s.proyectos[h.ProyectoID]; ok {
			cp.EmpresaID = p.EmpresaID
		}
	}
	return &cp, nil
}

func (r *memTicketRepo) ListByHistoria(_ context.Context, historiaID int) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range r.s.tickets {
		if t.HistoriaUsuarioID == historiaID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTicketRepo) Update(_ context.Context, t *entity.Ticket) error {
	cp := *t
	r.s.tickets[t.ID] = &cp
	return nil
}

func (r *memTicketRepo) UpdateEstado(_ context.Context, id int, estado string) error {
	if t, ok := r.s.tickets[id]; ok {
		t.Estado = estado
	}
	return nil
}

func (r *memTicketRepo) Delete(_ context.Context, id int) error {
	delete(r.s.tickets, id)
	return nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// memTxRunner ejecuta fn directamente sobre los repositorios en memoria; en
// los tests no hay transacción real que abrir.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	proyectos repository.ProyectoRepository,
	historias repository.HistoriaRepository,
	tickets repository.TicketRepository,
) error) error {
	return fn(&memProyectoRepo{s: r.s}, &memHistoriaRepo{s: r.s}, &memTicketRepo{s: r.s})
}
