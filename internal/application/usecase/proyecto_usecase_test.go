package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomascartera/proyectos-api/internal/application/dto"
	"github.com/nomascartera/proyectos-api/internal/application/usecase"
	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/tenant"
)

func nuevaEmpresa(t *testing.T, s *memStore, nombre, nit string) tenant.EmpresaActor {
	t.Helper()
	e := &entity.Empresa{Nombre: nombre, IdentificacionTributaria: nit, Activa: true}
	require.NoError(t, (&memEmpresaRepo{s: s}).Create(context.Background(), e))
	return tenant.EmpresaActor{ID: e.ID, Nombre: e.Nombre}
}

func TestProyecto_CreateYGet(t *testing.T) {
	s := newMemStore()
	uc := usecase.NewProyectoUseCase(&memProyectoRepo{s: s}, &memTxRunner{s: s})
	actor := nuevaEmpresa(t, s, "Distrines Ltda", "900111222-1")

	creado, err := uc.Create(context.Background(), actor, dto.CreateProyectoRequest{Nombre: "P1", Descripcion: "piloto"})
	require.NoError(t, err)
	require.NotZero(t, creado.ID)

	leido, err := uc.GetByID(context.Background(), actor, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "P1", leido.Nombre)
	assert.Equal(t, "piloto", leido.Descripcion)
}

// Un proyecto de la empresa A nunca debe ser visible, actualizable ni
// eliminable con el token de la empresa B.
func TestProyecto_AisladoEntreEmpresas(t *testing.T) {
	s := newMemStore()
	uc := usecase.NewProyectoUseCase(&memProyectoRepo{s: s}, &memTxRunner{s: s})
	empresaA := nuevaEmpresa(t, s, "Empresa A", "900111222-1")
	empresaB := nuevaEmpresa(t, s, "Empresa B", "900333444-5")

	creado, err := uc.Create(context.Background(), empresaA, dto.CreateProyectoRequest{Nombre: "P1"})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), empresaB, creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "lectura ajena debe responder not found")

	_, err = uc.Update(context.Background(), empresaB, creado.ID, dto.UpdateProyectoRequest{Nombre: "hackeado"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "actualización ajena debe responder not found")

	err = uc.Delete(context.Background(), empresaB, creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrado ajeno debe responder not found")

	// El proyecto sigue intacto para su dueña.
	leido, err := uc.GetByID(context.Background(), empresaA, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "P1", leido.Nombre)

	lista, err := uc.List(context.Background(), empresaB)
	require.NoError(t, err)
	assert.Empty(t, lista, "el listado de B no debe incluir proyectos de A")
}

// Un usuario actúa con la empresa embebida en su token y ve exactamente lo
// mismo que su empresa.
func TestProyecto_UsuarioHeredaEmpresa(t *testing.T) {
	s := newMemStore()
	uc := usecase.NewProyectoUseCase(&memProyectoRepo{s: s}, &memTxRunner{s: s})
	empresa := nuevaEmpresa(t, s, "Empresa A", "900111222-1")
	usuario := tenant.UsuarioActor{ID: 99, Empresa: empresa.ID, Email: "ana@a.com", Rol: "cobrador"}

	creado, err := uc.Create(context.Background(), empresa, dto.CreateProyectoRequest{Nombre: "P1"})
	require.NoError(t, err)

	leido, err := uc.GetByID(context.Background(), usuario, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, creado.ID, leido.ID)
}

func TestProyecto_DeleteCascadaHistoriasYTickets(t *testing.T) {
	s := newMemStore()
	proyectoUC := usecase.NewProyectoUseCase(&memProyectoRepo{s: s}, &memTxRunner{s: s})
	historiaUC := usecase.NewHistoriaUseCase(&memHistoriaRepo{s: s}, &memProyectoRepo{s: s}, &memTxRunner{s: s})
	ticketUC := usecase.NewTicketUseCase(&memTicketRepo{s: s}, &memHistoriaRepo{s: s}, &memTxRunner{s: s})
	actor := nuevaEmpresa(t, s, "Empresa A", "900111222-1")

	proyecto, err := proyectoUC.Create(context.Background(), actor, dto.CreateProyectoRequest{Nombre: "P1"})
	require.NoError(t, err)
	historia, err := historiaUC.Create(context.Background(), actor, dto.CreateHistoriaRequest{ProyectoID: proyecto.ID, Titulo: "S1"})
	require.NoError(t, err)
	ticket, err := ticketUC.Create(context.Background(), actor, dto.CreateTicketRequest{HistoriaUsuarioID: historia.ID, Asunto: "T1"})
	require.NoError(t, err)

	require.NoError(t, proyectoUC.Delete(context.Background(), actor, proyecto.ID))

	_, err = historiaUC.GetByID(context.Background(), actor, historia.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = ticketUC.GetByID(context.Background(), actor, ticket.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProyecto_NombreRequerido(t *testing.T) {
	s := newMemStore()
	uc := usecase.NewProyectoUseCase(&memProyectoRepo{s: s}, &memTxRunner{s: s})
	actor := nuevaEmpresa(t, s, "Empresa A", "900111222-1")

	_, err := uc.Create(context.Background(), actor, dto.CreateProyectoRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
