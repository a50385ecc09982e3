package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomascartera/proyectos-api/internal/application/auth"
	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/tenant"
	pkgjwt "github.com/nomascartera/proyectos-api/pkg/jwt"
)

func sembrarEmpresa(t *testing.T, repo *empresaFake, email string, activa bool) *entity.Empresa {
	t.Helper()
	e := &entity.Empresa{
		Nombre:                   "Distrines Ltda",
		IdentificacionTributaria: "900111222-1",
		EmailContacto:            email,
		Activa:                   activa,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func sembrarUsuario(t *testing.T, repo *usuarioFake, empresaID int, email string, activo bool) *entity.Usuario {
	t.Helper()
	u := &entity.Usuario{
		EmpresaID: empresaID,
		Nombre:    "Ana",
		Email:     email,
		Rol:       "cobrador",
		Activo:    activo,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestResolve_EmpresaActiva(t *testing.T) {
	empresas, usuarios := newEmpresaFake(), newUsuarioFake()
	e := sembrarEmpresa(t, empresas, "contacto@distrines.com", true)
	r := auth.NewResolver(empresas, usuarios)

	claims := &pkgjwt.Claims{ID: e.ID, Type: "empresa"}
	claims.Subject = e.EmailContacto

	actor, err := r.Resolve(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, tenant.KindEmpresa, actor.Kind())
	assert.Equal(t, e.ID, actor.EmpresaID())
}

// El token debe coincidir en id Y email; cualquier discrepancia lo invalida.
func TestResolve_EmailNoCoincide(t *testing.T) {
	empresas, usuarios := newEmpresaFake(), newUsuarioFake()
	e := sembrarEmpresa(t, empresas, "contacto@distrines.com", true)
	r := auth.NewResolver(empresas, usuarios)

	claims := &pkgjwt.Claims{ID: e.ID, Type: "empresa"}
	claims.Subject = "otro@correo.com"

	_, err := r.Resolve(context.Background(), claims)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_EmpresaInactiva(t *testing.T) {
	empresas, usuarios := newEmpresaFake(), newUsuarioFake()
	e := sembrarEmpresa(t, empresas, "contacto@distrines.com", false)
	r := auth.NewResolver(empresas, usuarios)

	claims := &pkgjwt.Claims{ID: e.ID, Type: "empresa"}
	claims.Subject = e.EmailContacto

	_, err := r.Resolve(context.Background(), claims)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un token de usuario resuelve exactamente a ese usuario, y deja de valer si
// el usuario se desactiva después de emitido.
func TestResolve_UsuarioYDesactivacionPosterior(t *testing.T) {
	empresas, usuarios := newEmpresaFake(), newUsuarioFake()
	e := sembrarEmpresa(t, empresas, "contacto@distrines.com", true)
	u := sembrarUsuario(t, usuarios, e.ID, "ana@distrines.com", true)
	r := auth.NewResolver(empresas, usuarios)

	claims := &pkgjwt.Claims{ID: u.ID, Type: "usuario", Rol: u.Rol, EmpresaID: u.EmpresaID}
	claims.Subject = u.Email

	actor, err := r.Resolve(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, tenant.KindUsuario, actor.Kind())
	assert.Equal(t, e.ID, actor.EmpresaID())
	ua, ok := actor.(tenant.UsuarioActor)
	require.True(t, ok)
	assert.Equal(t, u.ID, ua.ID)

	// Desactivar al usuario invalida el mismo token en la siguiente petición.
	inactivo, _ := usuarios.GetByID(context.Background(), u.ID)
	inactivo.Activo = false
	cp := *inactivo
	usuarios.items[u.ID] = &cp

	_, err = r.Resolve(context.Background(), claims)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Tokens antiguos sin discriminador resuelven la empresa solo por email
// (compatibilidad legacy).
func TestResolve_LegacySinType(t *testing.T) {
	empresas, usuarios := newEmpresaFake(), newUsuarioFake()
	e := sembrarEmpresa(t, empresas, "contacto@distrines.com", true)
	r := auth.NewResolver(empresas, usuarios)

	claims := &pkgjwt.Claims{}
	claims.Subject = e.EmailContacto

	actor, err := r.Resolve(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, e.ID, actor.EmpresaID())

	// Email desconocido por la vía legacy → unauthorized.
	desconocido := &pkgjwt.Claims{}
	desconocido.Subject = "nadie@nada.com"
	_, err = r.Resolve(context.Background(), desconocido)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_TypeDesconocido(t *testing.T) {
	r := auth.NewResolver(newEmpresaFake(), newUsuarioFake())

	claims := &pkgjwt.Claims{ID: 1, Type: "robot"}
	claims.Subject = "robot@maquina.com"

	_, err := r.Resolve(context.Background(), claims)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_ClaimsNulos(t *testing.T) {
	r := auth.NewResolver(newEmpresaFake(), newUsuarioFake())
	_, err := r.Resolve(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
