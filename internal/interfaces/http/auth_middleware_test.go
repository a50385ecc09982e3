package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomascartera/proyectos-api/internal/application/auth"
	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/pkg/jwt"
)

// Fakes mínimos para el resolver en los tests del middleware.
type empresaRepoFake struct {
	porID map[int]*entity.Empresa
}

func (f *empresaRepoFake) Create(ctx context.Context, e *entity.Empresa) error { return nil }
func (f *empresaRepoFake) GetByID(ctx context.Context, id int) (*entity.Empresa, error) {
	return f.porID[id], nil
}
func (f *empresaRepoFake) GetByEmail(ctx context.Context, email string) (*entity.Empresa, error) {
	for _, e := range f.porID {
		if e.EmailContacto == email {
			return e, nil
		}
	}
	return nil, nil
}
func (f *empresaRepoFake) GetByIdentificacionTributaria(ctx context.Context, nit string) (*entity.Empresa, error) {
	return nil, nil
}
func (f *empresaRepoFake) Update(ctx context.Context, e *entity.Empresa) error { return nil }
func (f *empresaRepoFake) List(ctx context.Context) ([]*entity.Empresa, error) { return nil, nil }
func (f *empresaRepoFake) Delete(ctx context.Context, id int) error            { return nil }

type usuarioRepoFake struct {
	porID map[int]*entity.Usuario
}

func (f *usuarioRepoFake) Create(ctx context.Context, u *entity.Usuario) error { return nil }
func (f *usuarioRepoFake) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	return f.porID[id], nil
}
func (f *usuarioRepoFake) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func appConMiddleware(t *testing.T, secret string, empresas *empresaRepoFake, usuarios *usuarioRepoFake) *fiber.App {
	t.Helper()
	app := fiber.New()
	resolver := auth.NewResolver(empresas, usuarios)
	app.Get("/protegida", AuthMiddleware(secret), ActorMiddleware(resolver), func(c *fiber.Ctx) error {
		actor := GetActor(c)
		require.NotNil(t, actor)
		return c.JSON(fiber.Map{"empresa_id": actor.EmpresaID(), "kind": actor.Kind()})
	})
	return app
}

// Sin header Authorization la petición se rechaza con 401.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := appConMiddleware(t, "secreto", &empresaRepoFake{porID: map[int]*entity.Empresa{}}, &usuarioRepoFake{porID: map[int]*entity.Usuario{}})

	req := httptest.NewRequest("GET", "/protegida", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Un header con formato incorrecto o un token firmado con otro secreto
// responden 401.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := appConMiddleware(t, "secreto", &empresaRepoFake{porID: map[int]*entity.Empresa{}}, &usuarioRepoFake{porID: map[int]*entity.Usuario{}})

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, err := jwt.GenerateEmpresa(jwt.Config{Secret: "otro-secreto", ExpMinutes: 60}, 1, "a@b.co")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Un token válido de empresa activa llega al handler con el actor resuelto.
func TestAuthMiddleware_EmpresaValida(t *testing.T) {
	empresas := &empresaRepoFake{porID: map[int]*entity.Empresa{
		7: {ID: 7, Nombre: "Acme", EmailContacto: "acme@ejemplo.co", Activa: true},
	}}
	app := appConMiddleware(t, "secreto", empresas, &usuarioRepoFake{porID: map[int]*entity.Usuario{}})

	token, err := jwt.GenerateEmpresa(jwt.Config{Secret: "secreto", ExpMinutes: 60}, 7, "acme@ejemplo.co")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Un token firmado sigue siendo inútil si la empresa fue desactivada después
// de emitirlo.
func TestAuthMiddleware_EmpresaDesactivada(t *testing.T) {
	empresas := &empresaRepoFake{porID: map[int]*entity.Empresa{
		7: {ID: 7, Nombre: "Acme", EmailContacto: "acme@ejemplo.co", Activa: false},
	}}
	app := appConMiddleware(t, "secreto", empresas, &usuarioRepoFake{porID: map[int]*entity.Usuario{}})

	token, err := jwt.GenerateEmpresa(jwt.Config{Secret: "secreto", ExpMinutes: 60}, 7, "acme@ejemplo.co")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Un token de usuario activo se resuelve a un actor de su empresa.
func TestAuthMiddleware_UsuarioValido(t *testing.T) {
	usuarios := &usuarioRepoFake{porID: map[int]*entity.Usuario{
		3: {ID: 3, EmpresaID: 7, Email: "cobrador@ejemplo.co", Rol: "cobrador", Activo: true},
	}}
	app := appConMiddleware(t, "secreto", &empresaRepoFake{porID: map[int]*entity.Empresa{}}, usuarios)

	token, err := jwt.GenerateUsuario(jwt.Config{Secret: "secreto", ExpMinutes: 60}, 3, 7, "cobrador@ejemplo.co", "cobrador")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
