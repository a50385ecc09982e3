package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/nomascartera/proyectos-api/pkg/jwt"
)

var testCfg = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "proyectos-api-test",
}

func TestGenerateEmpresa_ParseRoundTrip(t *testing.T) {
	tok, err := pkgjwt.GenerateEmpresa(testCfg, 12, "contacto@distrines.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testCfg.Secret, tok)
	require.NoError(t, err)

	assert.Equal(t, 12, claims.ID)
	assert.Equal(t, "empresa", claims.Type)
	assert.Equal(t, "contacto@distrines.com", claims.Subject)
	assert.Empty(t, claims.Rol)
	assert.Zero(t, claims.EmpresaID)
}

func TestGenerateUsuario_EmbebeEmpresaYRol(t *testing.T) {
	tok, err := pkgjwt.GenerateUsuario(testCfg, 5, 12, "ana@distrines.com", "cobrador")
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testCfg.Secret, tok)
	require.NoError(t, err)

	assert.Equal(t, 5, claims.ID)
	assert.Equal(t, "usuario", claims.Type)
	assert.Equal(t, 12, claims.EmpresaID)
	assert.Equal(t, "cobrador", claims.Rol)
	assert.Equal(t, "ana@distrines.com", claims.Subject)
}

func TestParse_TokenExpirado(t *testing.T) {
	cfg := testCfg
	cfg.ExpMinutes = -1 // ya expirado
	tok, err := pkgjwt.GenerateEmpresa(cfg, 1, "x@y.com")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(cfg.Secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.GenerateEmpresa(testCfg, 1, "x@y.com")
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Parse(testCfg.Secret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	cfg := testCfg
	cfg.Secret = ""
	_, err := pkgjwt.GenerateEmpresa(cfg, 1, "x@y.com")
	assert.Error(t, err)
}
