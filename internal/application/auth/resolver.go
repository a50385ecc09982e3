package auth

import (
	"context"

	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
	"github.com/nomascartera/proyectos-api/internal/domain/tenant"
	"github.com/nomascartera/proyectos-api/pkg/jwt"
)

// Resolver convierte los claims de un token válido en exactamente un actor
// autenticado (empresa o usuario). Cualquier discrepancia entre los claims y
// el estado actual de la base (id, email, flag de actividad) invalida el
// token aunque la firma sea correcta.
type Resolver struct {
	empresas repository.EmpresaRepository
	usuarios repository.UsuarioRepository
}

// NewResolver construye el resolver con los repositorios de principals.
func NewResolver(empresas repository.EmpresaRepository, usuarios repository.UsuarioRepository) *Resolver {
	return &Resolver{empresas: empresas, usuarios: usuarios}
}

// Resolve aplica el algoritmo de resolución de actor:
//
//  1. claims sin "type": vía legacy, búsqueda de empresa solo por email.
//     Compatibilidad con tokens emitidos antes del discriminador; no es
//     parte del contrato principal de autorización.
//  2. type "empresa": empresa por id, con email coincidente y activa.
//  3. type "usuario": usuario por id, con email coincidente y activo.
//  4. cualquier otro valor: ErrUnauthorized.
func (r *Resolver) Resolve(ctx context.Context, claims *jwt.Claims) (tenant.Actor, error) {
	if claims == nil {
		return nil, domain.ErrUnauthorized
	}
	switch claims.Type {
	case "":
		return r.resolveLegacy(ctx, claims.Subject)

	case tenant.KindEmpresa:
		empresa, err := r.empresas.GetByID(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if empresa == nil || empresa.EmailContacto != claims.Subject || !empresa.Activa {
			return nil, domain.ErrUnauthorized
		}
		return tenant.EmpresaActor{ID: empresa.ID, Nombre: empresa.Nombre}, nil

	case tenant.KindUsuario:
		usuario, err := r.usuarios.GetByID(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if usuario == nil || usuario.Email != claims.Subject || !usuario.Activo {
			return nil, domain.ErrUnauthorized
		}
		return tenant.UsuarioActor{
			ID:      usuario.ID,
			Empresa: usuario.EmpresaID,
			Email:   usuario.Email,
			Rol:     usuario.Rol,
		}, nil
	}
	return nil, domain.ErrUnauthorized
}

// resolveLegacy acepta el formato de token anterior, que solo traía el email
// en sub. Resuelve únicamente empresas.
func (r *Resolver) resolveLegacy(ctx context.Context, email string) (tenant.Actor, error) {
	if email == "" {
		return nil, domain.ErrUnauthorized
	}
	empresa, err := r.empresas.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrUnauthorized
	}
	return tenant.EmpresaActor{ID: empresa.ID, Nombre: empresa.Nombre}, nil
}
