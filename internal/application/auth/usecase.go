package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nomascartera/proyectos-api/internal/application/dto"
	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
	"github.com/nomascartera/proyectos-api/pkg/jwt"
)

// UseCase casos de uso de autenticación: registro y login de empresas y
// usuarios, con emisión de tokens JWT.
type UseCase struct {
	empresas repository.EmpresaRepository
	usuarios repository.UsuarioRepository
	jwtCfg   jwt.Config
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(empresas repository.EmpresaRepository, usuarios repository.UsuarioRepository, jwtCfg jwt.Config) *UseCase {
	return &UseCase{empresas: empresas, usuarios: usuarios, jwtCfg: jwtCfg}
}

// RegistrarEmpresa crea una empresa nueva. Devuelve ErrDuplicate si el email
// de contacto o la identificación tributaria ya están registrados.
func (uc *UseCase) RegistrarEmpresa(ctx context.Context, in dto.RegistroEmpresaRequest) (*dto.EmpresaResponse, error) {
	if in.Nombre == "" || in.IdentificacionTributaria == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.EmailContacto != "" {
		existente, err := uc.empresas.GetByEmail(ctx, in.EmailContacto)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
	}
	existente, err := uc.empresas.GetByIdentificacionTributaria(ctx, in.IdentificacionTributaria)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	empresa := &entity.Empresa{
		Nombre:                   in.Nombre,
		IdentificacionTributaria: in.IdentificacionTributaria,
		EmailContacto:            in.EmailContacto,
		HashedPassword:           string(hash),
		TelefonoContacto:         in.TelefonoContacto,
		Direccion:                in.Direccion,
		Pais:                     in.Pais,
		Ciudad:                   in.Ciudad,
		Activa:                   true,
		FechaRegistro:            time.Now(),
	}
	if err := uc.empresas.Create(ctx, empresa); err != nil {
		return nil, err
	}
	return ToEmpresaResponse(empresa), nil
}

// LoginEmpresa verifica email/password y emite un token con type="empresa".
func (uc *UseCase) LoginEmpresa(ctx context.Context, in dto.LoginEmpresaRequest) (*dto.LoginEmpresaResponse, error) {
	empresa, err := uc.empresas.GetByEmail(ctx, in.EmailContacto)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(empresa.HashedPassword), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.GenerateEmpresa(uc.jwtCfg, empresa.ID, empresa.EmailContacto)
	if err != nil {
		return nil, err
	}
	return &dto.LoginEmpresaResponse{
		AccessToken:   token,
		TokenType:     "bearer",
		EmpresaID:     empresa.ID,
		EmpresaNombre: empresa.Nombre,
	}, nil
}

// RegistrarUsuario crea un usuario bajo una empresa existente y activa, y
// emite su token. Devuelve ErrEmpresaInactiva si la empresa no existe o está
// inactiva y ErrEmailAlreadyExists si el email ya está en uso.
func (uc *UseCase) RegistrarUsuario(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioTokenResponse, error) {
	if in.Nombre == "" || in.Email == "" || in.Password == "" || in.EmpresaID == 0 {
		return nil, domain.ErrInvalidInput
	}
	empresa, err := uc.empresas.GetByID(ctx, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil || !empresa.Activa {
		return nil, domain.ErrEmpresaInactiva
	}
	existente, err := uc.usuarios.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolPorDefecto
	}
	usuario := &entity.Usuario{
		EmpresaID:     in.EmpresaID,
		Nombre:        in.Nombre,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Rol:           rol,
		Activo:        true,
		FechaRegistro: time.Now(),
	}
	if err := uc.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	token, err := jwt.GenerateUsuario(uc.jwtCfg, usuario.ID, usuario.EmpresaID, usuario.Email, usuario.Rol)
	if err != nil {
		return nil, err
	}
	return &dto.UsuarioTokenResponse{
		Usuario:     *toUsuarioResponse(usuario),
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// LoginUsuario verifica credenciales de usuario y emite un token con
// type="usuario". Distingue usuario inexistente (ErrNotFound), inactivo
// (ErrUsuarioInactivo) y contraseña incorrecta (ErrUnauthorized).
func (uc *UseCase) LoginUsuario(ctx context.Context, in dto.LoginUsuarioRequest) (*dto.UsuarioTokenResponse, error) {
	usuario, err := uc.usuarios.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	if !usuario.Activo {
		return nil, domain.ErrUsuarioInactivo
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.GenerateUsuario(uc.jwtCfg, usuario.ID, usuario.EmpresaID, usuario.Email, usuario.Rol)
	if err != nil {
		return nil, err
	}
	return &dto.UsuarioTokenResponse{
		Usuario:     *toUsuarioResponse(usuario),
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ToEmpresaResponse mapea la entidad a su DTO de salida.
func ToEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:                       e.ID,
		Nombre:                   e.Nombre,
		IdentificacionTributaria: e.IdentificacionTributaria,
		EmailContacto:            e.EmailContacto,
		TelefonoContacto:         e.TelefonoContacto,
		Direccion:                e.Direccion,
		Pais:                     e.Pais,
		Ciudad:                   e.Ciudad,
		Activa:                   e.Activa,
		WhatsappHabilitado:       e.WhatsappHabilitado,
		WhatsappConectadoEn:      e.WhatsappConectadoEn,
		FechaRegistro:            e.FechaRegistro,
		ActualizadaEn:            e.ActualizadaEn,
	}
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
		EmpresaID: u.EmpresaID,
		Activo:    u.Activo,
	}
}
