package postgres

import (
	"context"
	"fmt"

	"github.com/nomascartera/proyectos-api/internal/domain"
	"github.com/nomascartera/proyectos-api/internal/domain/entity"
	"github.com/nomascartera/proyectos-api/internal/domain/repository"
)

// Asegura que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

const empresaColumns = `
	id, nombre, identificacion_tributaria, COALESCE(email_contacto, ''),
	hashed_password, telefono_contacto, direccion, pais, ciudad,
	whatsapp_phone_number_id, whatsapp_business_id, whatsapp_access_token,
	whatsapp_habilitado, whatsapp_conectado_en,
	activa, fecha_registro, actualizada_en`

// Create persiste una empresa nueva y asigna su ID. El email vacío se guarda
// como NULL para no chocar con el índice único.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (
			nombre, identificacion_tributaria, email_contacto, hashed_password,
			telefono_contacto, direccion, pais, ciudad, activa, fecha_registro
		)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.Nombre, e.IdentificacionTributaria, e.EmailContacto, e.HashedPassword,
		e.TelefonoContacto, e.Direccion, e.Pais, e.Ciudad, e.Activa, e.FechaRegistro,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; nil si no existe.
func (r *EmpresaRepo) GetByID(ctx context.Context, id int) (*entity.Empresa, error) {
	return r.getOne(ctx, `SELECT `+empresaColumns+` FROM empresas WHERE id = $1`, id)
}

// GetByEmail obtiene una empresa por email de contacto; nil si no existe.
func (r *EmpresaRepo) GetByEmail(ctx context.Context, email string) (*entity.Empresa, error) {
	return r.getOne(ctx, `SELECT `+empresaColumns+` FROM empresas WHERE email_contacto = $1`, email)
}

// GetByIdentificacionTributaria obtiene una empresa por NIT; nil si no existe.
func (r *EmpresaRepo) GetByIdentificacionTributaria(ctx context.Context, nit string) (*entity.Empresa, error) {
	return r.getOne(ctx, `SELECT `+empresaColumns+` FROM empresas WHERE identificacion_tributaria = $1`, nit)
}

func (r *EmpresaRepo) getOne(ctx context.Context, query string, arg any) (*entity.Empresa, error) {
	var e entity.Empresa
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&e.ID, &e.Nombre, &e.IdentificacionTributaria, &e.EmailContacto,
		&e.HashedPassword, &e.TelefonoContacto, &e.Direccion, &e.Pais, &e.Ciudad,
		&e.WhatsappPhoneNumberID, &e.WhatsappBusinessID, &e.WhatsappAccessToken,
		&e.WhatsappHabilitado, &e.WhatsappConectadoEn,
		&e.Activa, &e.FechaRegistro, &e.ActualizadaEn,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// Update actualiza los campos mutables de una empresa.
func (r *EmpresaRepo) Update(ctx context.Context, e *entity.Empresa) error {
	query := `
		UPDATE empresas SET
			nombre = $2, telefono_contacto = $3, direccion = $4, pais = $5,
			ciudad = $6, whatsapp_phone_number_id = $7, whatsapp_business_id = $8,
			whatsapp_access_token = $9, whatsapp_habilitado = $10,
			whatsapp_conectado_en = $11, activa = $12, actualizada_en = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.Nombre, e.TelefonoContacto, e.Direccion, e.Pais, e.Ciudad,
		e.WhatsappPhoneNumberID, e.WhatsappBusinessID, e.WhatsappAccessToken,
		e.WhatsappHabilitado, e.WhatsappConectadoEn, e.Activa, e.ActualizadaEn,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las empresas registradas.
func (r *EmpresaRepo) List(ctx context.Context) ([]*entity.Empresa, error) {
	rows, err := r.q.Query(ctx, `SELECT `+empresaColumns+` FROM empresas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(
			&e.ID, &e.Nombre, &e.IdentificacionTributaria, &e.EmailContacto,
			&e.HashedPassword, &e.TelefonoContacto, &e.Direccion, &e.Pais, &e.Ciudad,
			&e.WhatsappPhoneNumberID, &e.WhatsappBusinessID, &e.WhatsappAccessToken,
			&e.WhatsappHabilitado, &e.WhatsappConectadoEn,
			&e.Activa, &e.FechaRegistro, &e.ActualizadaEn,
		); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina una empresa; las FK con ON DELETE CASCADE arrastran
// usuarios, proyectos, historias y tickets.
func (r *EmpresaRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	return nil
}
