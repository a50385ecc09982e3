package entity

import "time"

// Rol por defecto al crear un usuario. El rol es una etiqueta libre
// (admin, contador, cobrador); no hay RBAC sobre ella.
const RolPorDefecto = "cobrador"

// Usuario representa un actor que pertenece a una Empresa.
type Usuario struct {
	ID            int
	EmpresaID     int
	Nombre        string
	Email         string // único a nivel global
	PasswordHash  string // bcrypt
	Rol           string
	Activo        bool
	FechaRegistro time.Time
}
