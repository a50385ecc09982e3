package entity

import "time"

// Proyecto agrupa historias de usuario y pertenece a una Empresa.
type Proyecto struct {
	ID            int
	EmpresaID     int
	Nombre        string
	Descripcion   string
	FechaRegistro time.Time
}
