package dto

import "time"

// CreateProyectoRequest entrada para crear un proyecto. La empresa dueña se
// toma del token, nunca del cuerpo.
type CreateProyectoRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// UpdateProyectoRequest entrada para actualizar un proyecto.
type UpdateProyectoRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// ProyectoResponse salida de un proyecto.
type ProyectoResponse struct {
	ID            int       `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	FechaRegistro time.Time `json:"fecha_registro"`
}
