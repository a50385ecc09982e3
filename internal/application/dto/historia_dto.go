package dto

import "time"

// CreateHistoriaRequest entrada para crear una historia de usuario.
type CreateHistoriaRequest struct {
	ProyectoID  int    `json:"proyecto_id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
	Prioridad   string `json:"prioridad"`
}

// UpdateHistoriaRequest entrada para actualizar una historia.
type UpdateHistoriaRequest struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
	Prioridad   string `json:"prioridad"`
}

// HistoriaResponse salida de una historia de usuario.
type HistoriaResponse struct {
	ID            int       `json:"id"`
	Titulo        string    `json:"titulo"`
	Descripcion   string    `json:"descripcion"`
	Estado        string    `json:"estado"`
	Prioridad     string    `json:"prioridad"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
