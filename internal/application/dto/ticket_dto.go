package dto

import "time"

// CreateTicketRequest entrada para crear un ticket bajo una historia.
type CreateTicketRequest struct {
	HistoriaUsuarioID int    `json:"historia_usuario_id"`
	Asunto            string `json:"asunto"`
	Descripcion       string `json:"descripcion"`
	Estado            string `json:"estado"`
	Prioridad         string `json:"prioridad"`
}

// UpdateTicketRequest entrada para actualizar un ticket completo.
type UpdateTicketRequest struct {
	Asunto      string `json:"asunto"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
	Prioridad   string `json:"prioridad"`
}

// TicketEstadoUpdateRequest cambio de estado aislado (PATCH); el resto de
// campos del ticket no se tocan.
type TicketEstadoUpdateRequest struct {
	Estado string `json:"estado"`
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID            int       `json:"id"`
	Asunto        string    `json:"asunto"`
	Descripcion   string    `json:"descripcion"`
	Estado        string    `json:"estado"`
	Prioridad     string    `json:"prioridad"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
