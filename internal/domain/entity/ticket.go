package entity

import "time"

// Estados válidos de un ticket (enumeración cerrada).
const (
	TicketEstadoAbierto    = "abierto"
	TicketEstadoEnProgreso = "en_progreso"
	TicketEstadoCerrado    = "cerrado"
)

// Ticket es un elemento accionable bajo una HistoriaUsuario.
type Ticket struct {
	ID                int
	HistoriaUsuarioID int
	Asunto            string
	Descripcion       string
	Estado            string
	Prioridad         string
	FechaCreacion     time.Time

	// EmpresaID es la empresa dueña, resuelta vía JOIN historia → proyecto.
	// No es una columna de tickets.
	EmpresaID int
}

// EstadoTicketValido informa si s pertenece a la enumeración de estados.
func EstadoTicketValido(s string) bool {
	switch s {
	case TicketEstadoAbierto, TicketEstadoEnProgreso, TicketEstadoCerrado:
		return true
	}
	return false
}
