package entity

import "time"

// Estados válidos de una historia de usuario (enumeración cerrada).
const (
	HistoriaEstadoPendiente  = "pendiente"
	HistoriaEstadoEnProgreso = "en_progreso"
	HistoriaEstadoCompletado = "completado"
)

// Prioridades válidas para historias y tickets.
const (
	PrioridadBaja  = "baja"
	PrioridadMedia = "media"
	PrioridadAlta  = "alta"
)

// HistoriaUsuario es una unidad de trabajo dentro de un Proyecto.
type HistoriaUsuario struct {
	ID            int
	ProyectoID    int
	Titulo        string
	Descripcion   string
	Estado        string
	Prioridad     string
	FechaCreacion time.Time

	// EmpresaID es la empresa dueña, resuelta vía JOIN con proyectos al leer.
	// No es una columna de historias_usuario.
	EmpresaID int
}

// EstadoHistoriaValido informa si s pertenece a la enumeración de estados.
func EstadoHistoriaValido(s string) bool {
	switch s {
	case HistoriaEstadoPendiente, HistoriaEstadoEnProgreso, HistoriaEstadoCompletado:
		return true
	}
	return false
}

// PrioridadValida informa si s es una prioridad reconocida.
func PrioridadValida(s string) bool {
	switch s {
	case PrioridadBaja, PrioridadMedia, PrioridadAlta:
		return true
	}
	return false
}
