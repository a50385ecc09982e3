package tenant

import "github.com/nomascartera/proyectos-api/internal/domain/entity"

// Owns decide si el actor pertenece a la empresa indicada. Es la única
// comparación de autorización del sistema; el resto de funciones solo
// resuelven el dueño de cada entidad antes de delegar aquí.
func Owns(a Actor, empresaID int) bool {
	if a == nil || empresaID == 0 {
		return false
	}
	return a.EmpresaID() == empresaID
}

// OwnsProyecto decide si el proyecto pertenece a la empresa del actor.
func OwnsProyecto(a Actor, p *entity.Proyecto) bool {
	return p != nil && Owns(a, p.EmpresaID)
}

// OwnsHistoria decide propiedad transitiva historia → proyecto → empresa.
// La historia debe venir con EmpresaID resuelto por el JOIN de lectura.
func OwnsHistoria(a Actor, h *entity.HistoriaUsuario) bool {
	return h != nil && Owns(a, h.EmpresaID)
}

// OwnsTicket decide propiedad transitiva ticket → historia → proyecto → empresa.
// El ticket debe venir con EmpresaID resuelto por el JOIN de lectura.
func OwnsTicket(a Actor, t *entity.Ticket) bool {
	return t != nil && Owns(a, t.EmpresaID)
}
