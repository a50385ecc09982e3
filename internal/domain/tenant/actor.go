// Package tenant contiene el núcleo de autorización multi-tenant: la
// representación del actor autenticado (empresa o usuario) y las funciones
// puras que deciden propiedad siguiendo la cadena ticket → historia →
// proyecto → empresa.
package tenant

// Tipos de actor reconocidos en el claim "type" del token.
const (
	KindEmpresa = "empresa"
	KindUsuario = "usuario"
)

// Actor es el principal autenticado. Cada variante expone la empresa efectiva
// a la que pertenece: la propia para una empresa, la empresa empleadora para
// un usuario. Toda decisión de autorización se reduce a comparar este ID.
type Actor interface {
	// EmpresaID devuelve la empresa efectiva del actor.
	EmpresaID() int
	// Kind devuelve el discriminador del actor (empresa o usuario).
	Kind() string
}

// EmpresaActor es una empresa autenticada actuando sobre sus propios recursos.
type EmpresaActor struct {
	ID     int
	Nombre string
}

func (a EmpresaActor) EmpresaID() int { return a.ID }
func (a EmpresaActor) Kind() string   { return KindEmpresa }

// UsuarioActor es un usuario autenticado; opera en nombre de su empresa.
type UsuarioActor struct {
	ID      int
	Empresa int
	Email   string
	Rol     string
}

func (a UsuarioActor) EmpresaID() int { return a.Empresa }
func (a UsuarioActor) Kind() string   { return KindUsuario }
