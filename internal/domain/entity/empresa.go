package entity

import "time"

// Empresa representa una organización/tenant del sistema. Toda entidad del
// dominio pertenece, directa o transitivamente, a exactamente una empresa.
type Empresa struct {
	ID                       int
	Nombre                   string
	IdentificacionTributaria string // NIT u otro identificador fiscal (único)
	EmailContacto            string // único; usado como sub del token JWT
	HashedPassword           string // bcrypt, nunca en claro después de persistir
	TelefonoContacto         string
	Direccion                string
	Pais                     string
	Ciudad                   string

	// Integración WhatsApp Cloud API (ajena al core de autorización).
	WhatsappPhoneNumberID string
	WhatsappBusinessID    string
	WhatsappAccessToken   string
	WhatsappHabilitado    bool
	WhatsappConectadoEn   *time.Time

	Activa        bool
	FechaRegistro time.Time
	ActualizadaEn *time.Time
}
