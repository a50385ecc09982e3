package dto

import "time"

// RegistroEmpresaRequest entrada para registrar una empresa (tenant).
type RegistroEmpresaRequest struct {
	Nombre                   string `json:"nombre"`
	IdentificacionTributaria string `json:"identificacion_tributaria"`
	EmailContacto            string `json:"email_contacto"`
	Password                 string `json:"password"`
	TelefonoContacto         string `json:"telefono_contacto"`
	Direccion                string `json:"direccion"`
	Pais                     string `json:"pais"`
	Ciudad                   string `json:"ciudad"`
}

// LoginEmpresaRequest credenciales de login de empresa.
type LoginEmpresaRequest struct {
	EmailContacto string `json:"email_contacto"`
	Password      string `json:"password"`
}

// UpdateEmpresaRequest actualización parcial de la empresa propia.
type UpdateEmpresaRequest struct {
	Nombre             *string `json:"nombre"`
	TelefonoContacto   *string `json:"telefono_contacto"`
	Direccion          *string `json:"direccion"`
	Pais               *string `json:"pais"`
	Ciudad             *string `json:"ciudad"`
	WhatsappHabilitado *bool   `json:"whatsapp_habilitado"`
	Activa             *bool   `json:"activa"`
}

// EmpresaResponse salida de una empresa (sin exponer la contraseña).
type EmpresaResponse struct {
	ID                       int        `json:"id"`
	Nombre                   string     `json:"nombre"`
	IdentificacionTributaria string     `json:"identificacion_tributaria"`
	EmailContacto            string     `json:"email_contacto"`
	TelefonoContacto         string     `json:"telefono_contacto"`
	Direccion                string     `json:"direccion"`
	Pais                     string     `json:"pais"`
	Ciudad                   string     `json:"ciudad"`
	Activa                   bool       `json:"activa"`
	WhatsappHabilitado       bool       `json:"whatsapp_habilitado"`
	WhatsappConectadoEn      *time.Time `json:"whatsapp_conectado_en,omitempty"`
	FechaRegistro            time.Time  `json:"fecha_registro"`
	ActualizadaEn            *time.Time `json:"actualizada_en,omitempty"`
}

// EmpresaResumenResponse entrada del listado resumido de empresas.
type EmpresaResumenResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// LoginEmpresaResponse token de acceso más identificación de la empresa.
type LoginEmpresaResponse struct {
	AccessToken   string `json:"access_token"`
	TokenType     string `json:"token_type"`
	EmpresaID     int    `json:"empresa_id"`
	EmpresaNombre string `json:"empresa_nombre"`
}
