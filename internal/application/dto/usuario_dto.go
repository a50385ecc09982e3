package dto

// CreateUsuarioRequest entrada para crear un usuario bajo una empresa.
type CreateUsuarioRequest struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Rol       string `json:"rol"`
	EmpresaID int    `json:"empresa_id"`
}

// LoginUsuarioRequest credenciales de login de usuario.
type LoginUsuarioRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse salida de un usuario (sin hash de contraseña).
type UsuarioResponse struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	EmpresaID int    `json:"empresa_id"`
	Activo    bool   `json:"activo"`
}

// UsuarioTokenResponse usuario más su token de acceso (registro y login).
type UsuarioTokenResponse struct {
	Usuario     UsuarioResponse `json:"usuario"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
}
