package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación. Subject lleva el email de login. Type discrimina el tipo de
// actor ("empresa" o "usuario"); los tokens antiguos no lo traen y se
// resuelven por la vía legacy en el Resolver. Para usuarios se embeben
// EmpresaID y Rol para no requerir una segunda consulta.
type Claims struct {
	jwt.RegisteredClaims
	ID        int    `json:"id"`
	Type      string `json:"type,omitempty"` // "empresa" | "usuario" | "" (legacy)
	Rol       string `json:"rol,omitempty"`
	EmpresaID int    `json:"empresa_id,omitempty"`
}

// Config parámetros de firma y expiración.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// GenerateEmpresa genera un token firmado para una empresa autenticada.
func GenerateEmpresa(cfg Config, empresaID int, email string) (string, error) {
	return generate(cfg, Claims{
		ID:   empresaID,
		Type: "empresa",
	}, email)
}

// GenerateUsuario genera un token firmado para un usuario, embebiendo su
// empresa y rol.
func GenerateUsuario(cfg Config, usuarioID, empresaID int, email, rol string) (string, error) {
	return generate(cfg, Claims{
		ID:        usuarioID,
		Type:      "usuario",
		Rol:       rol,
		EmpresaID: empresaID,
	}, email)
}

func generate(cfg Config, claims Claims, email string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
