package dto

import "time"

// LoginRequest entrada para login del operador.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
