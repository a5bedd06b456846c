package domain

import "time"

// LoginInput é o payload de /api/auth/authenticate.
type LoginInput struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"s3cret!"`
}

// RefreshInput é o payload de /api/auth/refresh-token.
type RefreshInput struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RevokeInput é o payload de /api/auth/revoke-token.
type RevokeInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse é devolvido após autenticação ou renovação de sessão.
type AuthResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// MessageResponse é uma resposta simples de confirmação.
type MessageResponse struct {
	Message string `json:"message" example:"Token revogado."`
}
