package dto

import "github.com/oguzk/fitpulse/internal/app/models"

// RegisterRequest is the payload for creating a new account
type RegisterRequest struct {
	Email     string          `json:"email" binding:"required,email" example:"jane@fitpulse.app"`
	Password  string          `json:"password" binding:"required,min=8" example:"Password123!"`
	FirstName string          `json:"firstName" binding:"required" example:"Jane"`
	LastName  string          `json:"lastName" binding:"required" example:"Doe"`
	Role      models.UserRole `json:"role,omitempty" example:"client"`
}

// LoginRequest is the payload for password authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@fitpulse.app"`
	Password string `json:"password" binding:"required" example:"Password123!"`
}

// AuthResponse carries the authenticated user together with an access token
type AuthResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"86400"`
}
