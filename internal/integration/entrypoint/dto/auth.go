// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/lifeplan/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints. It
// carries the bearer token plus the hydrated ledger so the client can render
// immediately after login.
type AuthResponse struct {
	Token string              `json:"token"`
	User  UserResponse        `json:"user"`
	State LedgerStateResponse `json:"state"`
}

// UserResponse represents the authenticated identity in API responses.
type UserResponse struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ToUserResponse converts a domain Identity to a UserResponse DTO.
func ToUserResponse(identity entity.Identity) UserResponse {
	return UserResponse{
		UID:   identity.UID,
		Name:  identity.Name,
		Email: identity.Email,
	}
}
