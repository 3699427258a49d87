package dto

import "time"

// SessionTokenRequest carries the caller-supplied identity claims.
type SessionTokenRequest struct {
	Email string `json:"email"`
}

// SessionTokenResponse returns the signed credential.
type SessionTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterUserRequest payload for new users.
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse is the public view of a directory entry.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminCheckResponse answers the self admin-check.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
