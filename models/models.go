package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User represents a registered account.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"createdAt"`
}

// Claims defines the information stored in the JWT.
type Claims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

// CredentialsRequest is the body of both registration and login requests.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GoogleLoginRequest carries a Google-issued ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// CreateTaskRequest is the body of a task creation request. There is no
// owner field; the owner is always the authenticated caller.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateTaskRequest is a partial update; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
