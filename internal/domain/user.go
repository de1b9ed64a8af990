package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Image        *string   `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the minimal projection returned after successful credential
// verification. It carries no password material.
type Identity struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image,omitempty"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	// Register validates input, hashes the password and persists a new user.
	// Fails with a 400 AppError on invalid input and 409 on duplicate email.
	Register(ctx context.Context, input *RegisterInput) (*User, error)

	// VerifyCredentials returns the identity for a matching email/password
	// pair, or nil for any failure. It never returns an error so the
	// authentication boundary cannot distinguish failure causes.
	VerifyCredentials(ctx context.Context, input *LoginInput) *Identity
}
