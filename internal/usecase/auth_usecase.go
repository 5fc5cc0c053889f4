// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"sms/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// StudentProfileInput is the optional student profile created together with a student account.
type StudentProfileInput struct {
	FirstName  string
	LastName   string
	ClassName  string
	RollNumber int
	Phone      string
	Address    string
	DOB        *time.Time
}

// StaffProfileInput is the optional staff profile created together with a staff account.
type StaffProfileInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Department string
	Position   string
	Salary     *float64
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	Role     entity.Role
	Student  *StudentProfileInput
	Staff    *StaffProfileInput
}

// RefreshInput carries the refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.AccountView
}

// RegisterOutput returns the newly created account without its password hash.
type RegisterOutput struct {
	User *entity.AccountView
}

// RefreshOutput returns the re-issued access token.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)

	// Profile returns a copy of identity with the linked Student or Staff profile id filled in.
	Profile(ctx context.Context, identity *entity.Identity) (*entity.Identity, error)
}
