// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the Credential Store.
type AccountRepository interface {
	// FindByID retrieves an account with its linked profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account with its linked profile by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account together with its linked Student or Staff profile.
	// A duplicate email fails with domainerrors.ErrDuplicateEmail.
	Create(ctx context.Context, account *entity.Account) error
}
