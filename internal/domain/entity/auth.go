// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// TokenType distinguishes the two classes of bearer token.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the identity fields embedded in a signed token.
type Claims struct {
	Subject uuid.UUID
	Email   string
	Role    Role
	Type    TokenType
}

// Identity is the caller resolved by the access guard for the in-flight request.
// StudentID and StaffID are only filled by the profile middlewares.
type Identity struct {
	AccountID uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	StudentID *uuid.UUID `json:"studentId,omitempty"`
	StaffID   *uuid.UUID `json:"staffId,omitempty"`
}

// IdentityFromClaims builds the request identity from verified token claims.
func IdentityFromClaims(claims *Claims) *Identity {
	return &Identity{
		AccountID: claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
	}
}

// ClaimsFor builds token claims for an account.
func ClaimsFor(account *Account) Claims {
	return Claims{
		Subject: account.ID,
		Email:   account.Email,
		Role:    account.Role,
	}
}
