// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is the identity record used to log in. An account carries exactly one role
// and at most one linked profile: Student for student accounts, Staff for staff accounts.
type Account struct {
	ID           uuid.UUID
	Email        string // Stored normalized, see NormalizeEmail.
	PasswordHash string
	Role         Role
	Student      *Student
	Staff        *Staff
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountView is the public projection of an Account. It never carries the password hash.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Student   *Student  `json:"student,omitempty"`
	Staff     *Staff    `json:"staff,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// View returns the sanitized public view of the account.
func (a *Account) View() *AccountView {
	if a == nil {
		return nil
	}

	return &AccountView{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		Student:   a.Student,
		Staff:     a.Staff,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// NormalizeEmail trims and lower-cases an email so lookups compare case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
