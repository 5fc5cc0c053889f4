package repository

import (
	"context"
	"errors"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStaffNotFound is returned when a staff profile does not exist.
var ErrStaffNotFound = errors.New("staff not found")

// StaffRepository covers staff profiles and the subjects they teach.
type StaffRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Staff, error)

	// ListSubjects returns the subjects taught by a staff member with their class preloaded.
	ListSubjects(ctx context.Context, staffID uuid.UUID) ([]*entity.Subject, error)

	// SummarizeSubjects is ListSubjects plus material and assignment counts per subject.
	SummarizeSubjects(ctx context.Context, staffID uuid.UUID) ([]*entity.SubjectSummary, error)
}
