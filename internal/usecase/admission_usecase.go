package usecase

import (
	"context"
	"time"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplyInput is a new admission application.
type ApplyInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	DOB       time.Time
	Address   string
	ClassName string
	Documents []entity.AdmissionDocument
}

// UpdateAdmissionStatusInput is a review decision on an application.
type UpdateAdmissionStatusInput struct {
	ID      uuid.UUID
	Status  entity.AdmissionStatus
	Remarks string
}

// AdmissionUsecase defines the admission workflow.
type AdmissionUsecase interface {
	Apply(ctx context.Context, input ApplyInput) (*entity.AdmissionForm, error)

	// List returns applications newest first. An empty status lists all of them.
	List(ctx context.Context, status entity.AdmissionStatus) ([]*entity.AdmissionForm, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.AdmissionForm, error)
	UpdateStatus(ctx context.Context, input UpdateAdmissionStatusInput) (*entity.AdmissionForm, error)
	Stats(ctx context.Context) (*entity.AdmissionStats, error)
}
