package repository

import (
	"context"
	"errors"
	"time"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApplicationNotFound is returned when an admission application does not exist.
var ErrApplicationNotFound = errors.New("admission application not found")

// AdmissionRepository persists admission applications.
type AdmissionRepository interface {
	Create(ctx context.Context, form *entity.AdmissionForm) error

	// List returns applications newest first. An empty status lists every application.
	List(ctx context.Context, status entity.AdmissionStatus) ([]*entity.AdmissionForm, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdmissionForm, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AdmissionStatus, remarks string, reviewedAt time.Time) (*entity.AdmissionForm, error)

	// CountByStatus returns the number of applications per status.
	CountByStatus(ctx context.Context) (map[entity.AdmissionStatus]int64, error)
}
