package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type admissionService struct {
	admissionRepo repository.AdmissionRepository
	logger        *slog.Logger
	now           func() time.Time
}

// AdmissionServiceParams holds dependencies for AdmissionService, injected by Fx.
type AdmissionServiceParams struct {
	fx.In

	AdmissionRepo repository.AdmissionRepository
	Logger        *slog.Logger
}

// NewAdmissionService creates a new admission service.
func NewAdmissionService(params AdmissionServiceParams) usecase.AdmissionUsecase {
	return &admissionService{
		admissionRepo: params.AdmissionRepo,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *admissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Apply stores a new application as pending.
func (srv *admissionService) Apply(ctx context.Context, input usecase.ApplyInput) (*entity.AdmissionForm, error) {
	form := &entity.AdmissionForm{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Email:       entity.NormalizeEmail(input.Email),
		Phone:       input.Phone,
		DOB:         input.DOB,
		Address:     input.Address,
		ClassName:   input.ClassName,
		Documents:   input.Documents,
		Status:      entity.AdmissionPending,
		SubmittedAt: srv.now().UTC(),
	}

	if err := srv.admissionRepo.Create(ctx, form); err != nil {
		srv.log(ctx).Error("Failed to store admission application", slog.String("email", form.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create admission application")
	}

	srv.log(ctx).Info("Admission application submitted", slog.Any("applicationID", form.ID), slog.String("className", form.ClassName))

	return form, nil
}

func (srv *admissionService) List(ctx context.Context, status entity.AdmissionStatus) ([]*entity.AdmissionForm, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown admission status")
	}

	forms, err := srv.admissionRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admission applications")
	}

	return forms, nil
}

func (srv *admissionService) Get(ctx context.Context, id uuid.UUID) (*entity.AdmissionForm, error) {
	form, err := srv.admissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapApplicationError(err, "failed to find admission application")
	}

	return form, nil
}

// UpdateStatus records a review decision. Any status may follow any other.
func (srv *admissionService) UpdateStatus(ctx context.Context, input usecase.UpdateAdmissionStatusInput) (*entity.AdmissionForm, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown admission status")
	}

	form, err := srv.admissionRepo.UpdateStatus(ctx, input.ID, input.Status, input.Remarks, srv.now().UTC())
	if err != nil {
		return nil, mapApplicationError(err, "failed to update admission status")
	}

	srv.log(ctx).Info("Admission application reviewed", slog.Any("applicationID", form.ID), slog.Any("status", form.Status))

	return form, nil
}

// Stats counts applications per status. Total is the sum of the four buckets.
func (srv *admissionService) Stats(ctx context.Context) (*entity.AdmissionStats, error) {
	counts, err := srv.admissionRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count admission applications")
	}

	stats := &entity.AdmissionStats{
		Pending:     counts[entity.AdmissionPending],
		Shortlisted: counts[entity.AdmissionShortlisted],
		Accepted:    counts[entity.AdmissionAccepted],
		Rejected:    counts[entity.AdmissionRejected],
	}
	stats.Total = stats.Pending + stats.Shortlisted + stats.Accepted + stats.Rejected

	return stats, nil
}

func mapApplicationError(err error, message string) error {
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return errors.Wrap(domainerrors.ErrApplicationNotFound, message)
	}

	return errors.Wrap(err, message)
}
