package postgres

import (
	"context"
	"time"

	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	"sms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// admissionRepository implements repository.AdmissionRepository using GORM.
type admissionRepository struct {
	db *gorm.DB
}

// NewAdmissionRepository is the constructor for admissionRepository.
func NewAdmissionRepository(db *gorm.DB) repository.AdmissionRepository {
	return &admissionRepository{db: db}
}

func (repo *admissionRepository) Create(ctx context.Context, form *entity.AdmissionForm) error {
	formM := fromAdmissionDomain(form)
	if err := repo.db.WithContext(ctx).Create(formM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required application information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admission application")
	}

	form.ID = formM.ID

	return nil
}

func (repo *admissionRepository) List(ctx context.Context, status entity.AdmissionStatus) ([]*entity.AdmissionForm, error) {
	var formsM []*model.AdmissionFormModel
	db := repo.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", string(status))
	}
	if err := db.Order("submitted_at DESC").Find(&formsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list admission applications")
	}

	forms := make([]*entity.AdmissionForm, 0, len(formsM))
	for _, f := range formsM {
		forms = append(forms, toAdmissionDomain(f))
	}

	return forms, nil
}

func (repo *admissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdmissionForm, error) {
	var formM model.AdmissionFormModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&formM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find admission application")
	}

	return toAdmissionDomain(&formM), nil
}

// UpdateStatus records the review decision and returns the updated application.
func (repo *admissionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AdmissionStatus, remarks string, reviewedAt time.Time) (*entity.AdmissionForm, error) {
	var formM model.AdmissionFormModel
	result := repo.db.WithContext(ctx).
		Model(&formM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      string(status),
			"remarks":     remarks,
			"reviewed_at": reviewedAt,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admission status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrApplicationNotFound
	}

	return toAdmissionDomain(&formM), nil
}

type statusCount struct {
	Status string
	Count  int64
}

func (repo *admissionRepository) CountByStatus(ctx context.Context) (map[entity.AdmissionStatus]int64, error) {
	var rows []statusCount
	err := repo.db.WithContext(ctx).
		Model(&model.AdmissionFormModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count admission applications")
	}

	counts := make(map[entity.AdmissionStatus]int64, len(rows))
	for _, r := range rows {
		counts[entity.AdmissionStatus(r.Status)] = r.Count
	}

	return counts, nil
}
