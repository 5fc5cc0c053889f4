package postgres

import (
	"context"

	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	"sms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// staffRepository implements repository.StaffRepository using GORM.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (repo *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *staffRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Staff, error) {
	return repo.findOne(ctx, "account_id = ?", accountID)
}

func (repo *staffRepository) findOne(ctx context.Context, query string, arg any) (*entity.Staff, error) {
	var staffM model.StaffModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find staff")
	}

	return toStaffDomain(&staffM), nil
}

func (repo *staffRepository) ListSubjects(ctx context.Context, staffID uuid.UUID) ([]*entity.Subject, error) {
	subjectsM, err := repo.listSubjects(ctx, staffID)
	if err != nil {
		return nil, err
	}

	subjects := make([]*entity.Subject, 0, len(subjectsM))
	for _, s := range subjectsM {
		subjects = append(subjects, toSubjectDomain(s))
	}

	return subjects, nil
}

type subjectCount struct {
	SubjectID uuid.UUID
	Count     int64
}

// SummarizeSubjects loads the subjects and then counts materials and assignments with
// one grouped query each.
func (repo *staffRepository) SummarizeSubjects(ctx context.Context, staffID uuid.UUID) ([]*entity.SubjectSummary, error) {
	subjectsM, err := repo.listSubjects(ctx, staffID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.SubjectSummary, 0, len(subjectsM))
	if len(subjectsM) == 0 {
		return summaries, nil
	}

	ids := make([]uuid.UUID, 0, len(subjectsM))
	for _, s := range subjectsM {
		ids = append(ids, s.ID)
	}

	materialCounts, err := repo.countBySubject(ctx, &model.MaterialModel{}, ids)
	if err != nil {
		return nil, err
	}
	assignmentCounts, err := repo.countBySubject(ctx, &model.AssignmentModel{}, ids)
	if err != nil {
		return nil, err
	}

	for _, s := range subjectsM {
		summaries = append(summaries, &entity.SubjectSummary{
			Subject:         *toSubjectDomain(s),
			MaterialCount:   materialCounts[s.ID],
			AssignmentCount: assignmentCounts[s.ID],
		})
	}

	return summaries, nil
}

func (repo *staffRepository) listSubjects(ctx context.Context, staffID uuid.UUID) ([]*model.SubjectModel, error) {
	var subjectsM []*model.SubjectModel
	err := repo.db.WithContext(ctx).
		Preload("Class").
		Where("staff_id = ?", staffID).
		Order("name ASC").
		Find(&subjectsM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list subjects")
	}

	return subjectsM, nil
}

func (repo *staffRepository) countBySubject(ctx context.Context, table any, subjectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []subjectCount
	err := repo.db.WithContext(ctx).
		Model(table).
		Select("subject_id, COUNT(*) AS count").
		Where("subject_id IN ?", subjectIDs).
		Group("subject_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count subject content")
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.SubjectID] = r.Count
	}

	return counts, nil
}
