package postgres

import (
	"context"

	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	"sms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// studentRepository implements repository.StudentRepository using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	return repo.findOne(ctx, "students.id = ?", id)
}

func (repo *studentRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Student, error) {
	return repo.findOne(ctx, "students.account_id = ?", accountID)
}

func (repo *studentRepository) findOne(ctx context.Context, query string, arg any) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).
		Preload("Account").
		Where(query, arg).
		First(&studentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find student")
	}

	return toStudentDomain(&studentM), nil
}

// List returns students ordered by roll number, optionally restricted to one class.
func (repo *studentRepository) List(ctx context.Context, filter repository.StudentFilter) ([]*entity.Student, error) {
	var studentsM []*model.StudentModel
	db := repo.db.WithContext(ctx).Preload("Account")
	if filter.ClassName != "" {
		db = db.Where("class_name = ?", filter.ClassName)
	}
	if err := db.Order("roll_number ASC").Find(&studentsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list students")
	}

	students := make([]*entity.Student, 0, len(studentsM))
	for _, s := range studentsM {
		students = append(students, toStudentDomain(s))
	}

	return students, nil
}

func (repo *studentRepository) ListFees(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.Fee, error) {
	var feesM []*model.FeeModel
	db := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("due_date DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&feesM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list fees")
	}

	fees := make([]*entity.Fee, 0, len(feesM))
	for _, f := range feesM {
		fees = append(fees, toFeeDomain(f))
	}

	return fees, nil
}

// FindFee loads a fee and locks its row until the surrounding transaction ends.
func (repo *studentRepository) FindFee(ctx context.Context, feeID uuid.UUID) (*entity.Fee, error) {
	var feeM model.FeeModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", feeID).
		First(&feeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find fee")
	}

	return toFeeDomain(&feeM), nil
}

// UpdateFee writes the payment state of a fee.
func (repo *studentRepository) UpdateFee(ctx context.Context, fee *entity.Fee) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeeModel{}).
		Where("id = ?", fee.ID).
		Updates(map[string]any{
			"status":    string(fee.Status),
			"paid_date": fee.PaidDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update fee")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeeNotFound
	}

	return nil
}

func (repo *studentRepository) ListAttendance(ctx context.Context, studentID uuid.UUID, filter repository.AttendanceFilter) ([]*entity.Attendance, error) {
	var recordsM []*model.AttendanceModel
	db := repo.db.WithContext(ctx).Where("student_id = ?", studentID)
	if filter.From != nil {
		db = db.Where("date >= ?", datatypes.Date(entity.AttendanceDay(*filter.From)))
	}
	if filter.To != nil {
		db = db.Where("date <= ?", datatypes.Date(entity.AttendanceDay(*filter.To)))
	}
	db = db.Order("date DESC")
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if err := db.Find(&recordsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list attendance")
	}

	records := make([]*entity.Attendance, 0, len(recordsM))
	for _, r := range recordsM {
		records = append(records, toAttendanceDomain(r))
	}

	return records, nil
}

// UpsertAttendance relies on the (student_id, date) unique index so concurrent marks for
// the same day converge on one row.
func (repo *studentRepository) UpsertAttendance(ctx context.Context, attendance *entity.Attendance) error {
	recordM := fromAttendanceDomain(attendance)
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "remarks", "updated_at"}),
		}).
		Create(recordM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("student does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert attendance")
	}

	// Re-read so the caller sees the surviving row's id and timestamps.
	var stored model.AttendanceModel
	if err := repo.db.WithContext(ctx).
		Where("student_id = ? AND date = ?", recordM.StudentID, recordM.Date).
		First(&stored).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload attendance")
	}
	*attendance = *toAttendanceDomain(&stored)

	return nil
}

func (repo *studentRepository) ListGrades(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.Grade, error) {
	var gradesM []*model.GradeModel
	db := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&gradesM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list grades")
	}

	grades := make([]*entity.Grade, 0, len(gradesM))
	for _, g := range gradesM {
		grades = append(grades, toGradeDomain(g))
	}

	return grades, nil
}

func (repo *studentRepository) CreateGrade(ctx context.Context, grade *entity.Grade) error {
	gradeM := fromGradeDomain(grade)
	if err := repo.db.WithContext(ctx).Create(gradeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("student or subject does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("grade violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create grade")
	}

	grade.ID = gradeM.ID
	grade.CreatedAt = gradeM.CreatedAt

	return nil
}
