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
	"gorm.io/gorm/clause"
)

// lmsRepository implements repository.LMSRepository using GORM.
type lmsRepository struct {
	db *gorm.DB
}

// NewLMSRepository is the constructor for lmsRepository.
func NewLMSRepository(db *gorm.DB) repository.LMSRepository {
	return &lmsRepository{db: db}
}

func bySubject(db *gorm.DB, subjectID *uuid.UUID) *gorm.DB {
	if subjectID == nil {
		return db
	}

	return db.Where("subject_id = ?", *subjectID)
}

func (repo *lmsRepository) ListMaterials(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Material, error) {
	var materialsM []*model.MaterialModel
	err := bySubject(repo.db.WithContext(ctx), subjectID).
		Preload("Subject").
		Order("created_at DESC").
		Find(&materialsM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list materials")
	}

	materials := make([]*entity.Material, 0, len(materialsM))
	for _, m := range materialsM {
		materials = append(materials, toMaterialDomain(m))
	}

	return materials, nil
}

func (repo *lmsRepository) ListAssignments(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Assignment, error) {
	var assignmentsM []*model.AssignmentModel
	err := bySubject(repo.db.WithContext(ctx), subjectID).
		Preload("Subject").
		Preload("Submissions").
		Order("due_date DESC").
		Find(&assignmentsM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list assignments")
	}

	assignments := make([]*entity.Assignment, 0, len(assignmentsM))
	for _, a := range assignmentsM {
		assignments = append(assignments, toAssignmentDomain(a))
	}

	return assignments, nil
}

func (repo *lmsRepository) FindAssignment(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	var assignmentM model.AssignmentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find assignment")
	}

	return toAssignmentDomain(&assignmentM), nil
}

// UpsertSubmission replaces the file of an existing submission and resets it to submitted.
func (repo *lmsRepository) UpsertSubmission(ctx context.Context, submission *entity.Submission) error {
	submissionM := fromSubmissionDomain(submission)
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assignment_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"file_url", "file_name", "status", "submitted_at"}),
		}).
		Create(submissionM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert submission")
	}

	var stored model.SubmissionModel
	if err := repo.db.WithContext(ctx).
		Where("assignment_id = ? AND student_id = ?", submissionM.AssignmentID, submissionM.StudentID).
		First(&stored).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload submission")
	}
	*submission = *toSubmissionDomain(&stored)

	return nil
}

func (repo *lmsRepository) ListSubmissionsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Submission, error) {
	var submissionsM []*model.SubmissionModel
	if err := repo.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&submissionsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list submissions")
	}

	submissions := make([]*entity.Submission, 0, len(submissionsM))
	for _, s := range submissionsM {
		submissions = append(submissions, toSubmissionDomain(s))
	}

	return submissions, nil
}

func (repo *lmsRepository) ListQuizzes(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Quiz, error) {
	var quizzesM []*model.QuizModel
	err := bySubject(repo.db.WithContext(ctx), subjectID).
		Preload("Attempts").
		Order("created_at DESC").
		Find(&quizzesM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list quizzes")
	}

	quizzes := make([]*entity.Quiz, 0, len(quizzesM))
	for _, q := range quizzesM {
		quizzes = append(quizzes, toQuizDomain(q))
	}

	return quizzes, nil
}

func (repo *lmsRepository) FindQuiz(ctx context.Context, id uuid.UUID) (*entity.Quiz, error) {
	var quizM model.QuizModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&quizM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuizNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find quiz")
	}

	return toQuizDomain(&quizM), nil
}

func (repo *lmsRepository) CreateQuizAttempt(ctx context.Context, attempt *entity.QuizAttempt) error {
	attemptM := fromQuizAttemptDomain(attempt)
	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create quiz attempt")
	}

	attempt.ID = attemptM.ID

	return nil
}

// FindQuizAttempt loads an attempt and locks its row until the surrounding transaction ends.
func (repo *lmsRepository) FindQuizAttempt(ctx context.Context, id uuid.UUID) (*entity.QuizAttempt, error) {
	var attemptM model.QuizAttemptModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&attemptM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuizAttemptNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find quiz attempt")
	}

	return toQuizAttemptDomain(&attemptM), nil
}

func (repo *lmsRepository) UpdateQuizAttempt(ctx context.Context, attempt *entity.QuizAttempt) error {
	attemptM := fromQuizAttemptDomain(attempt)
	result := repo.db.WithContext(ctx).
		Model(&model.QuizAttemptModel{}).
		Where("id = ?", attempt.ID).
		Updates(map[string]any{
			"answers":      attemptM.Answers,
			"score":        attemptM.Score,
			"completed":    attemptM.Completed,
			"completed_at": attemptM.CompletedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update quiz attempt")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuizAttemptNotFound
	}

	return nil
}

func (repo *lmsRepository) ListCompletedAttemptsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.QuizAttempt, error) {
	var attemptsM []*model.QuizAttemptModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ? AND completed = ?", studentID, true).
		Find(&attemptsM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list quiz attempts")
	}

	attempts := make([]*entity.QuizAttempt, 0, len(attemptsM))
	for _, a := range attemptsM {
		attempts = append(attempts, toQuizAttemptDomain(a))
	}

	return attempts, nil
}
