package repository

import (
	"context"
	"errors"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrQuizAttemptNotFound = errors.New("quiz attempt not found")
)

// LMSRepository persists learning materials, assignments, submissions, quizzes and attempts.
// A nil subjectID lists across all subjects.
type LMSRepository interface {
	ListMaterials(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Material, error)

	ListAssignments(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Assignment, error)
	FindAssignment(ctx context.Context, id uuid.UUID) (*entity.Assignment, error)

	// UpsertSubmission inserts or replaces the submission keyed by (AssignmentID, StudentID).
	UpsertSubmission(ctx context.Context, submission *entity.Submission) error
	ListSubmissionsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Submission, error)

	ListQuizzes(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Quiz, error)
	FindQuiz(ctx context.Context, id uuid.UUID) (*entity.Quiz, error)

	CreateQuizAttempt(ctx context.Context, attempt *entity.QuizAttempt) error
	// FindQuizAttempt locks the attempt row when called inside a transaction.
	FindQuizAttempt(ctx context.Context, id uuid.UUID) (*entity.QuizAttempt, error)
	UpdateQuizAttempt(ctx context.Context, attempt *entity.QuizAttempt) error
	ListCompletedAttemptsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.QuizAttempt, error)
}
