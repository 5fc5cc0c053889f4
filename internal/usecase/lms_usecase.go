package usecase

import (
	"context"
	"encoding/json"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitAssignmentInput is a (re)submission of an assignment by a student.
type SubmitAssignmentInput struct {
	AssignmentID uuid.UUID
	StudentID    uuid.UUID
	FileURL      string
	FileName     string
}

// SubmitQuizAttemptInput completes a quiz attempt owned by StudentID.
type SubmitQuizAttemptInput struct {
	AttemptID uuid.UUID
	StudentID uuid.UUID
	Answers   json.RawMessage
	Score     *float64
}

// LMSUsecase is the learning management surface. A nil subjectID lists across subjects.
type LMSUsecase interface {
	Materials(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Material, error)
	Assignments(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Assignment, error)
	SubmitAssignment(ctx context.Context, input SubmitAssignmentInput) (*entity.Submission, error)
	Quizzes(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Quiz, error)
	StartQuiz(ctx context.Context, quizID, studentID uuid.UUID) (*entity.QuizAttempt, error)
	SubmitQuizAttempt(ctx context.Context, input SubmitQuizAttemptInput) (*entity.QuizAttempt, error)
	Progress(ctx context.Context, studentID uuid.UUID) (*entity.LearningProgress, error)
}
