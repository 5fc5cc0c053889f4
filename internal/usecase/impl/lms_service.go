package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

var emptyAnswers = json.RawMessage(`{}`)

type lmsService struct {
	txManager repository.TransactionManager
	lmsRepo   repository.LMSRepository
	logger    *slog.Logger
	now       func() time.Time
}

// LMSServiceParams holds dependencies for LMSService, injected by Fx.
type LMSServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LMSRepo   repository.LMSRepository
	Logger    *slog.Logger
}

// NewLMSService creates a new learning management service.
func NewLMSService(params LMSServiceParams) usecase.LMSUsecase {
	return &lmsService{
		txManager: params.TxManager,
		lmsRepo:   params.LMSRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *lmsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *lmsService) Materials(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Material, error) {
	materials, err := srv.lmsRepo.ListMaterials(ctx, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list materials")
	}

	return materials, nil
}

func (srv *lmsService) Assignments(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Assignment, error) {
	assignments, err := srv.lmsRepo.ListAssignments(ctx, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assignments")
	}

	return assignments, nil
}

// SubmitAssignment creates or replaces the caller's submission. A resubmission resets grading.
func (srv *lmsService) SubmitAssignment(ctx context.Context, input usecase.SubmitAssignmentInput) (*entity.Submission, error) {
	if _, err := srv.lmsRepo.FindAssignment(ctx, input.AssignmentID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAssignmentNotFound, "failed to find assignment")
		}

		return nil, errors.Wrap(err, "failed to find assignment")
	}

	submission := &entity.Submission{
		AssignmentID: input.AssignmentID,
		StudentID:    input.StudentID,
		FileURL:      input.FileURL,
		FileName:     input.FileName,
		Status:       entity.SubmissionSubmitted,
		SubmittedAt:  srv.now().UTC(),
	}
	if err := srv.lmsRepo.UpsertSubmission(ctx, submission); err != nil {
		return nil, errors.Wrap(err, "failed to store submission")
	}

	srv.log(ctx).Info("Assignment submitted", slog.Any("assignmentID", input.AssignmentID), slog.Any("studentID", input.StudentID))

	return submission, nil
}

func (srv *lmsService) Quizzes(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Quiz, error) {
	quizzes, err := srv.lmsRepo.ListQuizzes(ctx, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quizzes")
	}

	return quizzes, nil
}

// StartQuiz opens a new attempt with empty answers. Starting again opens another attempt.
func (srv *lmsService) StartQuiz(ctx context.Context, quizID, studentID uuid.UUID) (*entity.QuizAttempt, error) {
	if _, err := srv.lmsRepo.FindQuiz(ctx, quizID); err != nil {
		if errors.Is(err, repository.ErrQuizNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQuizNotFound, "failed to find quiz")
		}

		return nil, errors.Wrap(err, "failed to find quiz")
	}

	attempt := &entity.QuizAttempt{
		QuizID:    quizID,
		StudentID: studentID,
		Answers:   emptyAnswers,
		StartedAt: srv.now().UTC(),
	}
	if err := srv.lmsRepo.CreateQuizAttempt(ctx, attempt); err != nil {
		return nil, errors.Wrap(err, "failed to create quiz attempt")
	}

	return attempt, nil
}

// SubmitQuizAttempt completes an attempt owned by the student. Attempts of other students
// are reported as not found; a completed attempt cannot be submitted twice.
func (srv *lmsService) SubmitQuizAttempt(ctx context.Context, input usecase.SubmitQuizAttemptInput) (*entity.QuizAttempt, error) {
	var attempt *entity.QuizAttempt
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		lmsRepo := factory.LMSRepo()

		var err error
		attempt, err = lmsRepo.FindQuizAttempt(ctx, input.AttemptID)
		if err != nil {
			if errors.Is(err, repository.ErrQuizAttemptNotFound) {
				return errors.Wrap(domainerrors.ErrQuizAttemptNotFound, "failed to find quiz attempt")
			}

			return errors.Wrap(err, "failed to find quiz attempt")
		}
		if attempt.StudentID != input.StudentID {
			srv.log(ctx).Warn("Attempt to submit another student's quiz attempt",
				slog.Any("attemptID", input.AttemptID),
				slog.Any("studentID", input.StudentID),
			)

			return errors.Wrap(domainerrors.ErrQuizAttemptNotFound, "quiz attempt does not belong to student")
		}
		if attempt.Completed {
			return errors.Wrap(domainerrors.ErrQuizAttemptCompleted, "quiz attempt already submitted")
		}

		completedAt := srv.now().UTC()
		attempt.Answers = input.Answers
		if len(attempt.Answers) == 0 {
			attempt.Answers = emptyAnswers
		}
		attempt.Score = input.Score
		attempt.Completed = true
		attempt.CompletedAt = &completedAt

		return errors.Wrap(lmsRepo.UpdateQuizAttempt(ctx, attempt), "failed to update quiz attempt")
	})
	if err != nil {
		return nil, err
	}

	return attempt, nil
}

// Progress summarizes the student's submissions and completed quiz attempts.
func (srv *lmsService) Progress(ctx context.Context, studentID uuid.UUID) (*entity.LearningProgress, error) {
	var (
		submissions []*entity.Submission
		attempts    []*entity.QuizAttempt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		submissions, err = srv.lmsRepo.ListSubmissionsByStudent(gctx, studentID)

		return errors.Wrap(err, "failed to list submissions")
	})
	g.Go(func() error {
		var err error
		attempts, err = srv.lmsRepo.ListCompletedAttemptsByStudent(gctx, studentID)

		return errors.Wrap(err, "failed to list quiz attempts")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entity.ComputeProgress(submissions, attempts), nil
}
