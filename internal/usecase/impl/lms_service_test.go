package impl

import (
	"context"
	"encoding/json"
	"testing"

	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	mockRepo "sms/internal/mocks/repository"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLMSService(t *testing.T) (*lmsService, *mockRepo.MockLMSRepository) {
	repo := mockRepo.NewMockLMSRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.On("Execute", mock.Anything, mock.Anything).Return(&mockRepo.MockRepositoryFactory{LMS: repo}).Maybe()
	srv := NewLMSService(LMSServiceParams{TxManager: txManager, LMSRepo: repo, Logger: newDiscardLogger()}).(*lmsService)
	srv.now = fixedClock

	return srv, repo
}

func TestLMSService_ListsPassSubjectFilter(t *testing.T) {
	srv, repo := createTestLMSService(t)
	subjectID := uuid.New()

	repo.On("ListMaterials", mock.Anything, &subjectID).Return([]*entity.Material{{Title: "Notes"}}, nil)
	repo.On("ListAssignments", mock.Anything, (*uuid.UUID)(nil)).Return([]*entity.Assignment{}, nil)
	repo.On("ListQuizzes", mock.Anything, &subjectID).Return([]*entity.Quiz{{Title: "Q1"}}, nil)

	materials, err := srv.Materials(context.Background(), &subjectID)
	require.NoError(t, err)
	assert.Len(t, materials, 1)

	assignments, err := srv.Assignments(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, assignments)

	quizzes, err := srv.Quizzes(context.Background(), &subjectID)
	require.NoError(t, err)
	assert.Len(t, quizzes, 1)
}

func TestLMSService_SubmitAssignment(t *testing.T) {
	srv, repo := createTestLMSService(t)
	assignmentID, studentID := uuid.New(), uuid.New()

	repo.On("FindAssignment", mock.Anything, assignmentID).Return(&entity.Assignment{ID: assignmentID}, nil)
	repo.On("UpsertSubmission", mock.Anything, mock.AnythingOfType("*entity.Submission")).Return(nil)

	got, err := srv.SubmitAssignment(context.Background(), usecase.SubmitAssignmentInput{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		FileURL:      "https://files/essay.pdf",
		FileName:     "essay.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionSubmitted, got.Status)
	assert.Equal(t, fixedNow, got.SubmittedAt)
	assert.Nil(t, got.Marks)
}

func TestLMSService_SubmitAssignment_UnknownAssignment(t *testing.T) {
	srv, repo := createTestLMSService(t)
	assignmentID := uuid.New()
	repo.On("FindAssignment", mock.Anything, assignmentID).Return(nil, repository.ErrAssignmentNotFound)

	_, err := srv.SubmitAssignment(context.Background(), usecase.SubmitAssignmentInput{AssignmentID: assignmentID})

	require.ErrorIs(t, err, domainerrors.ErrAssignmentNotFound)
}

func TestLMSService_StartQuiz(t *testing.T) {
	srv, repo := createTestLMSService(t)
	quizID, studentID := uuid.New(), uuid.New()

	repo.On("FindQuiz", mock.Anything, quizID).Return(&entity.Quiz{ID: quizID}, nil)
	repo.On("CreateQuizAttempt", mock.Anything, mock.AnythingOfType("*entity.QuizAttempt")).Return(nil)

	attempt, err := srv.StartQuiz(context.Background(), quizID, studentID)

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(attempt.Answers))
	assert.False(t, attempt.Completed)
	assert.Equal(t, fixedNow, attempt.StartedAt)
}

func TestLMSService_StartQuiz_UnknownQuiz(t *testing.T) {
	srv, repo := createTestLMSService(t)
	quizID := uuid.New()
	repo.On("FindQuiz", mock.Anything, quizID).Return(nil, repository.ErrQuizNotFound)

	_, err := srv.StartQuiz(context.Background(), quizID, uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrQuizNotFound)
}

func TestLMSService_SubmitQuizAttempt(t *testing.T) {
	srv, repo := createTestLMSService(t)
	attemptID, studentID := uuid.New(), uuid.New()
	attempt := &entity.QuizAttempt{ID: attemptID, StudentID: studentID, Answers: json.RawMessage(`{}`)}

	repo.On("FindQuizAttempt", mock.Anything, attemptID).Return(attempt, nil)
	repo.On("UpdateQuizAttempt", mock.Anything, attempt).Return(nil)

	got, err := srv.SubmitQuizAttempt(context.Background(), usecase.SubmitQuizAttemptInput{
		AttemptID: attemptID,
		StudentID: studentID,
		Answers:   json.RawMessage(`{"q1":"b"}`),
		Score:     ptr(8.5),
	})

	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, 8.5, *got.Score)
	assert.JSONEq(t, `{"q1":"b"}`, string(got.Answers))
	assert.Equal(t, fixedNow, *got.CompletedAt)
}

func TestLMSService_SubmitQuizAttempt_Rejections(t *testing.T) {
	t.Run("other student", func(t *testing.T) {
		srv, repo := createTestLMSService(t)
		attemptID := uuid.New()
		repo.On("FindQuizAttempt", mock.Anything, attemptID).Return(&entity.QuizAttempt{ID: attemptID, StudentID: uuid.New()}, nil)

		_, err := srv.SubmitQuizAttempt(context.Background(), usecase.SubmitQuizAttemptInput{AttemptID: attemptID, StudentID: uuid.New()})

		require.ErrorIs(t, err, domainerrors.ErrQuizAttemptNotFound)
	})

	t.Run("already completed", func(t *testing.T) {
		srv, repo := createTestLMSService(t)
		attemptID, studentID := uuid.New(), uuid.New()
		repo.On("FindQuizAttempt", mock.Anything, attemptID).Return(&entity.QuizAttempt{ID: attemptID, StudentID: studentID, Completed: true}, nil)

		_, err := srv.SubmitQuizAttempt(context.Background(), usecase.SubmitQuizAttemptInput{AttemptID: attemptID, StudentID: studentID})

		require.ErrorIs(t, err, domainerrors.ErrQuizAttemptCompleted)
	})

	t.Run("missing", func(t *testing.T) {
		srv, repo := createTestLMSService(t)
		attemptID := uuid.New()
		repo.On("FindQuizAttempt", mock.Anything, attemptID).Return(nil, repository.ErrQuizAttemptNotFound)

		_, err := srv.SubmitQuizAttempt(context.Background(), usecase.SubmitQuizAttemptInput{AttemptID: attemptID})

		require.ErrorIs(t, err, domainerrors.ErrQuizAttemptNotFound)
	})
}

func TestLMSService_Progress(t *testing.T) {
	srv, repo := createTestLMSService(t)
	studentID := uuid.New()

	repo.On("ListSubmissionsByStudent", mock.Anything, studentID).Return([]*entity.Submission{
		{Status: entity.SubmissionGraded},
		{Status: entity.SubmissionSubmitted},
	}, nil)
	repo.On("ListCompletedAttemptsByStudent", mock.Anything, studentID).Return([]*entity.QuizAttempt{
		{Score: ptr(6.0), Completed: true},
		{Score: ptr(9.0), Completed: true},
	}, nil)

	progress, err := srv.Progress(context.Background(), studentID)

	require.NoError(t, err)
	assert.Equal(t, 2, progress.Assignments.Total)
	assert.Equal(t, 1, progress.Assignments.Graded)
	assert.Equal(t, 2, progress.Quizzes.Total)
	assert.InDelta(t, 7.5, progress.Quizzes.AverageScore, 1e-9)
}

func TestLMSService_Progress_NoActivity(t *testing.T) {
	srv, repo := createTestLMSService(t)
	studentID := uuid.New()
	repo.On("ListSubmissionsByStudent", mock.Anything, studentID).Return(nil, nil)
	repo.On("ListCompletedAttemptsByStudent", mock.Anything, studentID).Return(nil, nil)

	progress, err := srv.Progress(context.Background(), studentID)

	require.NoError(t, err)
	assert.Zero(t, progress.Quizzes.AverageScore)
	assert.Zero(t, progress.Assignments.Total)
}

func TestLMSService_SubmitQuizAttempt_UpdateFailure(t *testing.T) {
	srv, repo := createTestLMSService(t)
	studentID, attemptID := uuid.New(), uuid.New()
	attempt := &entity.QuizAttempt{ID: attemptID, StudentID: studentID}
	updateErr := domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "failed to update quiz attempt")

	repo.On("FindQuizAttempt", mock.Anything, attemptID).Return(attempt, nil)
	repo.On("UpdateQuizAttempt", mock.Anything, attempt).Return(updateErr)

	got, err := srv.SubmitQuizAttempt(context.Background(), usecase.SubmitQuizAttemptInput{AttemptID: attemptID, StudentID: studentID})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, updateErr)
}
