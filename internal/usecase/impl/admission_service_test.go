package impl

import (
	"context"
	"testing"
	"time"

	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	mockRepo "sms/internal/mocks/repository"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdmissionService(t *testing.T) (*admissionService, *mockRepo.MockAdmissionRepository) {
	repo := mockRepo.NewMockAdmissionRepository(t)
	srv := NewAdmissionService(AdmissionServiceParams{AdmissionRepo: repo, Logger: newDiscardLogger()}).(*admissionService)
	srv.now = fixedClock

	return srv, repo
}

func TestAdmissionService_Apply(t *testing.T) {
	srv, repo := createTestAdmissionService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.AdmissionForm")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.AdmissionForm).ID = uuid.New()
		}).
		Return(nil)

	form, err := srv.Apply(ctx, usecase.ApplyInput{
		FirstName: " Bob ",
		LastName:  "Smith",
		Email:     "Parent@Mail.com",
		DOB:       time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC),
		ClassName: "1A",
		Documents: []entity.AdmissionDocument{{Name: "birth.pdf", URL: "https://files/birth.pdf"}},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, form.ID)
	assert.Equal(t, "Bob", form.FirstName)
	assert.Equal(t, "parent@mail.com", form.Email)
	assert.Equal(t, entity.AdmissionPending, form.Status)
	assert.Equal(t, fixedNow, form.SubmittedAt)
	assert.Nil(t, form.ReviewedAt)
	assert.Len(t, form.Documents, 1)
}

func TestAdmissionService_List_UnknownStatus(t *testing.T) {
	srv, _ := createTestAdmissionService(t)

	_, err := srv.List(context.Background(), entity.AdmissionStatus("waitlisted"))

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdmissionService_List_AllStatuses(t *testing.T) {
	srv, repo := createTestAdmissionService(t)
	ctx := context.Background()
	forms := []*entity.AdmissionForm{{ID: uuid.New()}, {ID: uuid.New()}}

	repo.On("List", ctx, entity.AdmissionStatus("")).Return(forms, nil)

	got, err := srv.List(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, forms, got)
}

func TestAdmissionService_Get_NotFound(t *testing.T) {
	srv, repo := createTestAdmissionService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(nil, repository.ErrApplicationNotFound)

	_, err := srv.Get(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}

func TestAdmissionService_UpdateStatus(t *testing.T) {
	srv, repo := createTestAdmissionService(t)
	ctx := context.Background()
	id := uuid.New()
	reviewed := fixedNow
	updated := &entity.AdmissionForm{ID: id, Status: entity.AdmissionShortlisted, Remarks: "interview", ReviewedAt: &reviewed}

	repo.On("UpdateStatus", ctx, id, entity.AdmissionShortlisted, "interview", fixedNow).Return(updated, nil)

	form, err := srv.UpdateStatus(ctx, usecase.UpdateAdmissionStatusInput{ID: id, Status: entity.AdmissionShortlisted, Remarks: "interview"})

	require.NoError(t, err)
	assert.Equal(t, entity.AdmissionShortlisted, form.Status)
	assert.Equal(t, &reviewed, form.ReviewedAt)
}

func TestAdmissionService_UpdateStatus_Errors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		srv, _ := createTestAdmissionService(t)

		_, err := srv.UpdateStatus(context.Background(), usecase.UpdateAdmissionStatusInput{ID: uuid.New(), Status: "maybe"})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing application", func(t *testing.T) {
		srv, repo := createTestAdmissionService(t)
		id := uuid.New()
		repo.On("UpdateStatus", mock.Anything, id, entity.AdmissionRejected, "", fixedNow).Return(nil, repository.ErrApplicationNotFound)

		_, err := srv.UpdateStatus(context.Background(), usecase.UpdateAdmissionStatusInput{ID: id, Status: entity.AdmissionRejected})

		require.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
	})
}

func TestAdmissionService_Stats(t *testing.T) {
	srv, repo := createTestAdmissionService(t)
	ctx := context.Background()

	repo.On("CountByStatus", ctx).Return(map[entity.AdmissionStatus]int64{
		entity.AdmissionPending:  3,
		entity.AdmissionAccepted: 2,
		entity.AdmissionRejected: 1,
	}, nil)

	stats, err := srv.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.AdmissionStats{Total: 6, Pending: 3, Shortlisted: 0, Accepted: 2, Rejected: 1}, stats)
}
