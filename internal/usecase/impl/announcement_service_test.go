package impl

import (
	"context"
	"testing"

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

func createTestAnnouncementService(t *testing.T) (usecase.AnnouncementUsecase, *mockRepo.MockAnnouncementRepository) {
	repo := mockRepo.NewMockAnnouncementRepository(t)

	return NewAnnouncementService(AnnouncementServiceParams{AnnouncementRepo: repo, Logger: newDiscardLogger()}), repo
}

func TestAnnouncementService_List_TargetAllMeansNoFilter(t *testing.T) {
	for _, target := range []string{"", "all", " all "} {
		srv, repo := createTestAnnouncementService(t)
		repo.On("List", mock.Anything, "", usecase.AnnouncementListLimit).Return([]*entity.Announcement{}, nil)

		_, err := srv.List(context.Background(), target)

		require.NoError(t, err, target)
	}
}

func TestAnnouncementService_List_ByTarget(t *testing.T) {
	srv, repo := createTestAnnouncementService(t)
	repo.On("List", mock.Anything, "students", usecase.AnnouncementListLimit).Return([]*entity.Announcement{{Title: "Exams"}}, nil)

	got, err := srv.List(context.Background(), "students")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAnnouncementService_Create_Defaults(t *testing.T) {
	srv, repo := createTestAnnouncementService(t)
	author := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Announcement")).Return(nil)

	got, err := srv.Create(context.Background(), usecase.CreateAnnouncementInput{
		Title:     "Holiday",
		Content:   "School closed on Friday",
		CreatedBy: author,
	})

	require.NoError(t, err)
	assert.Equal(t, "general", got.Type)
	assert.Equal(t, entity.AnnouncementTargetAll, got.Target)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, author, *got.CreatedBy)
}

func TestAnnouncementService_Create_RequiresTitleAndContent(t *testing.T) {
	srv, _ := createTestAnnouncementService(t)

	_, err := srv.Create(context.Background(), usecase.CreateAnnouncementInput{Title: "  ", Content: "x"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAnnouncementService_Update_Partial(t *testing.T) {
	srv, repo := createTestAnnouncementService(t)
	id := uuid.New()
	stored := &entity.Announcement{ID: id, Title: "Old", Content: "Body", Type: "event", Target: "all"}

	repo.On("FindByID", mock.Anything, id).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *entity.Announcement) bool {
		return a.Title == "New" && a.Content == "Body" && a.Type == "event"
	})).Return(nil)

	got, err := srv.Update(context.Background(), usecase.UpdateAnnouncementInput{ID: id, Title: ptr("New")})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
}

func TestAnnouncementService_Update_NotFound(t *testing.T) {
	srv, repo := createTestAnnouncementService(t)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrAnnouncementNotFound)

	_, err := srv.Update(context.Background(), usecase.UpdateAnnouncementInput{ID: id, Title: ptr("New")})

	require.ErrorIs(t, err, domainerrors.ErrAnnouncementNotFound)
}

func TestAnnouncementService_Delete(t *testing.T) {
	srv, repo := createTestAnnouncementService(t)
	id := uuid.New()
	missing := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)
	repo.On("Delete", mock.Anything, missing).Return(repository.ErrAnnouncementNotFound)

	require.NoError(t, srv.Delete(context.Background(), id))
	require.ErrorIs(t, srv.Delete(context.Background(), missing), domainerrors.ErrAnnouncementNotFound)
}
