package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAnnouncementType = "general"

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	logger           *slog.Logger
}

// AnnouncementServiceParams holds dependencies for AnnouncementService, injected by Fx.
type AnnouncementServiceParams struct {
	fx.In

	AnnouncementRepo repository.AnnouncementRepository
	Logger           *slog.Logger
}

// NewAnnouncementService creates a new announcement service.
func NewAnnouncementService(params AnnouncementServiceParams) usecase.AnnouncementUsecase {
	return &announcementService{
		announcementRepo: params.AnnouncementRepo,
		logger:           params.Logger,
	}
}

func (srv *announcementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *announcementService) List(ctx context.Context, target string) ([]*entity.Announcement, error) {
	target = strings.TrimSpace(target)
	if target == entity.AnnouncementTargetAll {
		target = ""
	}

	announcements, err := srv.announcementRepo.List(ctx, target, usecase.AnnouncementListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	return announcements, nil
}

func (srv *announcementService) Get(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	announcement, err := srv.announcementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapAnnouncementError(err, "failed to find announcement")
	}

	return announcement, nil
}

func (srv *announcementService) Create(ctx context.Context, input usecase.CreateAnnouncementInput) (*entity.Announcement, error) {
	announcement := &entity.Announcement{
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
		Type:    input.Type,
		Target:  input.Target,
	}
	if announcement.Title == "" || announcement.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and content are required")
	}
	if announcement.Type == "" {
		announcement.Type = defaultAnnouncementType
	}
	if announcement.Target == "" {
		announcement.Target = entity.AnnouncementTargetAll
	}
	if input.CreatedBy != uuid.Nil {
		createdBy := input.CreatedBy
		announcement.CreatedBy = &createdBy
	}

	if err := srv.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, errors.Wrap(err, "failed to create announcement")
	}

	srv.log(ctx).Info("Announcement published", slog.Any("announcementID", announcement.ID), slog.String("target", announcement.Target))

	return announcement, nil
}

// Update applies the non-nil fields of input onto the stored announcement.
func (srv *announcementService) Update(ctx context.Context, input usecase.UpdateAnnouncementInput) (*entity.Announcement, error) {
	announcement, err := srv.announcementRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, mapAnnouncementError(err, "failed to find announcement")
	}

	if input.Title != nil {
		announcement.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		announcement.Content = *input.Content
	}
	if input.Type != nil {
		announcement.Type = *input.Type
	}
	if input.Target != nil {
		announcement.Target = *input.Target
	}
	if announcement.Title == "" || announcement.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and content cannot be empty")
	}

	if err := srv.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, mapAnnouncementError(err, "failed to update announcement")
	}

	return announcement, nil
}

func (srv *announcementService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.announcementRepo.Delete(ctx, id); err != nil {
		return mapAnnouncementError(err, "failed to delete announcement")
	}

	srv.log(ctx).Info("Announcement deleted", slog.Any("announcementID", id))

	return nil
}

func mapAnnouncementError(err error, message string) error {
	if errors.Is(err, repository.ErrAnnouncementNotFound) {
		return errors.Wrap(domainerrors.ErrAnnouncementNotFound, message)
	}

	return errors.Wrap(err, message)
}
