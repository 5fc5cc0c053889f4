package usecase

import (
	"context"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// AnnouncementListLimit caps the number of announcements returned by a listing.
const AnnouncementListLimit = 50

// CreateAnnouncementInput is a new announcement. CreatedBy is the caller's account id.
type CreateAnnouncementInput struct {
	Title     string
	Content   string
	Type      string
	Target    string
	CreatedBy uuid.UUID
}

// UpdateAnnouncementInput is a partial update; nil fields are left unchanged.
type UpdateAnnouncementInput struct {
	ID      uuid.UUID
	Title   *string
	Content *string
	Type    *string
	Target  *string
}

// AnnouncementUsecase manages announcements.
type AnnouncementUsecase interface {
	// List returns the newest announcements. An empty target or "all" applies no filter.
	List(ctx context.Context, target string) ([]*entity.Announcement, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	Create(ctx context.Context, input CreateAnnouncementInput) (*entity.Announcement, error)
	Update(ctx context.Context, input UpdateAnnouncementInput) (*entity.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
