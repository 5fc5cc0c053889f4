package repository

import (
	"context"
	"errors"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAnnouncementNotFound is returned when an announcement does not exist.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementRepository persists announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error

	// List returns the newest announcements first. An empty target applies no filter.
	List(ctx context.Context, target string, limit int) ([]*entity.Announcement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	Update(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}
