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
)

// announcementRepository implements repository.AnnouncementRepository using GORM.
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (repo *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	announcementM := fromAnnouncementDomain(announcement)
	if err := repo.db.WithContext(ctx).Create(announcementM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create announcement")
	}

	announcement.ID = announcementM.ID
	announcement.CreatedAt = announcementM.CreatedAt
	announcement.UpdatedAt = announcementM.UpdatedAt

	return nil
}

func (repo *announcementRepository) List(ctx context.Context, target string, limit int) ([]*entity.Announcement, error) {
	var announcementsM []*model.AnnouncementModel
	db := repo.db.WithContext(ctx)
	if target != "" {
		db = db.Where("target = ?", target)
	}
	db = db.Order("created_at DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&announcementsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list announcements")
	}

	announcements := make([]*entity.Announcement, 0, len(announcementsM))
	for _, a := range announcementsM {
		announcements = append(announcements, toAnnouncementDomain(a))
	}

	return announcements, nil
}

func (repo *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcementM model.AnnouncementModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&announcementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnnouncementNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find announcement")
	}

	return toAnnouncementDomain(&announcementM), nil
}

func (repo *announcementRepository) Update(ctx context.Context, announcement *entity.Announcement) error {
	announcementM := fromAnnouncementDomain(announcement)
	result := repo.db.WithContext(ctx).
		Model(announcementM).
		Select("title", "content", "type", "target", "updated_at").
		Updates(announcementM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update announcement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	announcement.UpdatedAt = announcementM.UpdatedAt

	return nil
}

func (repo *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AnnouncementModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete announcement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	return nil
}
