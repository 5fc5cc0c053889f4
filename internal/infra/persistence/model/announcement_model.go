package model

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementModel mirrors the 'announcements' table.
type AnnouncementModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Content   string     `gorm:"type:text;not null"`
	Type      string     `gorm:"type:varchar(32);not null"`
	Target    string     `gorm:"type:varchar(32);index;not null;default:all"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnnouncementModel) TableName() string {
	return "announcements"
}
