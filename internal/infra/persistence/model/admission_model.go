package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdmissionDocumentJSON is one element of the documents JSONB column.
type AdmissionDocumentJSON struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AdmissionFormModel mirrors the 'admission_forms' table.
type AdmissionFormModel struct {
	ID          uuid.UUID                                  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName   string                                     `gorm:"type:varchar(100);not null"`
	LastName    string                                     `gorm:"type:varchar(100);not null"`
	Email       string                                     `gorm:"type:varchar(255);not null"`
	Phone       string                                     `gorm:"type:varchar(32);not null"`
	DOB         time.Time                                  `gorm:"not null"`
	Address     string                                     `gorm:"type:text;not null"`
	ClassName   string                                     `gorm:"type:varchar(32);not null"`
	Documents   datatypes.JSONSlice[AdmissionDocumentJSON] `gorm:"type:jsonb"`
	Status      string                                     `gorm:"type:varchar(16);index;not null;default:pending"`
	Remarks     string                                     `gorm:"type:text"`
	SubmittedAt time.Time                                  `gorm:"not null"`
	ReviewedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdmissionFormModel) TableName() string {
	return "admission_forms"
}
