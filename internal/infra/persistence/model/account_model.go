// Package model holds the GORM persistence models. They are exported so that the
// GORM Gen tool in cmd/gen can read them from another package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:student"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Student *StudentModel `gorm:"foreignKey:AccountID"`
	Staff   *StaffModel   `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// StudentModel mirrors the 'students' table. AccountID references accounts.id.
type StudentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName  string    `gorm:"type:varchar(100);not null"`
	LastName   string    `gorm:"type:varchar(100);not null"`
	ClassName  string    `gorm:"type:varchar(32);index;not null"`
	RollNumber int       `gorm:"not null"`
	Phone      string    `gorm:"type:varchar(32)"`
	Address    string    `gorm:"type:text"`
	DOB        *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Account *AccountModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

// StaffModel mirrors the 'staff' table. AccountID references accounts.id.
type StaffModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName  string    `gorm:"type:varchar(100);not null"`
	LastName   string    `gorm:"type:varchar(100);not null"`
	Phone      string    `gorm:"type:varchar(32)"`
	Department string    `gorm:"type:varchar(100)"`
	Position   string    `gorm:"type:varchar(100)"`
	Salary     *float64  `gorm:"type:numeric(12,2)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Account *AccountModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (StaffModel) TableName() string {
	return "staff"
}
