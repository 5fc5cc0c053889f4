package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClassModel mirrors the 'classes' table.
type ClassModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Grade     int       `gorm:"not null"`
	Section   string    `gorm:"type:varchar(8);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClassModel) TableName() string {
	return "classes"
}

// SubjectModel mirrors the 'subjects' table. StaffID is nullable until a teacher is assigned.
type SubjectModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Code      string     `gorm:"type:varchar(32);uniqueIndex;not null"`
	ClassID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	StaffID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time

	Class *ClassModel `gorm:"foreignKey:ClassID"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectModel) TableName() string {
	return "subjects"
}

// FeeModel mirrors the 'fees' table.
type FeeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	DueDate     time.Time `gorm:"not null"`
	PaidDate    *time.Time
	Status      string `gorm:"type:varchar(16);not null;default:pending"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeeModel) TableName() string {
	return "fees"
}

// AttendanceModel mirrors the 'attendances' table, unique per student and day.
type AttendanceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_student_date"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:idx_attendance_student_date"`
	Status    string         `gorm:"type:varchar(16);not null"`
	Remarks   string         `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttendanceModel) TableName() string {
	return "attendances"
}

// GradeModel mirrors the 'grades' table.
type GradeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID uuid.UUID `gorm:"type:uuid;index;not null"`
	SubjectID uuid.UUID `gorm:"type:uuid;index;not null"`
	Marks     float64   `gorm:"type:numeric(6,2);not null"`
	MaxMarks  float64   `gorm:"type:numeric(6,2);not null"`
	ExamType  string    `gorm:"type:varchar(32);not null"`
	ExamDate  *time.Time
	Remarks   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GradeModel) TableName() string {
	return "grades"
}
