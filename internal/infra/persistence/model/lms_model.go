package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaterialModel mirrors the 'materials' table.
type MaterialModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Type        string    `gorm:"type:varchar(16);not null"`
	URL         string    `gorm:"type:text;not null"`
	FileName    string    `gorm:"type:varchar(255)"`
	FileSize    int64
	CreatedAt   time.Time

	Subject *SubjectModel `gorm:"foreignKey:SubjectID"`
}

// TableName explicitly sets the table name for GORM.
func (MaterialModel) TableName() string {
	return "materials"
}

// AssignmentModel mirrors the 'assignments' table.
type AssignmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	DueDate     time.Time `gorm:"not null"`
	MaxMarks    float64   `gorm:"type:numeric(6,2);not null"`
	CreatedAt   time.Time

	Subject     *SubjectModel      `gorm:"foreignKey:SubjectID"`
	Submissions []*SubmissionModel `gorm:"foreignKey:AssignmentID"`
}

// TableName explicitly sets the table name for GORM.
func (AssignmentModel) TableName() string {
	return "assignments"
}

// SubmissionModel mirrors the 'submissions' table, unique per assignment and student.
type SubmissionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_assignment_student"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_assignment_student"`
	FileURL      string    `gorm:"type:text"`
	FileName     string    `gorm:"type:varchar(255)"`
	Status       string    `gorm:"type:varchar(16);not null;default:submitted"`
	Marks        *float64  `gorm:"type:numeric(6,2)"`
	Feedback     string    `gorm:"type:text"`
	SubmittedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "submissions"
}

// QuizModel mirrors the 'quizzes' table. Questions are stored as JSONB.
type QuizModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubjectID   uuid.UUID      `gorm:"type:uuid;index;not null"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Duration    int            `gorm:"not null"`
	MaxMarks    float64        `gorm:"type:numeric(6,2);not null"`
	Questions   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time

	Attempts []*QuizAttemptModel `gorm:"foreignKey:QuizID"`
}

// TableName explicitly sets the table name for GORM.
func (QuizModel) TableName() string {
	return "quizzes"
}

// QuizAttemptModel mirrors the 'quiz_attempts' table.
type QuizAttemptModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuizID      uuid.UUID      `gorm:"type:uuid;index;not null"`
	StudentID   uuid.UUID      `gorm:"type:uuid;index;not null"`
	Answers     datatypes.JSON `gorm:"type:jsonb;not null"`
	Score       *float64       `gorm:"type:numeric(6,2)"`
	Completed   bool           `gorm:"not null;default:false"`
	StartedAt   time.Time      `gorm:"not null"`
	CompletedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}
