package usecase

import (
	"context"
	"time"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// MarkAttendanceInput records one student's attendance for the UTC day containing Date.
type MarkAttendanceInput struct {
	StudentID uuid.UUID
	Date      time.Time
	Status    entity.AttendanceStatus
	Remarks   string
}

// AddGradeInput records an exam result.
type AddGradeInput struct {
	StudentID uuid.UUID
	SubjectID uuid.UUID
	Marks     float64
	MaxMarks  float64
	ExamType  string
	ExamDate  *time.Time
	Remarks   string
}

// StaffUsecase is the teaching portal used by staff and admins.
type StaffUsecase interface {
	Dashboard(ctx context.Context, identity *entity.Identity) (*entity.StaffDashboard, error)

	// Students lists students by roll number. An empty className lists every class.
	Students(ctx context.Context, className string) ([]*entity.Student, error)
	MarkAttendance(ctx context.Context, input MarkAttendanceInput) (*entity.Attendance, error)
	AddGrade(ctx context.Context, input AddGradeInput) (*entity.Grade, error)
	Subjects(ctx context.Context, staffID uuid.UUID) ([]*entity.Subject, error)
}
