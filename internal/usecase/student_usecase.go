package usecase

import (
	"context"
	"time"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

// Dashboard sizes for the student portal.
const (
	DashboardFeeLimit        = 5
	DashboardAttendanceLimit = 30
	DashboardGradeLimit      = 10
)

// AttendanceQuery is an inclusive date range. Nil bounds are open.
type AttendanceQuery struct {
	From *time.Time
	To   *time.Time
}

// StudentUsecase is the self-service portal of a student. Every call is scoped to the
// caller's own student profile.
type StudentUsecase interface {
	Dashboard(ctx context.Context, identity *entity.Identity) (*entity.StudentDashboard, error)
	Attendance(ctx context.Context, studentID uuid.UUID, query AttendanceQuery) ([]*entity.Attendance, error)
	Grades(ctx context.Context, studentID uuid.UUID) ([]*entity.Grade, error)
	Fees(ctx context.Context, studentID uuid.UUID) ([]*entity.Fee, error)

	// PayFee marks a fee of the student as paid. Fees of other students are reported as not found.
	PayFee(ctx context.Context, studentID, feeID uuid.UUID) (*entity.Fee, error)
}
