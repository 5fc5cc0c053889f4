package repository

import (
	"context"
	"errors"
	"time"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrStudentNotFound is returned when a student profile does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrFeeNotFound is returned when a fee does not exist.
	ErrFeeNotFound = errors.New("fee not found")
)

// StudentFilter narrows student listings. Zero values mean no filter.
type StudentFilter struct {
	ClassName string
}

// AttendanceFilter narrows attendance listings. Bounds are inclusive; Limit 0 means unbounded.
type AttendanceFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// StudentRepository covers student profiles and their academic records.
type StudentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Student, error)

	// List returns students ordered by roll number, with the account email filled in.
	List(ctx context.Context, filter StudentFilter) ([]*entity.Student, error)

	// ListFees returns fees ordered by due date, newest first. Limit 0 means unbounded.
	ListFees(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.Fee, error)
	// FindFee locks the fee row when called inside a transaction.
	FindFee(ctx context.Context, feeID uuid.UUID) (*entity.Fee, error)
	UpdateFee(ctx context.Context, fee *entity.Fee) error

	// ListAttendance returns attendance ordered by date, newest first.
	ListAttendance(ctx context.Context, studentID uuid.UUID, filter AttendanceFilter) ([]*entity.Attendance, error)

	// UpsertAttendance inserts or updates the record keyed by (StudentID, Date).
	UpsertAttendance(ctx context.Context, attendance *entity.Attendance) error

	// ListGrades returns grades ordered by creation time, newest first. Limit 0 means unbounded.
	ListGrades(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.Grade, error)
	CreateGrade(ctx context.Context, grade *entity.Grade) error
}
