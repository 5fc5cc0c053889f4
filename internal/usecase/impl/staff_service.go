package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type staffService struct {
	staffRepo   repository.StaffRepository
	studentRepo repository.StudentRepository
	logger      *slog.Logger
}

// StaffServiceParams holds dependencies for StaffService, injected by Fx.
type StaffServiceParams struct {
	fx.In

	StaffRepo   repository.StaffRepository
	StudentRepo repository.StudentRepository
	Logger      *slog.Logger
}

// NewStaffService creates a new staff portal service.
func NewStaffService(params StaffServiceParams) usecase.StaffUsecase {
	return &staffService{
		staffRepo:   params.StaffRepo,
		studentRepo: params.StudentRepo,
		logger:      params.Logger,
	}
}

func (srv *staffService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *staffService) Dashboard(ctx context.Context, identity *entity.Identity) (*entity.StaffDashboard, error) {
	if identity.StaffID == nil {
		return nil, domainerrors.ErrProfileMissing
	}
	staffID := *identity.StaffID
	dashboard := &entity.StaffDashboard{Email: identity.Email}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		staff, err := srv.staffRepo.FindByID(gctx, staffID)
		if err != nil {
			if errors.Is(err, repository.ErrStaffNotFound) {
				return errors.Wrap(domainerrors.ErrStaffNotFound, "failed to load staff profile")
			}

			return errors.Wrap(err, "failed to load staff profile")
		}
		dashboard.Staff = staff

		return nil
	})
	g.Go(func() error {
		subjects, err := srv.staffRepo.SummarizeSubjects(gctx, staffID)
		if err != nil {
			return errors.Wrap(err, "failed to summarize subjects")
		}
		dashboard.Subjects = subjects

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to build staff dashboard", slog.Any("staffID", staffID), slog.Any("error", err))

		return nil, err
	}

	return dashboard, nil
}

func (srv *staffService) Students(ctx context.Context, className string) ([]*entity.Student, error) {
	students, err := srv.studentRepo.List(ctx, repository.StudentFilter{ClassName: strings.TrimSpace(className)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	return students, nil
}

// MarkAttendance upserts the record for the UTC day of input.Date.
func (srv *staffService) MarkAttendance(ctx context.Context, input usecase.MarkAttendanceInput) (*entity.Attendance, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be present, absent or late")
	}
	if _, err := srv.studentRepo.FindByID(ctx, input.StudentID); err != nil {
		return nil, mapStudentError(err, "failed to find student")
	}

	attendance := &entity.Attendance{
		StudentID: input.StudentID,
		Date:      entity.AttendanceDay(input.Date),
		Status:    input.Status,
		Remarks:   input.Remarks,
	}
	if err := srv.studentRepo.UpsertAttendance(ctx, attendance); err != nil {
		return nil, errors.Wrap(err, "failed to record attendance")
	}

	srv.log(ctx).Debug("Attendance recorded",
		slog.Any("studentID", attendance.StudentID),
		slog.Time("date", attendance.Date),
		slog.Any("status", attendance.Status),
	)

	return attendance, nil
}

func (srv *staffService) AddGrade(ctx context.Context, input usecase.AddGradeInput) (*entity.Grade, error) {
	if input.MaxMarks <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("maxMarks must be positive")
	}
	if input.Marks < 0 || input.Marks > input.MaxMarks {
		return nil, domainerrors.ErrValidationFailed.WithDetails("marks must be between 0 and maxMarks")
	}
	if _, err := srv.studentRepo.FindByID(ctx, input.StudentID); err != nil {
		return nil, mapStudentError(err, "failed to find student")
	}

	grade := &entity.Grade{
		StudentID: input.StudentID,
		SubjectID: input.SubjectID,
		Marks:     input.Marks,
		MaxMarks:  input.MaxMarks,
		ExamType:  input.ExamType,
		ExamDate:  input.ExamDate,
		Remarks:   input.Remarks,
	}
	if err := srv.studentRepo.CreateGrade(ctx, grade); err != nil {
		return nil, errors.Wrap(err, "failed to create grade")
	}

	return grade, nil
}

func (srv *staffService) Subjects(ctx context.Context, staffID uuid.UUID) ([]*entity.Subject, error) {
	subjects, err := srv.staffRepo.ListSubjects(ctx, staffID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	return subjects, nil
}
