package impl

import (
	"context"
	"log/slog"
	"time"

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

type studentService struct {
	txManager   repository.TransactionManager
	studentRepo repository.StudentRepository
	logger      *slog.Logger
	now         func() time.Time
}

// StudentServiceParams holds dependencies for StudentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StudentRepo repository.StudentRepository
	Logger      *slog.Logger
}

// NewStudentService creates a new student portal service.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		txManager:   params.TxManager,
		studentRepo: params.StudentRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard loads the profile and the latest fees, attendance and grades concurrently.
func (srv *studentService) Dashboard(ctx context.Context, identity *entity.Identity) (*entity.StudentDashboard, error) {
	if identity.StudentID == nil {
		return nil, domainerrors.ErrProfileMissing
	}
	studentID := *identity.StudentID
	dashboard := &entity.StudentDashboard{Email: identity.Email}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		student, err := srv.studentRepo.FindByID(gctx, studentID)
		if err != nil {
			return mapStudentError(err, "failed to load student profile")
		}
		dashboard.Student = student

		return nil
	})
	g.Go(func() error {
		fees, err := srv.studentRepo.ListFees(gctx, studentID, usecase.DashboardFeeLimit)
		if err != nil {
			return errors.Wrap(err, "failed to load fees")
		}
		dashboard.Fees = fees

		return nil
	})
	g.Go(func() error {
		attendance, err := srv.studentRepo.ListAttendance(gctx, studentID, repository.AttendanceFilter{Limit: usecase.DashboardAttendanceLimit})
		if err != nil {
			return errors.Wrap(err, "failed to load attendance")
		}
		dashboard.Attendance = attendance

		return nil
	})
	g.Go(func() error {
		grades, err := srv.studentRepo.ListGrades(gctx, studentID, usecase.DashboardGradeLimit)
		if err != nil {
			return errors.Wrap(err, "failed to load grades")
		}
		dashboard.Grades = grades

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to build student dashboard", slog.Any("studentID", studentID), slog.Any("error", err))

		return nil, err
	}

	return dashboard, nil
}

func (srv *studentService) Attendance(ctx context.Context, studentID uuid.UUID, query usecase.AttendanceQuery) ([]*entity.Attendance, error) {
	filter := repository.AttendanceFilter{}
	if query.From != nil {
		from := entity.AttendanceDay(*query.From)
		filter.From = &from
	}
	if query.To != nil {
		to := entity.AttendanceDay(*query.To)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("startDate must not be after endDate")
	}

	attendance, err := srv.studentRepo.ListAttendance(ctx, studentID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attendance")
	}

	return attendance, nil
}

func (srv *studentService) Grades(ctx context.Context, studentID uuid.UUID) ([]*entity.Grade, error) {
	grades, err := srv.studentRepo.ListGrades(ctx, studentID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list grades")
	}

	return grades, nil
}

func (srv *studentService) Fees(ctx context.Context, studentID uuid.UUID) ([]*entity.Fee, error) {
	fees, err := srv.studentRepo.ListFees(ctx, studentID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fees")
	}

	return fees, nil
}

// PayFee marks the fee paid. Paying an already paid fee keeps its original paid date.
// The fee row stays locked between the ownership check and the update.
func (srv *studentService) PayFee(ctx context.Context, studentID, feeID uuid.UUID) (*entity.Fee, error) {
	var (
		fee     *entity.Fee
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		studentRepo := factory.StudentRepo()

		var err error
		fee, err = studentRepo.FindFee(ctx, feeID)
		if err != nil {
			if errors.Is(err, repository.ErrFeeNotFound) {
				return errors.Wrap(domainerrors.ErrFeeNotFound, "failed to find fee")
			}

			return errors.Wrap(err, "failed to find fee")
		}
		if fee.StudentID != studentID {
			srv.log(ctx).Warn("Attempt to pay a fee of another student", slog.Any("studentID", studentID), slog.Any("feeID", feeID))

			return errors.Wrap(domainerrors.ErrFeeNotFound, "fee does not belong to student")
		}
		if fee.Status == entity.FeeStatusPaid {
			return nil
		}

		paidAt := srv.now().UTC()
		fee.Status = entity.FeeStatusPaid
		fee.PaidDate = &paidAt
		if err := studentRepo.UpdateFee(ctx, fee); err != nil {
			return errors.Wrap(err, "failed to update fee")
		}
		changed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		srv.log(ctx).Info("Fee paid", slog.Any("studentID", studentID), slog.Any("feeID", feeID), slog.Float64("amount", fee.Amount))
	}

	return fee, nil
}

func mapStudentError(err error, message string) error {
	if errors.Is(err, repository.ErrStudentNotFound) {
		return errors.Wrap(domainerrors.ErrStudentNotFound, message)
	}

	return errors.Wrap(err, message)
}
