package impl

import (
	"context"
	"testing"
	"time"

	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	mockRepo "sms/internal/mocks/repository"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staffServiceFixtures struct {
	service     usecase.StaffUsecase
	staffRepo   *mockRepo.MockStaffRepository
	studentRepo *mockRepo.MockStudentRepository
}

func createTestStaffService(t *testing.T) staffServiceFixtures {
	staffRepo := mockRepo.NewMockStaffRepository(t)
	studentRepo := mockRepo.NewMockStudentRepository(t)

	return staffServiceFixtures{
		service:     NewStaffService(StaffServiceParams{StaffRepo: staffRepo, StudentRepo: studentRepo, Logger: newDiscardLogger()}),
		staffRepo:   staffRepo,
		studentRepo: studentRepo,
	}
}

func TestStaffService_Dashboard(t *testing.T) {
	f := createTestStaffService(t)
	staffID := uuid.New()
	staff := &entity.Staff{ID: staffID, FirstName: "Sam"}
	subjects := []*entity.SubjectSummary{{Subject: entity.Subject{Name: "Math"}, MaterialCount: 2, AssignmentCount: 1}}

	f.staffRepo.On("FindByID", mock.Anything, staffID).Return(staff, nil)
	f.staffRepo.On("SummarizeSubjects", mock.Anything, staffID).Return(subjects, nil)

	dashboard, err := f.service.Dashboard(context.Background(), &entity.Identity{Email: "sam@x.io", StaffID: &staffID})

	require.NoError(t, err)
	assert.Same(t, staff, dashboard.Staff)
	assert.Equal(t, subjects, dashboard.Subjects)
}

func TestStaffService_Dashboard_NoProfile(t *testing.T) {
	f := createTestStaffService(t)

	_, err := f.service.Dashboard(context.Background(), &entity.Identity{Role: entity.RoleAdmin})

	require.ErrorIs(t, err, domainerrors.ErrProfileMissing)
}

func TestStaffService_Students_ByClass(t *testing.T) {
	f := createTestStaffService(t)
	f.studentRepo.On("List", mock.Anything, repository.StudentFilter{ClassName: "10A"}).Return([]*entity.Student{{RollNumber: 1}}, nil)

	students, err := f.service.Students(context.Background(), " 10A")

	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestStaffService_MarkAttendance_TruncatesToDay(t *testing.T) {
	f := createTestStaffService(t)
	studentID := uuid.New()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	f.studentRepo.On("FindByID", mock.Anything, studentID).Return(&entity.Student{ID: studentID}, nil)
	f.studentRepo.On("UpsertAttendance", mock.Anything, mock.MatchedBy(func(a *entity.Attendance) bool {
		return a.StudentID == studentID && a.Date.Equal(day) && a.Status == entity.AttendanceLate
	})).Return(nil)

	got, err := f.service.MarkAttendance(context.Background(), usecase.MarkAttendanceInput{
		StudentID: studentID,
		Date:      time.Date(2024, 3, 15, 14, 45, 0, 0, time.UTC),
		Status:    entity.AttendanceLate,
		Remarks:   "bus",
	})

	require.NoError(t, err)
	assert.Equal(t, day, got.Date)
	assert.Equal(t, "bus", got.Remarks)
}

func TestStaffService_MarkAttendance_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		f := createTestStaffService(t)

		_, err := f.service.MarkAttendance(context.Background(), usecase.MarkAttendanceInput{StudentID: uuid.New(), Status: "sick"})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown student", func(t *testing.T) {
		f := createTestStaffService(t)
		studentID := uuid.New()
		f.studentRepo.On("FindByID", mock.Anything, studentID).Return(nil, repository.ErrStudentNotFound)

		_, err := f.service.MarkAttendance(context.Background(), usecase.MarkAttendanceInput{StudentID: studentID, Status: entity.AttendancePresent})

		require.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
	})
}

func TestStaffService_AddGrade(t *testing.T) {
	tests := []struct {
		name     string
		marks    float64
		maxMarks float64
		wantErr  error
	}{
		{name: "valid", marks: 45, maxMarks: 50},
		{name: "full marks", marks: 50, maxMarks: 50},
		{name: "above max", marks: 51, maxMarks: 50, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative", marks: -1, maxMarks: 50, wantErr: domainerrors.ErrValidationFailed},
		{name: "zero max", marks: 0, maxMarks: 0, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestStaffService(t)
			studentID := uuid.New()
			if tt.wantErr == nil {
				f.studentRepo.On("FindByID", mock.Anything, studentID).Return(&entity.Student{ID: studentID}, nil)
				f.studentRepo.On("CreateGrade", mock.Anything, mock.AnythingOfType("*entity.Grade")).Return(nil)
			}

			grade, err := f.service.AddGrade(context.Background(), usecase.AddGradeInput{
				StudentID: studentID,
				SubjectID: uuid.New(),
				Marks:     tt.marks,
				MaxMarks:  tt.maxMarks,
				ExamType:  "midterm",
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.marks, grade.Marks)
		})
	}
}

func TestStaffService_AddGrade_InvalidSubject(t *testing.T) {
	f := createTestStaffService(t)
	studentID := uuid.New()
	f.studentRepo.On("FindByID", mock.Anything, studentID).Return(&entity.Student{ID: studentID}, nil)
	f.studentRepo.On("CreateGrade", mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidReference)

	_, err := f.service.AddGrade(context.Background(), usecase.AddGradeInput{StudentID: studentID, SubjectID: uuid.New(), Marks: 1, MaxMarks: 10})

	require.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}
