// Package usecase provides testify mocks of the usecase interfaces for handler tests.
package usecase

import (
	"context"

	"sms/internal/domain/entity"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func value[T any](args mock.Arguments, i int) T {
	var zero T
	if v, ok := args.Get(i).(T); ok {
		return v
	}

	return zero
}

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

type MockAuthUsecase struct{ mock.Mock }

func NewMockAuthUsecase(t cleanupT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	return value[*usecase.LoginOutput](args, 0), args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	return value[*usecase.RegisterOutput](args, 0), args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	args := m.Called(ctx, input)
	return value[*usecase.RefreshOutput](args, 0), args.Error(1)
}

func (m *MockAuthUsecase) Profile(ctx context.Context, identity *entity.Identity) (*entity.Identity, error) {
	args := m.Called(ctx, identity)
	return value[*entity.Identity](args, 0), args.Error(1)
}

type MockAdmissionUsecase struct{ mock.Mock }

func NewMockAdmissionUsecase(t cleanupT) *MockAdmissionUsecase {
	m := &MockAdmissionUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdmissionUsecase) Apply(ctx context.Context, input usecase.ApplyInput) (*entity.AdmissionForm, error) {
	args := m.Called(ctx, input)
	return value[*entity.AdmissionForm](args, 0), args.Error(1)
}

func (m *MockAdmissionUsecase) List(ctx context.Context, status entity.AdmissionStatus) ([]*entity.AdmissionForm, error) {
	args := m.Called(ctx, status)
	return value[[]*entity.AdmissionForm](args, 0), args.Error(1)
}

func (m *MockAdmissionUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.AdmissionForm, error) {
	args := m.Called(ctx, id)
	return value[*entity.AdmissionForm](args, 0), args.Error(1)
}

func (m *MockAdmissionUsecase) UpdateStatus(ctx context.Context, input usecase.UpdateAdmissionStatusInput) (*entity.AdmissionForm, error) {
	args := m.Called(ctx, input)
	return value[*entity.AdmissionForm](args, 0), args.Error(1)
}

func (m *MockAdmissionUsecase) Stats(ctx context.Context) (*entity.AdmissionStats, error) {
	args := m.Called(ctx)
	return value[*entity.AdmissionStats](args, 0), args.Error(1)
}

type MockAnnouncementUsecase struct{ mock.Mock }

func NewMockAnnouncementUsecase(t cleanupT) *MockAnnouncementUsecase {
	m := &MockAnnouncementUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnnouncementUsecase) List(ctx context.Context, target string) ([]*entity.Announcement, error) {
	args := m.Called(ctx, target)
	return value[[]*entity.Announcement](args, 0), args.Error(1)
}

func (m *MockAnnouncementUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	args := m.Called(ctx, id)
	return value[*entity.Announcement](args, 0), args.Error(1)
}

func (m *MockAnnouncementUsecase) Create(ctx context.Context, input usecase.CreateAnnouncementInput) (*entity.Announcement, error) {
	args := m.Called(ctx, input)
	return value[*entity.Announcement](args, 0), args.Error(1)
}

func (m *MockAnnouncementUsecase) Update(ctx context.Context, input usecase.UpdateAnnouncementInput) (*entity.Announcement, error) {
	args := m.Called(ctx, input)
	return value[*entity.Announcement](args, 0), args.Error(1)
}

func (m *MockAnnouncementUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockStudentUsecase struct{ mock.Mock }

func NewMockStudentUsecase(t cleanupT) *MockStudentUsecase {
	m := &MockStudentUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStudentUsecase) Dashboard(ctx context.Context, identity *entity.Identity) (*entity.StudentDashboard, error) {
	args := m.Called(ctx, identity)
	return value[*entity.StudentDashboard](args, 0), args.Error(1)
}

func (m *MockStudentUsecase) Attendance(ctx context.Context, studentID uuid.UUID, query usecase.AttendanceQuery) ([]*entity.Attendance, error) {
	args := m.Called(ctx, studentID, query)
	return value[[]*entity.Attendance](args, 0), args.Error(1)
}

func (m *MockStudentUsecase) Grades(ctx context.Context, studentID uuid.UUID) ([]*entity.Grade, error) {
	args := m.Called(ctx, studentID)
	return value[[]*entity.Grade](args, 0), args.Error(1)
}

func (m *MockStudentUsecase) Fees(ctx context.Context, studentID uuid.UUID) ([]*entity.Fee, error) {
	args := m.Called(ctx, studentID)
	return value[[]*entity.Fee](args, 0), args.Error(1)
}

func (m *MockStudentUsecase) PayFee(ctx context.Context, studentID, feeID uuid.UUID) (*entity.Fee, error) {
	args := m.Called(ctx, studentID, feeID)
	return value[*entity.Fee](args, 0), args.Error(1)
}

type MockStaffUsecase struct{ mock.Mock }

func NewMockStaffUsecase(t cleanupT) *MockStaffUsecase {
	m := &MockStaffUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStaffUsecase) Dashboard(ctx context.Context, identity *entity.Identity) (*entity.StaffDashboard, error) {
	args := m.Called(ctx, identity)
	return value[*entity.StaffDashboard](args, 0), args.Error(1)
}

func (m *MockStaffUsecase) Students(ctx context.Context, className string) ([]*entity.Student, error) {
	args := m.Called(ctx, className)
	return value[[]*entity.Student](args, 0), args.Error(1)
}

func (m *MockStaffUsecase) MarkAttendance(ctx context.Context, input usecase.MarkAttendanceInput) (*entity.Attendance, error) {
	args := m.Called(ctx, input)
	return value[*entity.Attendance](args, 0), args.Error(1)
}

func (m *MockStaffUsecase) AddGrade(ctx context.Context, input usecase.AddGradeInput) (*entity.Grade, error) {
	args := m.Called(ctx, input)
	return value[*entity.Grade](args, 0), args.Error(1)
}

func (m *MockStaffUsecase) Subjects(ctx context.Context, staffID uuid.UUID) ([]*entity.Subject, error) {
	args := m.Called(ctx, staffID)
	return value[[]*entity.Subject](args, 0), args.Error(1)
}

type MockLMSUsecase struct{ mock.Mock }

func NewMockLMSUsecase(t cleanupT) *MockLMSUsecase {
	m := &MockLMSUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLMSUsecase) Materials(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Material, error) {
	args := m.Called(ctx, subjectID)
	return value[[]*entity.Material](args, 0), args.Error(1)
}

func (m *MockLMSUsecase) Assignments(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Assignment, error) {
	args := m.Called(ctx, subjectID)
	return value[[]*entity.Assignment](args, 0), args.Error(1)
}

func (m *MockLMSUsecase) SubmitAssignment(ctx context.Context, input usecase.SubmitAssignmentInput) (*entity.Submission, error) {
	args := m.Called(ctx, input)
	return value[*entity.Submission](args, 0), args.Error(1)
}

func (m *MockLMSUsecase) Quizzes(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Quiz, error) {
	args := m.Called(ctx, subjectID)
	return value[[]*entity.Quiz](args, 0), args.Error(1)
}

func (m *MockLMSUsecase) StartQuiz(ctx context.Context, quizID, studentID uuid.UUID) (*entity.QuizAttempt, error) {
	args := m.Called(ctx, quizID, studentID)
	return value[*entity.QuizAttempt](args, 0), args.Error(1)
}

func (m *MockLMSUsecase) SubmitQuizAttempt(ctx context.Context, input usecase.SubmitQuizAttemptInput) (*entity.QuizAttempt, error) {
	args := m.Called(ctx, input)
	return value[*entity.QuizAttempt](args, 0), args.Error(1)
}

func (m *MockLMSUsecase) Progress(ctx context.Context, studentID uuid.UUID) (*entity.LearningProgress, error) {
	args := m.Called(ctx, studentID)
	return value[*entity.LearningProgress](args, 0), args.Error(1)
}
