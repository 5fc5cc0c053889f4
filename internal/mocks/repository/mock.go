// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"
	"time"

	"sms/internal/domain/entity"
	"sms/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// value returns the i-th return value as T, or the zero T when it was set to nil.
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

// MockTransactionManager records Execute calls. When the expectation returns a
// RepositoryFactory the callback is run against it and its error is returned.
type MockTransactionManager struct{ mock.Mock }

func NewMockTransactionManager(t cleanupT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return args.Error(0)
}

// MockRepositoryFactory hands out fixed repositories.
type MockRepositoryFactory struct {
	Account repository.AccountRepository
	Student repository.StudentRepository
	LMS     repository.LMSRepository
}

func (f *MockRepositoryFactory) AccountRepo() repository.AccountRepository { return f.Account }
func (f *MockRepositoryFactory) StudentRepo() repository.StudentRepository { return f.Student }
func (f *MockRepositoryFactory) LMSRepo() repository.LMSRepository         { return f.LMS }

type MockAccountRepository struct{ mock.Mock }

func NewMockAccountRepository(t cleanupT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	return value[*entity.Account](args, 0), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	return value[*entity.Account](args, 0), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

type MockStudentRepository struct{ mock.Mock }

func NewMockStudentRepository(t cleanupT) *MockStudentRepository {
	m := &MockStudentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	args := m.Called(ctx, id)
	return value[*entity.Student](args, 0), args.Error(1)
}

func (m *MockStudentRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Student, error) {
	args := m.Called(ctx, accountID)
	return value[*entity.Student](args, 0), args.Error(1)
}

func (m *MockStudentRepository) List(ctx context.Context, filter repository.StudentFilter) ([]*entity.Student, error) {
	args := m.Called(ctx, filter)
	return value[[]*entity.Student](args, 0), args.Error(1)
}

func (m *MockStudentRepository) ListFees(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.Fee, error) {
	args := m.Called(ctx, studentID, limit)
	return value[[]*entity.Fee](args, 0), args.Error(1)
}

func (m *MockStudentRepository) FindFee(ctx context.Context, feeID uuid.UUID) (*entity.Fee, error) {
	args := m.Called(ctx, feeID)
	return value[*entity.Fee](args, 0), args.Error(1)
}

func (m *MockStudentRepository) UpdateFee(ctx context.Context, fee *entity.Fee) error {
	return m.Called(ctx, fee).Error(0)
}

func (m *MockStudentRepository) ListAttendance(ctx context.Context, studentID uuid.UUID, filter repository.AttendanceFilter) ([]*entity.Attendance, error) {
	args := m.Called(ctx, studentID, filter)
	return value[[]*entity.Attendance](args, 0), args.Error(1)
}

func (m *MockStudentRepository) UpsertAttendance(ctx context.Context, attendance *entity.Attendance) error {
	return m.Called(ctx, attendance).Error(0)
}

func (m *MockStudentRepository) ListGrades(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.Grade, error) {
	args := m.Called(ctx, studentID, limit)
	return value[[]*entity.Grade](args, 0), args.Error(1)
}

func (m *MockStudentRepository) CreateGrade(ctx context.Context, grade *entity.Grade) error {
	return m.Called(ctx, grade).Error(0)
}

type MockStaffRepository struct{ mock.Mock }

func NewMockStaffRepository(t cleanupT) *MockStaffRepository {
	m := &MockStaffRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	args := m.Called(ctx, id)
	return value[*entity.Staff](args, 0), args.Error(1)
}

func (m *MockStaffRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Staff, error) {
	args := m.Called(ctx, accountID)
	return value[*entity.Staff](args, 0), args.Error(1)
}

func (m *MockStaffRepository) ListSubjects(ctx context.Context, staffID uuid.UUID) ([]*entity.Subject, error) {
	args := m.Called(ctx, staffID)
	return value[[]*entity.Subject](args, 0), args.Error(1)
}

func (m *MockStaffRepository) SummarizeSubjects(ctx context.Context, staffID uuid.UUID) ([]*entity.SubjectSummary, error) {
	args := m.Called(ctx, staffID)
	return value[[]*entity.SubjectSummary](args, 0), args.Error(1)
}

type MockAdmissionRepository struct{ mock.Mock }

func NewMockAdmissionRepository(t cleanupT) *MockAdmissionRepository {
	m := &MockAdmissionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdmissionRepository) Create(ctx context.Context, form *entity.AdmissionForm) error {
	return m.Called(ctx, form).Error(0)
}

func (m *MockAdmissionRepository) List(ctx context.Context, status entity.AdmissionStatus) ([]*entity.AdmissionForm, error) {
	args := m.Called(ctx, status)
	return value[[]*entity.AdmissionForm](args, 0), args.Error(1)
}

func (m *MockAdmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdmissionForm, error) {
	args := m.Called(ctx, id)
	return value[*entity.AdmissionForm](args, 0), args.Error(1)
}

func (m *MockAdmissionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AdmissionStatus, remarks string, reviewedAt time.Time) (*entity.AdmissionForm, error) {
	args := m.Called(ctx, id, status, remarks, reviewedAt)
	return value[*entity.AdmissionForm](args, 0), args.Error(1)
}

func (m *MockAdmissionRepository) CountByStatus(ctx context.Context) (map[entity.AdmissionStatus]int64, error) {
	args := m.Called(ctx)
	return value[map[entity.AdmissionStatus]int64](args, 0), args.Error(1)
}

type MockAnnouncementRepository struct{ mock.Mock }

func NewMockAnnouncementRepository(t cleanupT) *MockAnnouncementRepository {
	m := &MockAnnouncementRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	return m.Called(ctx, announcement).Error(0)
}

func (m *MockAnnouncementRepository) List(ctx context.Context, target string, limit int) ([]*entity.Announcement, error) {
	args := m.Called(ctx, target, limit)
	return value[[]*entity.Announcement](args, 0), args.Error(1)
}

func (m *MockAnnouncementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	args := m.Called(ctx, id)
	return value[*entity.Announcement](args, 0), args.Error(1)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, announcement *entity.Announcement) error {
	return m.Called(ctx, announcement).Error(0)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockLMSRepository struct{ mock.Mock }

func NewMockLMSRepository(t cleanupT) *MockLMSRepository {
	m := &MockLMSRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLMSRepository) ListMaterials(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Material, error) {
	args := m.Called(ctx, subjectID)
	return value[[]*entity.Material](args, 0), args.Error(1)
}

func (m *MockLMSRepository) ListAssignments(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Assignment, error) {
	args := m.Called(ctx, subjectID)
	return value[[]*entity.Assignment](args, 0), args.Error(1)
}

func (m *MockLMSRepository) FindAssignment(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	args := m.Called(ctx, id)
	return value[*entity.Assignment](args, 0), args.Error(1)
}

func (m *MockLMSRepository) UpsertSubmission(ctx context.Context, submission *entity.Submission) error {
	return m.Called(ctx, submission).Error(0)
}

func (m *MockLMSRepository) ListSubmissionsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Submission, error) {
	args := m.Called(ctx, studentID)
	return value[[]*entity.Submission](args, 0), args.Error(1)
}

func (m *MockLMSRepository) ListQuizzes(ctx context.Context, subjectID *uuid.UUID) ([]*entity.Quiz, error) {
	args := m.Called(ctx, subjectID)
	return value[[]*entity.Quiz](args, 0), args.Error(1)
}

func (m *MockLMSRepository) FindQuiz(ctx context.Context, id uuid.UUID) (*entity.Quiz, error) {
	args := m.Called(ctx, id)
	return value[*entity.Quiz](args, 0), args.Error(1)
}

func (m *MockLMSRepository) CreateQuizAttempt(ctx context.Context, attempt *entity.QuizAttempt) error {
	return m.Called(ctx, attempt).Error(0)
}

func (m *MockLMSRepository) FindQuizAttempt(ctx context.Context, id uuid.UUID) (*entity.QuizAttempt, error) {
	args := m.Called(ctx, id)
	return value[*entity.QuizAttempt](args, 0), args.Error(1)
}

func (m *MockLMSRepository) UpdateQuizAttempt(ctx context.Context, attempt *entity.QuizAttempt) error {
	return m.Called(ctx, attempt).Error(0)
}

func (m *MockLMSRepository) ListCompletedAttemptsByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.QuizAttempt, error) {
	args := m.Called(ctx, studentID)
	return value[[]*entity.QuizAttempt](args, 0), args.Error(1)
}
