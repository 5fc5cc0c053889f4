package impl

import (
	"context"
	"testing"

	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	mockRepo "sms/internal/mocks/repository"
	mockSvc "sms/internal/mocks/service"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDummyHash = "dummy-hash"

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	// The constructor prepares the login dummy hash from a random password.
	hasher.On("Hash", mock.AnythingOfType("string")).Return(testDummyHash, nil).Once()

	service, err := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// runInTx makes the transaction manager run the callback against factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.On("Execute", mock.Anything, mock.Anything).Return(factory).Once()
}

func aliceAccount() *entity.Account {
	accountID := uuid.New()

	return &entity.Account{
		ID:           accountID,
		Email:        "alice@x.io",
		PasswordHash: "alice-hash",
		Role:         entity.RoleStudent,
		Student:      &entity.Student{ID: uuid.New(), AccountID: accountID, FirstName: "Alice"},
	}
}

func TestNewAuthService_HashFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.On("Hash", mock.AnythingOfType("string")).Return("", errors.New("boom"))

	_, err := NewAuthService(AuthServiceParams{Hasher: hasher, Logger: newDiscardLogger()})

	require.Error(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	account := aliceAccount()

	f.accountRepo.On("FindByEmail", ctx, "alice@x.io").Return(account, nil)
	f.hasher.On("Check", "pw123", "alice-hash").Return(true)
	f.tokenService.On("GenerateTokenPair", entity.ClaimsFor(account)).Return("access", "refresh", nil)

	output, err := f.service.Login(ctx, usecase.LoginInput{Email: "  Alice@X.io ", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, account.ID, output.User.ID)
	assert.Equal(t, entity.RoleStudent, output.User.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	account := aliceAccount()

	f.accountRepo.On("FindByEmail", ctx, "alice@x.io").Return(account, nil)
	f.hasher.On("Check", "wrong", "alice-hash").Return(false)

	output, err := f.service.Login(ctx, usecase.LoginInput{Email: "alice@x.io", Password: "wrong"})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	f.tokenService.AssertNotCalled(t, "GenerateTokenPair", mock.Anything)
}

func TestAuthService_Login_UnknownEmailRunsDummyCheck(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.accountRepo.On("FindByEmail", ctx, "nobody@x.io").Return(nil, repository.ErrAccountNotFound)
	f.hasher.On("Check", "pw123", testDummyHash).Return(false).Once()

	output, err := f.service.Login(ctx, usecase.LoginInput{Email: "nobody@x.io", Password: "pw123"})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("conn refused"), "find account")

	f.accountRepo.On("FindByEmail", ctx, "alice@x.io").Return(nil, dbErr)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "alice@x.io", Password: "pw123"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Register_StudentWithProfile(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)

	f.hasher.On("ValidatePasswordStrength", "pw123").Return(nil)
	f.hasher.On("Hash", "pw123").Return("hashed", nil).Once()
	accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = uuid.New()
			account.Student.ID = uuid.New()
			account.Student.AccountID = account.ID
		}).
		Return(nil)
	runInTx(f.txManager, &mockRepo.MockRepositoryFactory{Account: accountRepo})

	output, err := f.service.Register(ctx, usecase.RegisterInput{
		Email:    "Alice@X.io",
		Password: "pw123",
		Role:     entity.RoleStudent,
		Student:  &usecase.StudentProfileInput{FirstName: "Alice", LastName: "Doe", ClassName: "10A", RollNumber: 7},
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@x.io", output.User.Email)
	assert.Equal(t, entity.RoleStudent, output.User.Role)
	require.NotNil(t, output.User.Student)
	assert.Equal(t, "10A", output.User.Student.ClassName)
	assert.Equal(t, output.User.ID, output.User.Student.AccountID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)

	f.hasher.On("ValidatePasswordStrength", "pw123").Return(nil)
	f.hasher.On("Hash", "pw123").Return("hashed", nil).Once()
	accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrDuplicateEmail.WrapMessage("email already exists"))
	runInTx(f.txManager, &mockRepo.MockRepositoryFactory{Account: accountRepo})

	_, err := f.service.Register(ctx, usecase.RegisterInput{Email: "alice@x.io", Password: "pw123", Role: entity.RoleAdmin})

	require.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAuthService_Register_RejectsMismatchedProfile(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{
			name:  "unknown role",
			input: usecase.RegisterInput{Email: "a@x.io", Password: "pw", Role: entity.Role("janitor")},
		},
		{
			name: "staff profile on student",
			input: usecase.RegisterInput{
				Email: "a@x.io", Password: "pw", Role: entity.RoleStudent,
				Staff: &usecase.StaffProfileInput{FirstName: "A"},
			},
		},
		{
			name: "student profile on admin",
			input: usecase.RegisterInput{
				Email: "a@x.io", Password: "pw", Role: entity.RoleAdmin,
				Student: &usecase.StudentProfileInput{FirstName: "A"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)

			_, err := f.service.Register(context.Background(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.On("ValidatePasswordStrength", "x").Return(domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := f.service.Register(context.Background(), usecase.RegisterInput{Email: "a@x.io", Password: "x", Role: entity.RoleStaff})

	require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Refresh(t *testing.T) {
	f := createTestAuthService(t)
	claims := &entity.Claims{Subject: uuid.New(), Email: "alice@x.io", Role: entity.RoleStudent, Type: entity.TokenTypeRefresh}

	f.tokenService.On("VerifyRefreshToken", "refresh").Return(claims, nil)
	f.tokenService.On("IssueAccessToken", *claims).Return("new-access", nil)

	output, err := f.service.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	f.accountRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	f := createTestAuthService(t)

	f.tokenService.On("VerifyRefreshToken", "access-token").Return(nil, domainerrors.ErrInvalidToken)

	_, err := f.service.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: "access-token"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Profile(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	account := aliceAccount()
	identity := &entity.Identity{AccountID: account.ID, Email: account.Email, Role: account.Role}

	f.accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)

	resolved, err := f.service.Profile(ctx, identity)

	require.NoError(t, err)
	require.NotNil(t, resolved.StudentID)
	assert.Equal(t, account.Student.ID, *resolved.StudentID)
	assert.Nil(t, resolved.StaffID)
	assert.Nil(t, identity.StudentID, "input identity must not be mutated")
}

func TestAuthService_Profile_AccountGone(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	id := uuid.New()

	f.accountRepo.On("FindByID", ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := f.service.Profile(ctx, &entity.Identity{AccountID: id})

	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
