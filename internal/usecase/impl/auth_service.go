// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/repository"
	"sms/internal/domain/service"
	"sms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	// dummyHash is compared against on unknown emails so both login failures cost one bcrypt run.
	dummyHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	dummyHash, err := params.Hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare login hash")
	}

	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		dummyHash:    dummyHash,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a token pair.
// An unknown email and a wrong password produce the same ErrInvalidCredentials.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.Check(input.Password, srv.dummyHash)
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "invalid credentials"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Failed to load account for login", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// Check password (bcrypt is constant-time over the hash).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "invalid credentials"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokenPair(entity.ClaimsFor(account))
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	srv.log(ctx).Debug("Account logged in successfully", slog.Any("accountID", account.ID), slog.Any("role", account.Role))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         account.View(),
	}, nil
}

// Register creates an account with a freshly salted hash and its optional linked profile.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.Any("role", input.Role))

	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		Student:      buildStudentProfile(input.Student),
		Staff:        buildStaffProfile(input.Staff),
	}

	// Account and profile rows are inserted in one transaction.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AccountRepo().Create(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{User: account.View()}, nil
}

// Refresh re-issues an access token from a valid refresh token. The claims are trusted as
// signed; the credential store is not consulted.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(*claims)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("accountID", claims.Subject), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Profile resolves the linked profile ids of the caller's account.
func (srv *authService) Profile(ctx context.Context, identity *entity.Identity) (*entity.Identity, error) {
	account, err := srv.accountRepo.FindByID(ctx, identity.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account of token no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	resolved := *identity
	if account.Student != nil {
		id := account.Student.ID
		resolved.StudentID = &id
	}
	if account.Staff != nil {
		id := account.Staff.ID
		resolved.StaffID = &id
	}

	return &resolved, nil
}

// validateRegistration checks the role and that any profile matches it.
func validateRegistration(input usecase.RegisterInput) error {
	if !input.Role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}
	if input.Student != nil && input.Staff != nil {
		return domainerrors.ErrValidationFailed.WithDetails("an account can link at most one profile")
	}
	if input.Student != nil && input.Role != entity.RoleStudent && input.Role != entity.RoleLMSStudent {
		return domainerrors.ErrValidationFailed.WithDetails("student profile requires a student role")
	}
	if input.Staff != nil && input.Role != entity.RoleStaff {
		return domainerrors.ErrValidationFailed.WithDetails("staff profile requires the staff role")
	}

	return nil
}

func buildStudentProfile(input *usecase.StudentProfileInput) *entity.Student {
	if input == nil {
		return nil
	}

	return &entity.Student{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		ClassName:  input.ClassName,
		RollNumber: input.RollNumber,
		Phone:      input.Phone,
		Address:    input.Address,
		DOB:        input.DOB,
	}
}

func buildStaffProfile(input *usecase.StaffProfileInput) *entity.Staff {
	if input == nil {
		return nil
	}

	return &entity.Staff{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Phone:      input.Phone,
		Department: input.Department,
		Position:   input.Position,
		Salary:     input.Salary,
	}
}
