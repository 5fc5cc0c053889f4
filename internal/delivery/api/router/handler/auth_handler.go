package handler

import (
	"log/slog"
	"net/http"

	"sms/internal/delivery/api/response"
	"sms/internal/domain/entity"
	"sms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, registration, refresh and profile lookup.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type StudentProfileRequest struct {
	FirstName  string `json:"firstName" validate:"notblank"`
	LastName   string `json:"lastName" validate:"notblank"`
	ClassName  string `json:"className" validate:"notblank"`
	RollNumber int    `json:"rollNumber" validate:"gte=0"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	DOB        string `json:"dob"`
}

type StaffProfileRequest struct {
	FirstName  string   `json:"firstName" validate:"notblank"`
	LastName   string   `json:"lastName" validate:"notblank"`
	Phone      string   `json:"phone"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Salary     *float64 `json:"salary" validate:"omitempty,gte=0"`
}

// RegisterRequest represents the request body for registration. At most one profile may be set.
type RegisterRequest struct {
	Email    string                 `json:"email" validate:"required,email"`
	Password string                 `json:"password" validate:"required"`
	Role     string                 `json:"role" validate:"required,role"`
	Student  *StudentProfileRequest `json:"student" validate:"omitempty"`
	Staff    *StaffProfileRequest   `json:"staff" validate:"omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken"`
	User         *entity.AccountView `json:"user"`
}

type RegisterResponse struct {
	User *entity.AccountView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type ProfileResponse struct {
	Identity *entity.Identity `json:"identity"`
}

// Login handles email and password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
	})
}

// Register handles account registration with an optional linked profile
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input := usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	}
	if req.Student != nil {
		dob, err := parseOptionalDate("student.dob", req.Student.DOB)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.Student = &usecase.StudentProfileInput{
			FirstName:  req.Student.FirstName,
			LastName:   req.Student.LastName,
			ClassName:  req.Student.ClassName,
			RollNumber: req.Student.RollNumber,
			Phone:      req.Student.Phone,
			Address:    req.Student.Address,
			DOB:        dob,
		}
	}
	if req.Staff != nil {
		input.Staff = &usecase.StaffProfileInput{
			FirstName:  req.Staff.FirstName,
			LastName:   req.Staff.LastName,
			Phone:      req.Staff.Phone,
			Department: req.Staff.Department,
			Position:   req.Staff.Position,
			Salary:     req.Staff.Salary,
		}
	}

	output, err := h.authUC.Register(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{User: output.User})
}

// Refresh re-issues an access token from a refresh token
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	output, err := h.authUC.Refresh(c.Request().Context(), usecase.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RefreshResponse{AccessToken: output.AccessToken})
}

// Profile returns the caller's identity with any linked profile id
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resolved, err := h.authUC.Profile(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{Identity: resolved})
}
