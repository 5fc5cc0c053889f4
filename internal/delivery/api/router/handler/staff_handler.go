package handler

import (
	"log/slog"
	"net/http"

	"sms/internal/delivery/api/response"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StaffHandlerParams holds dependencies for StaffHandler, injected by Fx.
type StaffHandlerParams struct {
	fx.In

	StaffUC usecase.StaffUsecase
	Logger  *slog.Logger
}

// StaffHandler serves the staff portal for staff members and admins.
type StaffHandler struct {
	staffUC usecase.StaffUsecase
	logger  *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler
func NewStaffHandler(params StaffHandlerParams) *StaffHandler {
	return &StaffHandler{
		staffUC: params.StaffUC,
		logger:  params.Logger,
	}
}

type MarkAttendanceRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
	Remarks   string `json:"remarks"`
}

type AddGradeRequest struct {
	StudentID string   `json:"studentId" validate:"required,uuid"`
	SubjectID string   `json:"subjectId" validate:"required,uuid"`
	Marks     *float64 `json:"marks" validate:"required,gte=0"`
	MaxMarks  float64  `json:"maxMarks" validate:"gt=0"`
	ExamType  string   `json:"examType" validate:"notblank"`
	ExamDate  string   `json:"examDate"`
	Remarks   string   `json:"remarks"`
}

func (h *StaffHandler) Dashboard(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.staffUC.Dashboard(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// Students handles GET /staff/students?className=
func (h *StaffHandler) Students(c echo.Context) error {
	students, err := h.staffUC.Students(c.Request().Context(), c.QueryParam("className"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, students)
}

func (h *StaffHandler) MarkAttendance(c echo.Context) error {
	var req MarkAttendanceRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	studentID, err := parseUUID("studentId", req.StudentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("date must be a date"))
	}

	attendance, err := h.staffUC.MarkAttendance(c.Request().Context(), usecase.MarkAttendanceInput{
		StudentID: studentID,
		Date:      date,
		Status:    entity.AttendanceStatus(req.Status),
		Remarks:   req.Remarks,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attendance)
}

func (h *StaffHandler) AddGrade(c echo.Context) error {
	var req AddGradeRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	studentID, err := parseUUID("studentId", req.StudentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	subjectID, err := parseUUID("subjectId", req.SubjectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	examDate, err := parseOptionalDate("examDate", req.ExamDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	grade, err := h.staffUC.AddGrade(c.Request().Context(), usecase.AddGradeInput{
		StudentID: studentID,
		SubjectID: subjectID,
		Marks:     *req.Marks,
		MaxMarks:  req.MaxMarks,
		ExamType:  req.ExamType,
		ExamDate:  examDate,
		Remarks:   req.Remarks,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, grade)
}

// Subjects handles GET /staff/subjects for the caller's Staff profile
func (h *StaffHandler) Subjects(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if identity.StaffID == nil {
		return response.HandleAppError(c, domainerrors.ErrProfileMissing)
	}

	subjects, err := h.staffUC.Subjects(c.Request().Context(), *identity.StaffID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subjects)
}
