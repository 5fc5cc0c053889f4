package handler

import (
	"log/slog"
	"net/http"

	"sms/internal/delivery/api/response"
	"sms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StudentHandlerParams holds dependencies for StudentHandler, injected by Fx.
type StudentHandlerParams struct {
	fx.In

	StudentUC usecase.StudentUsecase
	Logger    *slog.Logger
}

// StudentHandler serves the student portal. Routes run behind RequireStudentProfile.
type StudentHandler struct {
	studentUC usecase.StudentUsecase
	logger    *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler
func NewStudentHandler(params StudentHandlerParams) *StudentHandler {
	return &StudentHandler{
		studentUC: params.StudentUC,
		logger:    params.Logger,
	}
}

func (h *StudentHandler) Dashboard(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.studentUC.Dashboard(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// Attendance handles GET /student/attendance?startDate=&endDate=
func (h *StudentHandler) Attendance(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	from, err := parseOptionalDate("startDate", c.QueryParam("startDate"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	to, err := parseOptionalDate("endDate", c.QueryParam("endDate"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	attendance, err := h.studentUC.Attendance(c.Request().Context(), id, usecase.AttendanceQuery{From: from, To: to})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attendance)
}

func (h *StudentHandler) Grades(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	grades, err := h.studentUC.Grades(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, grades)
}

func (h *StudentHandler) Fees(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fees, err := h.studentUC.Fees(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fees)
}

// PayFee handles PATCH /student/fees/:feeId/pay for one of the caller's fees
func (h *StudentHandler) PayFee(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	feeID, err := pathUUID(c, "feeId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fee, err := h.studentUC.PayFee(c.Request().Context(), id, feeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fee)
}
