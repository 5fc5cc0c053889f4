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

// AdmissionHandlerParams holds dependencies for AdmissionHandler, injected by Fx.
type AdmissionHandlerParams struct {
	fx.In

	AdmissionUC usecase.AdmissionUsecase
	Logger      *slog.Logger
}

// AdmissionHandler holds dependencies for admission handlers
type AdmissionHandler struct {
	admissionUC usecase.AdmissionUsecase
	logger      *slog.Logger
}

// NewAdmissionHandler is the constructor for AdmissionHandler
func NewAdmissionHandler(params AdmissionHandlerParams) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUC: params.AdmissionUC,
		logger:      params.Logger,
	}
}

type AdmissionDocumentRequest struct {
	Name string `json:"name" validate:"notblank"`
	URL  string `json:"url" validate:"required,url"`
}

// ApplyRequest represents the request body for an admission application
type ApplyRequest struct {
	FirstName string                     `json:"firstName" validate:"notblank"`
	LastName  string                     `json:"lastName" validate:"notblank"`
	Email     string                     `json:"email" validate:"required,email"`
	Phone     string                     `json:"phone" validate:"notblank"`
	DOB       string                     `json:"dob" validate:"required"`
	Address   string                     `json:"address" validate:"notblank"`
	ClassName string                     `json:"className" validate:"notblank"`
	Documents []AdmissionDocumentRequest `json:"documents" validate:"omitempty,dive"`
}

// UpdateStatusRequest represents a review decision
type UpdateStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof=pending shortlisted rejected accepted"`
	Remarks string `json:"remarks"`
}

// Apply handles a public admission application
func (h *AdmissionHandler) Apply(c echo.Context) error {
	var req ApplyRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("dob must be a date"))
	}

	documents := make([]entity.AdmissionDocument, 0, len(req.Documents))
	for _, d := range req.Documents {
		documents = append(documents, entity.AdmissionDocument{Name: d.Name, URL: d.URL})
	}

	form, err := h.admissionUC.Apply(c.Request().Context(), usecase.ApplyInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		DOB:       dob,
		Address:   req.Address,
		ClassName: req.ClassName,
		Documents: documents,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, form)
}

// List handles listing applications with an optional status filter
func (h *AdmissionHandler) List(c echo.Context) error {
	forms, err := h.admissionUC.List(c.Request().Context(), entity.AdmissionStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, forms)
}

// Get handles retrieving one application
func (h *AdmissionHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := h.admissionUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}

// UpdateStatus handles a review decision on an application
func (h *AdmissionHandler) UpdateStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	form, err := h.admissionUC.UpdateStatus(c.Request().Context(), usecase.UpdateAdmissionStatusInput{
		ID:      id,
		Status:  entity.AdmissionStatus(req.Status),
		Remarks: req.Remarks,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}

// Dashboard handles the per-status application counts
func (h *AdmissionHandler) Dashboard(c echo.Context) error {
	stats, err := h.admissionUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
