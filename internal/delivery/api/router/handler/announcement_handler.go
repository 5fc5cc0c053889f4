package handler

import (
	"log/slog"
	"net/http"

	"sms/internal/delivery/api/response"
	"sms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnnouncementHandlerParams holds dependencies for AnnouncementHandler, injected by Fx.
type AnnouncementHandlerParams struct {
	fx.In

	AnnouncementUC usecase.AnnouncementUsecase
	Logger         *slog.Logger
}

// AnnouncementHandler holds dependencies for announcement handlers
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
	logger         *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler
func NewAnnouncementHandler(params AnnouncementHandlerParams) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementUC: params.AnnouncementUC,
		logger:         params.Logger,
	}
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"notblank,max=200"`
	Content string `json:"content" validate:"notblank"`
	Type    string `json:"type" validate:"omitempty,max=50"`
	Target  string `json:"target" validate:"omitempty,max=50"`
}

// UpdateAnnouncementRequest is a partial update; omitted fields stay unchanged.
type UpdateAnnouncementRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content"`
	Type    *string `json:"type" validate:"omitempty,max=50"`
	Target  *string `json:"target" validate:"omitempty,max=50"`
}

// List handles listing the newest announcements for a target audience
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.announcementUC.List(c.Request().Context(), c.QueryParam("target"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcements)
}

func (h *AnnouncementHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	announcement, err := h.announcementUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

// Create handles publishing an announcement as the caller
func (h *AnnouncementHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateAnnouncementRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	announcement, err := h.announcementUC.Create(c.Request().Context(), usecase.CreateAnnouncementInput{
		Title:     req.Title,
		Content:   req.Content,
		Type:      req.Type,
		Target:    req.Target,
		CreatedBy: identity.AccountID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateAnnouncementRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	announcement, err := h.announcementUC.Update(c.Request().Context(), usecase.UpdateAnnouncementInput{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Type:    req.Type,
		Target:  req.Target,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}

func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.announcementUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id, "deleted": true})
}
