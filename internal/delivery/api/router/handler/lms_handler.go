package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"sms/internal/delivery/api/response"
	"sms/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LMSHandlerParams holds dependencies for LMSHandler, injected by Fx.
type LMSHandlerParams struct {
	fx.In

	LMSUC  usecase.LMSUsecase
	Logger *slog.Logger
}

// LMSHandler serves learning materials, assignments, quizzes and progress.
type LMSHandler struct {
	lmsUC  usecase.LMSUsecase
	logger *slog.Logger
}

// NewLMSHandler is the constructor for LMSHandler
func NewLMSHandler(params LMSHandlerParams) *LMSHandler {
	return &LMSHandler{
		lmsUC:  params.LMSUC,
		logger: params.Logger,
	}
}

type SubmitAssignmentRequest struct {
	AssignmentID string `json:"assignmentId" validate:"required,uuid"`
	FileURL      string `json:"fileUrl" validate:"required,url"`
	FileName     string `json:"fileName"`
}

type SubmitQuizRequest struct {
	Answers json.RawMessage `json:"answers"`
	Score   *float64        `json:"score" validate:"omitempty,gte=0"`
}

// Materials handles GET /lms/materials?subjectId=
func (h *LMSHandler) Materials(c echo.Context) error {
	subjectID, err := optionalQueryUUID(c, "subjectId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	materials, err := h.lmsUC.Materials(c.Request().Context(), subjectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, materials)
}

// Assignments handles GET /lms/assignments?subjectId=
func (h *LMSHandler) Assignments(c echo.Context) error {
	subjectID, err := optionalQueryUUID(c, "subjectId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	assignments, err := h.lmsUC.Assignments(c.Request().Context(), subjectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignments)
}

func (h *LMSHandler) SubmitAssignment(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitAssignmentRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	assignmentID, err := parseUUID("assignmentId", req.AssignmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	submission, err := h.lmsUC.SubmitAssignment(c.Request().Context(), usecase.SubmitAssignmentInput{
		AssignmentID: assignmentID,
		StudentID:    id,
		FileURL:      req.FileURL,
		FileName:     req.FileName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, submission)
}

// Quizzes handles GET /lms/quizzes?subjectId=
func (h *LMSHandler) Quizzes(c echo.Context) error {
	subjectID, err := optionalQueryUUID(c, "subjectId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quizzes, err := h.lmsUC.Quizzes(c.Request().Context(), subjectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quizzes)
}

func (h *LMSHandler) StartQuiz(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	quizID, err := pathUUID(c, "quizId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	attempt, err := h.lmsUC.StartQuiz(c.Request().Context(), quizID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, attempt)
}

func (h *LMSHandler) SubmitQuizAttempt(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	attemptID, err := pathUUID(c, "attemptId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitQuizRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	attempt, err := h.lmsUC.SubmitQuizAttempt(c.Request().Context(), usecase.SubmitQuizAttemptInput{
		AttemptID: attemptID,
		StudentID: id,
		Answers:   req.Answers,
		Score:     req.Score,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attempt)
}

func (h *LMSHandler) Progress(c echo.Context) error {
	id, err := studentID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	progress, err := h.lmsUC.Progress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}
