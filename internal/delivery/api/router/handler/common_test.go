package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	mockUC "sms/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", raw: "2024-03-15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "padded calendar date", raw: " 2024-03-15 ", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", raw: "2024-03-15T09:30:00Z", want: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)},
		{name: "garbage", raw: "15/03/2024", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := parseOptionalDate("startDate", "  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOptionalDate("startDate", "2024-01-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 31, got.Day())

	_, err = parseOptionalDate("startDate", "yesterday")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func newQueryContext(target string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestOptionalQueryUUID(t *testing.T) {
	id := uuid.New()

	got, err := optionalQueryUUID(newQueryContext("/lms/materials?subjectId="+id.String()), "subjectId")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	got, err = optionalQueryUUID(newQueryContext("/lms/materials"), "subjectId")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = optionalQueryUUID(newQueryContext("/lms/materials?subjectId=abc"), "subjectId")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPathUUID(t *testing.T) {
	c := newQueryContext("/student/fees/x/pay")
	c.SetParamNames("feeId")
	c.SetParamValues("not-a-uuid")

	_, err := pathUUID(c, "feeId")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	id := uuid.New()
	c.SetParamValues(id.String())
	got, err := pathUUID(c, "feeId")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestStudentIDRequiresProfile(t *testing.T) {
	c := newQueryContext("/student/fees")

	_, err := studentID(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

// acceptAllValidator lets malformed bodies through so the handlers' own parsing is exercised.
type acceptAllValidator struct{}

func (acceptAllValidator) Validate(any) error { return nil }

func TestHandlers_MalformedBodyIDs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	staff := NewStaffHandler(StaffHandlerParams{StaffUC: mockUC.NewMockStaffUsecase(t), Logger: logger})
	lms := NewLMSHandler(LMSHandlerParams{LMSUC: mockUC.NewMockLMSUsecase(t), Logger: logger})
	profileID := uuid.New()

	tests := []struct {
		name string
		body string
		call echo.HandlerFunc
	}{
		{name: "attendance student id", body: `{"studentId":"x","date":"2024-03-15","status":"present"}`, call: staff.MarkAttendance},
		{name: "grade subject id", body: `{"studentId":"` + uuid.NewString() + `","subjectId":"x","marks":1,"maxMarks":10}`, call: staff.AddGrade},
		{name: "submission assignment id", body: `{"assignmentId":"x"}`, call: lms.SubmitAssignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = acceptAllValidator{}
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			deliverycontext.SetIdentity(c, &entity.Identity{Role: entity.RoleStudent, StudentID: &profileID})

			require.NotPanics(t, func() {
				require.NoError(t, tt.call(c))
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
		})
	}
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()

	got, err := parseUUID("studentId", " "+id.String()+" ")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = parseUUID("studentId", "12")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
