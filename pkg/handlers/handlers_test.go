package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/curiouspeterson/schedule-app-router/pkg/models"
)

// testRouter exposes only the stateless engine endpoints; the middlewares and
// storage-backed handlers need a database and are exercised elsewhere
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Log: zap.NewNop()}
	r := gin.New()
	r.POST("/schedule", h.SchedulePreview)
	r.POST("/validate", h.ValidateInput)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func previewInput() models.ScheduleInput {
	return models.ScheduleInput{
		ScheduleID: "preview-1",
		WeekStart:  "2024-01-01",
		Employees: []models.Employee{
			{ID: "e1", Name: "Alice", Role: "cashier"},
		},
		Shifts: []models.Shift{
			{ID: "s1", Role: "cashier", StartTime: "09:00", EndTime: "13:00"},
		},
		Availability: []models.AvailabilityPattern{
			{EmployeeID: "e1", DayOfWeek: 1, StartTime: "08:00", EndTime: "17:00"},
		},
		CoverageRequirements: []models.CoverageRequirement{
			{Date: "2024-01-01", ShiftID: "s1"},
		},
	}
}

func TestSchedulePreview(t *testing.T) {
	r := testRouter()

	w := postJSON(t, r, "/schedule", previewInput())
	require.Equal(t, http.StatusOK, w.Code)

	var result models.ScheduleResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "e1", result.Assignments[0].EmployeeID)
	assert.Empty(t, result.UnassignedShifts)
	assert.Equal(t, 1, result.EmployeeStats["e1"].AssignedShiftCount)
}

func TestSchedulePreviewRejectsMalformedSnapshot(t *testing.T) {
	r := testRouter()

	in := previewInput()
	in.CoverageRequirements[0].ShiftID = "missing"

	w := postJSON(t, r, "/schedule", in)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "missing")
}

func TestValidateInputAcceptsGoodSnapshot(t *testing.T) {
	r := testRouter()

	w := postJSON(t, r, "/validate", previewInput())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
}

func TestValidateInputFlagsDuplicateEmployee(t *testing.T) {
	r := testRouter()

	in := previewInput()
	in.Employees = append(in.Employees, models.Employee{ID: "e1", Name: "Clone", Role: "cashier"})

	w := postJSON(t, r, "/validate", in)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
	assert.Contains(t, w.Body.String(), "e1")
}

func TestFormatTime12h(t *testing.T) {
	assert.Equal(t, "9:00 AM", formatTime12h("09:00"))
	assert.Equal(t, "12:30 PM", formatTime12h("12:30"))
	assert.Equal(t, "12:05 AM", formatTime12h("00:05"))
	assert.Equal(t, "11:59 PM", formatTime12h("23:59"))
}
