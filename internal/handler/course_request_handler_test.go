package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kings-labs/elp-api/internal/dto"
)

type courseRequestServiceMock struct {
	requests    []dto.NewCourseRequest
	count       int
	resetCalled bool
}

func (m *courseRequestServiceMock) ListNewAndMarkPending(ctx context.Context) ([]dto.NewCourseRequest, error) {
	return m.requests, nil
}

func (m *courseRequestServiceMock) CountNew(ctx context.Context) (int, error) {
	return m.count, nil
}

func (m *courseRequestServiceMock) ResetPendingToNew(ctx context.Context) (int64, error) {
	m.resetCalled = true
	return 2, nil
}

func getRequest(t *testing.T, handle gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	c.Request = req
	handle(c)
	return w
}

func TestListNewEnvelope(t *testing.T) {
	mockSvc := &courseRequestServiceMock{requests: []dto.NewCourseRequest{{
		ID:        1,
		Subject:   "Maths",
		Frequency: 2,
		LevelName: "GCSE",
		Money:     30,
		Duration:  1,
		DateOptions: []dto.DateOptionView{
			{ID: 10, String: "Monday at 18:00"},
		},
	}}}
	handler := NewCourseRequestHandler(mockSvc)

	w := getRequest(t, handler.ListNew, "/new_course_requests")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Result []dto.NewCourseRequest `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Result, 1)
	assert.Equal(t, "Maths", body.Result[0].Subject)

	// The wire field names are part of the legacy contract.
	assert.Contains(t, w.Body.String(), `"LevelName":"GCSE"`)
	assert.Contains(t, w.Body.String(), `"dateOptions"`)
}

func TestCountEnvelope(t *testing.T) {
	handler := NewCourseRequestHandler(&courseRequestServiceMock{count: 4})

	w := getRequest(t, handler.Count, "/course_requests_number")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 4, body["number"])
}

func TestResetPendingMessage(t *testing.T) {
	mockSvc := &courseRequestServiceMock{}
	handler := NewCourseRequestHandler(mockSvc)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPut, "/change_course_requests_status_to_new", nil)
	require.NoError(t, err)
	c.Request = req
	handler.ResetPending(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "New course request(s) have been updated.", body["message"])
	assert.True(t, mockSvc.resetCalled)
}
