package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kings-labs/elp-api/internal/dto"
	appErrors "github.com/kings-labs/elp-api/pkg/errors"
)

type requestServiceMock struct {
	cancellationErr error
	reschedulingErr error
	feedbackErr     error
	lastCancel      dto.CancellationPayload
}

func (m *requestServiceMock) CreateCancellation(ctx context.Context, payload dto.CancellationPayload) error {
	m.lastCancel = payload
	return m.cancellationErr
}

func (m *requestServiceMock) CreateRescheduling(ctx context.Context, payload dto.ReschedulingPayload) error {
	return m.reschedulingErr
}

func (m *requestServiceMock) CreateFeedback(ctx context.Context, payload dto.FeedbackPayload) error {
	return m.feedbackErr
}

func postJSON(t *testing.T, handle gin.HandlerFunc, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	handle(c)
	return w
}

func TestCreateCancellationSuccessBody(t *testing.T) {
	mockSvc := &requestServiceMock{}
	handler := NewRequestHandler(mockSvc)

	w := postJSON(t, handler.CreateCancellation, "/cancellation_request", `{"class_ID": 7, "reason": "sick"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Cancellation request created.", body["message"])
	require.NotNil(t, mockSvc.lastCancel.ClassID)
	assert.Equal(t, 7, *mockSvc.lastCancel.ClassID)
}

func TestCreateCancellationPendingConflict(t *testing.T) {
	mockSvc := &requestServiceMock{cancellationErr: appErrors.ErrPendingRequest}
	handler := NewRequestHandler(mockSvc)

	w := postJSON(t, handler.CreateCancellation, "/cancellation_request", `{"class_ID": 7, "reason": "sick"}`)

	require.Equal(t, http.StatusNotAcceptable, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "A request is currently opened for the same class.", body["error"])
}

func TestCreateReschedulingStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        *appErrors.Error
		wantStatus int
		wantBody   string
	}{
		{"bad format", appErrors.ErrInvalidDateFormat, http.StatusRequestTimeout, "Unvalid date format."},
		{"not future", appErrors.ErrDateNotInFuture, http.StatusPaymentRequired, "NewDate is not in the future."},
		{"unknown class", appErrors.ErrClassNotFound, http.StatusPreconditionFailed, "There is no class with that ID."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewRequestHandler(&requestServiceMock{reschedulingErr: tc.err})

			w := postJSON(t, handler.CreateRescheduling, "/rescheduling_request",
				`{"class_ID": 7, "reason": "clash", "new_date": "01/01/2030"}`)

			require.Equal(t, tc.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.wantBody, body["error"])
		})
	}
}

func TestCreateReschedulingSuccessBody(t *testing.T) {
	handler := NewRequestHandler(&requestServiceMock{})

	w := postJSON(t, handler.CreateRescheduling, "/rescheduling_request",
		`{"class_ID": 7, "reason": "clash", "new_date": "01/01/2030"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Cancellation request created.", body["message"])
}

func TestCreateFeedbackSuccessBody(t *testing.T) {
	handler := NewRequestHandler(&requestServiceMock{})

	w := postJSON(t, handler.CreateFeedback, "/feedback_creation", `{"class_ID": 7, "feedback": "great"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Feedback created.", body["message"])
}

func TestCreateCancellationMalformedJSON(t *testing.T) {
	handler := NewRequestHandler(&requestServiceMock{})

	w := postJSON(t, handler.CreateCancellation, "/cancellation_request", `{"class_ID": `)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
