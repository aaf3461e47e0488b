package cancelRegistration

import (
	"encoding/json"
	"errors"
	"eventRegistry/internal/http-server/handlers/event/cancelRegistration/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEventID = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"
	testUserID  = "8b8e8c1e-6a3f-4f57-9a11-51a1f87f43a2"
)

func TestCancelRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		userID         string
		mockSetup      func(mock *mocks.RegistrationCanceler)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: testEventID,
			userID:  testUserID,
			mockSetup: func(mock *mocks.RegistrationCanceler) {
				mock.On("CancelRegistration", testEventID, testUserID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"registration cancelled successfully"}`,
		},
		{
			name:           "Invalid event id format",
			eventID:        "not-a-uuid",
			userID:         testUserID,
			mockSetup:      func(mock *mocks.RegistrationCanceler) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Invalid user id format",
			eventID:        testEventID,
			userID:         "not-a-uuid",
			mockSetup:      func(mock *mocks.RegistrationCanceler) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid user id format"}`,
		},
		{
			name:    "Event not found",
			eventID: testEventID,
			userID:  testUserID,
			mockSetup: func(mock *mocks.RegistrationCanceler) {
				mock.On("CancelRegistration", testEventID, testUserID).Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "User not found",
			eventID: testEventID,
			userID:  testUserID,
			mockSetup: func(mock *mocks.RegistrationCanceler) {
				mock.On("CancelRegistration", testEventID, testUserID).Return(storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:    "Registration not found",
			eventID: testEventID,
			userID:  testUserID,
			mockSetup: func(mock *mocks.RegistrationCanceler) {
				mock.On("CancelRegistration", testEventID, testUserID).Return(storage.ErrRegistrationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"registration not found. user is not registered for this event"}`,
		},
		{
			name:    "Internal server error",
			eventID: testEventID,
			userID:  testUserID,
			mockSetup: func(mock *mocks.RegistrationCanceler) {
				mock.On("CancelRegistration", testEventID, testUserID).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel registration"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceler := mocks.NewRegistrationCanceler(t)
			tc.mockSetup(mockCanceler)

			handler := New(logger, mockCanceler)

			url := "/api/events/" + tc.eventID + "/register/" + tc.userID

			req, err := http.NewRequest("DELETE", url, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Delete("/api/events/{id}/register/{userId}", handler)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse CancelResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, "registration cancelled successfully", actualResponse.Message)
}
