package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"eventRegistry/internal/http-server/handlers/event/createEvent/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2027, 6, 10, 18, 0, 0, 0, time.UTC)

	testEvent := &models.Event{
		ID:       "3f2504e0-4f89-41d3-9a0c-0305e82c3301",
		Title:    "Go Meetup",
		DateTime: testTime,
		Location: "Berlin",
		Capacity: 100,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"title": "Go Meetup",
				"dateTime": "2027-06-10T18:00:00Z",
				"location": "Berlin",
				"capacity": 100
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Go Meetup", testTime, "Berlin", 100).Return(testEvent, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"message":"event created successfully"`)
				assert.Contains(t, body, testEvent.ID)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"dateTime": "2027-06-10T18:00:00Z",
				"location": "Berlin",
				"capacity": 100
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Title too short",
			requestBody: `{
				"title": "Go",
				"dateTime": "2027-06-10T18:00:00Z",
				"location": "Berlin",
				"capacity": 100
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Missing location",
			requestBody: `{
				"title": "Go Meetup",
				"dateTime": "2027-06-10T18:00:00Z",
				"capacity": 100
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Location")
			},
		},
		{
			name: "Capacity above limit",
			requestBody: `{
				"title": "Go Meetup",
				"dateTime": "2027-06-10T18:00:00Z",
				"location": "Berlin",
				"capacity": 1001
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Capacity")
			},
		},
		{
			name: "Capacity zero",
			requestBody: `{
				"title": "Go Meetup",
				"dateTime": "2027-06-10T18:00:00Z",
				"location": "Berlin",
				"capacity": 0
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Capacity")
			},
		},
		{
			name: "Invalid date format",
			requestBody: `{
				"title": "Go Meetup",
				"dateTime": "not-a-date",
				"location": "Berlin",
				"capacity": 100
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Store rejects capacity",
			requestBody: `{
				"title": "Go Meetup",
				"dateTime": "2027-06-10T18:00:00Z",
				"location": "Berlin",
				"capacity": 100
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Go Meetup", testTime, "Berlin", 100).Return(nil, storage.ErrInvalidCapacity)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"capacity must be between 1 and 1000"}`,
		},
		{
			name: "Internal server error",
			requestBody: `{
				"title": "Go Meetup",
				"dateTime": "2027-06-10T18:00:00Z",
				"location": "Berlin",
				"capacity": 100
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Go Meetup", testTime, "Berlin", 100).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/api/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestCreatedResponseFormat(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	event := &models.Event{
		ID:       "8b8e8c1e-6a3f-4f57-9a11-51a1f87f43a2",
		Title:    "Go Meetup",
		DateTime: time.Date(2027, 6, 10, 18, 0, 0, 0, time.UTC),
		Location: "Berlin",
		Capacity: 50,
	}

	responseCreated(rr, req, event)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, "event created successfully", actualResponse.Message)
	require.NotNil(t, actualResponse.Event)
	assert.Equal(t, event.ID, actualResponse.Event.ID)
	assert.Equal(t, 50, actualResponse.Event.Capacity)
}
