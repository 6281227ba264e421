// internal/handlers/topic_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vietcards/internal/handlers"
	"vietcards/internal/model"
	"vietcards/internal/service/mocks"
)

func TestTopicHandler_GetTopics(t *testing.T) {
	mockService := new(mocks.TopicService)
	mockService.On("ListTopics", mock.Anything).
		Return([]model.TopicInfo{
			{Name: "Food And Drink", Filename: "food_and_drink.csv"},
			{Name: "Greetings", Filename: "greetings.csv"},
		}, nil).Once()
	handler := handlers.NewTopicHandler(mockService, testLogger)
	router := chi.NewRouter()
	router.Get("/api/v1/topics", handler.GetTopics)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, createRequest(t, "GET", "/api/v1/topics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var topics []model.TopicInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topics))
	require.Len(t, topics, 2)
	assert.Equal(t, "Greetings", topics[1].Name)
	mockService.AssertExpectations(t)
}

func TestTopicHandler_PostLoad(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(svc *mocks.TopicService)
		expectedStatus int
	}{
		{
			name: "loads a file",
			body: model.TopicLoadRequest{Filename: "greetings.csv"},
			setupMock: func(svc *mocks.TopicService) {
				svc.On("LoadTopic", mock.Anything, "greetings.csv", false).
					Return(&model.TopicLoadResult{Filename: "greetings.csv", Inserted: 5, Skipped: 2, Rejected: 1}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "clear_existing forwarded",
			body: model.TopicLoadRequest{Filename: "greetings.csv", ClearExisting: true},
			setupMock: func(svc *mocks.TopicService) {
				svc.On("LoadTopic", mock.Anything, "greetings.csv", true).
					Return(&model.TopicLoadResult{Filename: "greetings.csv", Inserted: 5}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing filename fails validation",
			body:           model.TopicLoadRequest{},
			setupMock:      func(svc *mocks.TopicService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown file is 404",
			body: model.TopicLoadRequest{Filename: "ghost.csv"},
			setupMock: func(svc *mocks.TopicService) {
				svc.On("LoadTopic", mock.Anything, "ghost.csv", false).
					Return(nil, model.NewAppError("TOPIC_NOT_FOUND", "Vocabulary file not found: ghost.csv", "filename", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.TopicService)
			tc.setupMock(mockService)
			handler := handlers.NewTopicHandler(mockService, testLogger)
			router := chi.NewRouter()
			router.Post("/api/v1/topics/load", handler.PostLoad)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/topics/load", tc.body))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp model.TopicLoadResult
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "greetings.csv", resp.Filename)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestTopicHandler_PostSync(t *testing.T) {
	mockService := new(mocks.TopicService)
	mockService.On("SyncAllTopics", mock.Anything).
		Return(&model.SyncResult{
			Files: map[string]model.TopicLoadResult{
				"a.csv": {Filename: "a.csv", Inserted: 3},
			},
			Errors: map[string]string{"b.csv": "could not parse vocabulary file"},
		}, nil).Once()
	handler := handlers.NewTopicHandler(mockService, testLogger)
	router := chi.NewRouter()
	router.Post("/api/v1/topics/sync", handler.PostSync)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/topics/sync", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.SyncResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Files["a.csv"].Inserted)
	assert.Contains(t, resp.Errors, "b.csv")
	mockService.AssertExpectations(t)
}
