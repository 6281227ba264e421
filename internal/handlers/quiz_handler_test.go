// internal/handlers/quiz_handler_test.go
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

func TestQuizHandler_PostCheck(t *testing.T) {
	validReq := model.CheckRequest{CardID: 1, UserInput: "ngày mai", Mode: model.ModeEngToViet}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(svc *mocks.QuizService)
		expectedStatus int
		wantCorrect    bool
	}{
		{
			name: "correct answer",
			body: validReq,
			setupMock: func(svc *mocks.QuizService) {
				svc.On("CheckAnswer", mock.Anything, &validReq).
					Return(&model.CheckResponse{Correct: true, Expected: "ngày mai", UserInput: "ngày mai"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantCorrect:    true,
		},
		{
			name: "incorrect answer includes diff",
			body: model.CheckRequest{CardID: 1, UserInput: "ngay mai", Mode: model.ModeEngToViet},
			setupMock: func(svc *mocks.QuizService) {
				svc.On("CheckAnswer", mock.Anything, mock.AnythingOfType("*model.CheckRequest")).
					Return(&model.CheckResponse{Correct: false, Expected: "ngày mai", UserInput: "ngay mai", Diff: "'a'->'à'"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing card_id fails validation",
			body:           model.CheckRequest{UserInput: "x", Mode: model.ModeEngToViet},
			setupMock:      func(svc *mocks.QuizService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad mode fails validation",
			body:           model.CheckRequest{CardID: 1, UserInput: "x", Mode: "sideways"},
			setupMock:      func(svc *mocks.QuizService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown card is 404",
			body: validReq,
			setupMock: func(svc *mocks.QuizService) {
				svc.On("CheckAnswer", mock.Anything, &validReq).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.QuizService)
			tc.setupMock(mockService)
			handler := handlers.NewQuizHandler(mockService, testLogger)
			router := chi.NewRouter()
			router.Post("/api/v1/quiz/check", handler.PostCheck)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/quiz/check", tc.body))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp model.CheckResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantCorrect, resp.Correct)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestQuizHandler_PostGiveUp(t *testing.T) {
	t.Run("reveals both sides", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		mockService.On("GiveUp", mock.Anything, uint(1)).
			Return(&model.GiveUpResponse{Answer: "ngày mai", Vietnamese: "ngày mai", English: "tomorrow"}, nil).Once()
		handler := handlers.NewQuizHandler(mockService, testLogger)
		router := chi.NewRouter()
		router.Post("/api/v1/quiz/give_up", handler.PostGiveUp)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/quiz/give_up", model.GiveUpRequest{CardID: 1}))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.GiveUpResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "ngày mai", resp.Answer)
		assert.Equal(t, "tomorrow", resp.English)
		mockService.AssertExpectations(t)
	})

	t.Run("missing card_id fails validation", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		handler := handlers.NewQuizHandler(mockService, testLogger)
		router := chi.NewRouter()
		router.Post("/api/v1/quiz/give_up", handler.PostGiveUp)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/quiz/give_up", model.GiveUpRequest{}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestQuizHandler_PostHint(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(svc *mocks.QuizService)
		expectedStatus int
		wantHint       string
	}{
		{
			name: "level 2 hint",
			body: model.HintRequest{CardID: 1, HintLevel: 2, Mode: model.ModeEngToViet},
			setupMock: func(svc *mocks.QuizService) {
				svc.On("GetHint", mock.Anything, uint(1), 2, model.ModeEngToViet).
					Return(&model.HintResponse{Hint: "n___ m__", HintLevel: 2}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantHint:       "n___ m__",
		},
		{
			name: "out-of-range level is 400",
			body: model.HintRequest{CardID: 1, HintLevel: 4, Mode: model.ModeEngToViet},
			setupMock: func(svc *mocks.QuizService) {
				svc.On("GetHint", mock.Anything, uint(1), 4, model.ModeEngToViet).
					Return(nil, model.NewAppError("INVALID_HINT_LEVEL", "hint_level must be between 1 and 3.", "hint_level", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing hint_level fails validation",
			body:           model.HintRequest{CardID: 1, Mode: model.ModeEngToViet},
			setupMock:      func(svc *mocks.QuizService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.QuizService)
			tc.setupMock(mockService)
			handler := handlers.NewQuizHandler(mockService, testLogger)
			router := chi.NewRouter()
			router.Post("/api/v1/quiz/hint", handler.PostHint)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, "POST", "/api/v1/quiz/hint", tc.body))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.wantHint != "" {
				var resp model.HintResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.wantHint, resp.Hint)
			}
			mockService.AssertExpectations(t)
		})
	}
}
