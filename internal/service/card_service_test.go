// internal/service/card_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vietcards/internal/model"
	"vietcards/internal/repository"
	"vietcards/internal/repository/mocks"
)

// setupTestDB opens an in-memory sqlite handle so services can run their
// transactions; the repositories themselves are mocked.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	return db
}

func Test_cardService_CreateCard(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       *model.CreateCardRequest
		setupMock func(repo *mocks.CardRepository)
		wantErr   error
		wantCard  bool
	}{
		{
			name: "creates card with default difficulty",
			req:  &model.CreateCardRequest{Vietnamese: "xin chào", English: "hello", Category: "greetings"},
			setupMock: func(repo *mocks.CardRepository) {
				repo.On("PairExists", ctx, mock.AnythingOfType("*gorm.DB"), "xin chào", "hello").
					Return(false, nil).Once()
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Card")).
					Run(func(args mock.Arguments) {
						card := args.Get(2).(*model.Card)
						assert.Equal(t, "xin chào", card.Vietnamese)
						assert.Equal(t, "hello", card.English)
						assert.Equal(t, "greetings", card.Category)
						assert.Equal(t, 1, card.DifficultyLevel)
					}).Return(nil).Once()
			},
			wantCard: true,
		},
		{
			name: "keeps explicit difficulty",
			req:  &model.CreateCardRequest{Vietnamese: "khó", English: "difficult", DifficultyLevel: 3},
			setupMock: func(repo *mocks.CardRepository) {
				repo.On("PairExists", ctx, mock.AnythingOfType("*gorm.DB"), "khó", "difficult").
					Return(false, nil).Once()
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Card")).
					Run(func(args mock.Arguments) {
						card := args.Get(2).(*model.Card)
						assert.Equal(t, 3, card.DifficultyLevel)
					}).Return(nil).Once()
			},
			wantCard: true,
		},
		{
			name:      "rejects empty vietnamese",
			req:       &model.CreateCardRequest{Vietnamese: "", English: "hello"},
			setupMock: func(repo *mocks.CardRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "rejects duplicate pair",
			req:  &model.CreateCardRequest{Vietnamese: "xin chào", English: "hello"},
			setupMock: func(repo *mocks.CardRepository) {
				repo.On("PairExists", ctx, mock.AnythingOfType("*gorm.DB"), "xin chào", "hello").
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.CardRepository)
			tt.setupMock(mockRepo)
			svc := NewCardService(setupTestDB(t), mockRepo)

			card, err := svc.CreateCard(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.wantCard {
				require.NotNil(t, card)
			} else {
				assert.Nil(t, card)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_cardService_GetRandomCard(t *testing.T) {
	ctx := context.Background()
	card := &model.Card{ID: 7, Vietnamese: "cà phê", English: "coffee", Category: "food"}

	tests := []struct {
		name       string
		mode       model.QuizMode
		category   string
		setupMock  func(repo *mocks.CardRepository)
		wantErr    error
		wantPrompt string
		wantMode   model.QuizMode
	}{
		{
			name: "empty mode defaults to eng_to_viet",
			mode: "",
			setupMock: func(repo *mocks.CardRepository) {
				repo.On("FindRandom", ctx, mock.AnythingOfType("*gorm.DB"), "").
					Return(card, nil).Once()
			},
			wantPrompt: "coffee",
			wantMode:   model.ModeEngToViet,
		},
		{
			name:     "viet_to_eng prompts with vietnamese",
			mode:     model.ModeVietToEng,
			category: "food",
			setupMock: func(repo *mocks.CardRepository) {
				repo.On("FindRandom", ctx, mock.AnythingOfType("*gorm.DB"), "food").
					Return(card, nil).Once()
			},
			wantPrompt: "cà phê",
			wantMode:   model.ModeVietToEng,
		},
		{
			name:      "invalid mode",
			mode:      "backwards",
			setupMock: func(repo *mocks.CardRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "no cards available",
			mode: model.ModeEngToViet,
			setupMock: func(repo *mocks.CardRepository) {
				repo.On("FindRandom", ctx, mock.AnythingOfType("*gorm.DB"), "").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.CardRepository)
			tt.setupMock(mockRepo)
			svc := NewCardService(setupTestDB(t), mockRepo)

			quizCard, err := svc.GetRandomCard(ctx, tt.mode, tt.category)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, quizCard)
			} else {
				require.NoError(t, err)
				require.NotNil(t, quizCard)
				assert.Equal(t, card.ID, quizCard.ID)
				assert.Equal(t, tt.wantPrompt, quizCard.Prompt)
				assert.Equal(t, tt.wantMode, quizCard.Mode)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_cardService_GetStats(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		totals       *repository.CardTotals
		byCategory   []repository.CategoryTotals
		wantAccuracy float64
		wantAttempts int64
	}{
		{
			name:         "zero attempts means zero accuracy",
			totals:       &repository.CardTotals{TotalCards: 5},
			byCategory:   nil,
			wantAccuracy: 0,
			wantAttempts: 0,
		},
		{
			name:   "accuracy rounded to one decimal",
			totals: &repository.CardTotals{TotalCards: 10, TotalSuccess: 2, TotalFail: 1},
			byCategory: []repository.CategoryTotals{
				{Category: "food", TotalCards: 10, TotalSuccess: 2, TotalFail: 1, Mastered: 4},
			},
			wantAccuracy: 66.7,
			wantAttempts: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.CardRepository)
			mockRepo.On("Totals", ctx, mock.AnythingOfType("*gorm.DB")).Return(tt.totals, nil).Once()
			mockRepo.On("TotalsByCategory", ctx, mock.AnythingOfType("*gorm.DB")).Return(tt.byCategory, nil).Once()
			svc := NewCardService(setupTestDB(t), mockRepo)

			stats, err := svc.GetStats(ctx)

			require.NoError(t, err)
			require.NotNil(t, stats)
			assert.Equal(t, tt.totals.TotalCards, stats.TotalCards)
			assert.Equal(t, tt.wantAttempts, stats.TotalAttempts)
			assert.InDelta(t, tt.wantAccuracy, stats.Accuracy, 0.001)
			assert.Len(t, stats.PerCategory, len(tt.byCategory))
			if len(tt.byCategory) > 0 {
				assert.Equal(t, "food", stats.PerCategory[0].Category)
				assert.InDelta(t, 66.7, stats.PerCategory[0].Accuracy, 0.001)
				assert.Equal(t, int64(4), stats.PerCategory[0].Mastered)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_cardService_ResetMastery(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mocks.CardRepository)
	mockRepo.On("ResetMastery", ctx, mock.AnythingOfType("*gorm.DB"), "food").
		Return(int64(3), nil).Once()
	svc := NewCardService(setupTestDB(t), mockRepo)

	count, err := svc.ResetMastery(ctx, "food")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	mockRepo.AssertExpectations(t)
}

func Test_cardService_DeleteAllCards(t *testing.T) {
	ctx := context.Background()

	t.Run("returns deleted count", func(t *testing.T) {
		mockRepo := new(mocks.CardRepository)
		mockRepo.On("DeleteAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(int64(42), nil).Once()
		svc := NewCardService(setupTestDB(t), mockRepo)

		count, err := svc.DeleteAllCards(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(42), count)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository failure surfaces as internal error", func(t *testing.T) {
		mockRepo := new(mocks.CardRepository)
		mockRepo.On("DeleteAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(int64(0), errors.New("boom")).Once()
		svc := NewCardService(setupTestDB(t), mockRepo)

		_, err := svc.DeleteAllCards(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		mockRepo.AssertExpectations(t)
	})
}
