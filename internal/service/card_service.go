// internal/service/card_service.go
package service

import (
	"context"
	"math"

	"gorm.io/gorm"

	"vietcards/internal/middleware"
	"vietcards/internal/model"
	"vietcards/internal/repository"
)

type CardService interface {
	CreateCard(ctx context.Context, req *model.CreateCardRequest) (*model.Card, error)
	GetRandomCard(ctx context.Context, mode model.QuizMode, category string) (*model.QuizCard, error)
	ListCards(ctx context.Context, category string, skip, limit int) ([]*model.Card, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetStats(ctx context.Context) (*model.StatsResponse, error)
	ResetMastery(ctx context.Context, category string) (int64, error)
	DeleteAllCards(ctx context.Context) (int64, error)
}

type cardService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
}

func NewCardService(db *gorm.DB, cardRepo repository.CardRepository) CardService {
	return &cardService{db: db, cardRepo: cardRepo}
}

func (s *cardService) CreateCard(ctx context.Context, req *model.CreateCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)

	if req.Vietnamese == "" || req.English == "" {
		return nil, model.ErrInvalidInput
	}

	difficulty := req.DifficultyLevel
	if difficulty <= 0 {
		difficulty = 1
	}

	var created *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.cardRepo.PairExists(ctx, tx, req.Vietnamese, req.English)
		if err != nil {
			logger.Error("Error checking card pair existence", "error", err)
			return model.ErrInternalServer
		}
		if exists {
			return model.NewAppError("DUPLICATE_CARD", "A card with this Vietnamese/English pair already exists.", "", model.ErrConflict)
		}

		card := &model.Card{
			Vietnamese:      req.Vietnamese,
			English:         req.English,
			Category:        req.Category,
			DifficultyLevel: difficulty,
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			logger.Error("Error creating card", "error", err)
			return model.ErrInternalServer
		}

		created = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card created", "card_id", created.ID, "english", created.English)
	return created, nil
}

func (s *cardService) GetRandomCard(ctx context.Context, mode model.QuizMode, category string) (*model.QuizCard, error) {
	if mode == "" {
		mode = model.ModeEngToViet
	}
	if !mode.Valid() {
		return nil, model.NewAppError("INVALID_MODE", "mode must be eng_to_viet or viet_to_eng.", "mode", model.ErrInvalidInput)
	}

	card, err := s.cardRepo.FindRandom(ctx, s.db, category)
	if err != nil {
		return nil, err
	}

	// Only the prompt side is exposed; the answer stays on the server.
	prompt := card.English
	if mode == model.ModeVietToEng {
		prompt = card.Vietnamese
	}

	return &model.QuizCard{
		ID:       card.ID,
		Prompt:   prompt,
		Mode:     mode,
		Category: card.Category,
	}, nil
}

func (s *cardService) ListCards(ctx context.Context, category string, skip, limit int) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)

	cards, err := s.cardRepo.List(ctx, s.db, category, skip, limit)
	if err != nil {
		logger.Error("Error listing cards", "error", err)
		return nil, model.ErrInternalServer
	}
	return cards, nil
}

func (s *cardService) ListCategories(ctx context.Context) ([]string, error) {
	logger := middleware.GetLogger(ctx)

	categories, err := s.cardRepo.Categories(ctx, s.db)
	if err != nil {
		logger.Error("Error listing categories", "error", err)
		return nil, model.ErrInternalServer
	}
	return categories, nil
}

func (s *cardService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	totals, err := s.cardRepo.Totals(ctx, s.db)
	if err != nil {
		logger.Error("Error aggregating totals", "error", err)
		return nil, model.ErrInternalServer
	}

	byCategory, err := s.cardRepo.TotalsByCategory(ctx, s.db)
	if err != nil {
		logger.Error("Error aggregating per-category totals", "error", err)
		return nil, model.ErrInternalServer
	}

	attempts := totals.TotalSuccess + totals.TotalFail
	resp := &model.StatsResponse{
		TotalCards:    totals.TotalCards,
		TotalSuccess:  totals.TotalSuccess,
		TotalFail:     totals.TotalFail,
		TotalAttempts: attempts,
		Accuracy:      accuracyPercent(totals.TotalSuccess, attempts),
		PerCategory:   make([]model.CategoryStats, 0, len(byCategory)),
	}

	for _, c := range byCategory {
		catAttempts := c.TotalSuccess + c.TotalFail
		resp.PerCategory = append(resp.PerCategory, model.CategoryStats{
			Category:      c.Category,
			TotalCards:    c.TotalCards,
			TotalSuccess:  c.TotalSuccess,
			TotalFail:     c.TotalFail,
			TotalAttempts: catAttempts,
			Accuracy:      accuracyPercent(c.TotalSuccess, catAttempts),
			Mastered:      c.Mastered,
		})
	}

	return resp, nil
}

func (s *cardService) ResetMastery(ctx context.Context, category string) (int64, error) {
	logger := middleware.GetLogger(ctx)

	var count int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.cardRepo.ResetMastery(ctx, tx, category)
		if err != nil {
			return model.ErrInternalServer
		}
		count = n
		return nil
	})
	if err != nil {
		logger.Error("Error resetting mastery", "error", err, "category", category)
		return 0, err
	}

	logger.Info("Mastery reset", "cards_reset", count, "category", category)
	return count, nil
}

func (s *cardService) DeleteAllCards(ctx context.Context) (int64, error) {
	logger := middleware.GetLogger(ctx)

	var count int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.cardRepo.DeleteAll(ctx, tx)
		if err != nil {
			return model.ErrInternalServer
		}
		count = n
		return nil
	})
	if err != nil {
		logger.Error("Error deleting all cards", "error", err)
		return 0, err
	}

	logger.Warn("All cards deleted", "cards_deleted", count)
	return count, nil
}

// accuracyPercent computes success/attempts as a percentage with one
// decimal. Zero attempts is zero accuracy, not a division error.
func accuracyPercent(success, attempts int64) float64 {
	if attempts == 0 {
		return 0
	}
	return math.Round(float64(success)/float64(attempts)*1000) / 10
}
