// internal/service/quiz_service.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"vietcards/internal/middleware"
	"vietcards/internal/model"
	"vietcards/internal/repository"
	"vietcards/internal/vntext"
)

type QuizService interface {
	CheckAnswer(ctx context.Context, req *model.CheckRequest) (*model.CheckResponse, error)
	GiveUp(ctx context.Context, cardID uint) (*model.GiveUpResponse, error)
	GetHint(ctx context.Context, cardID uint, level int, mode model.QuizMode) (*model.HintResponse, error)
}

type quizService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
}

func NewQuizService(db *gorm.DB, cardRepo repository.CardRepository) QuizService {
	return &quizService{db: db, cardRepo: cardRepo}
}

func (s *quizService) CheckAnswer(ctx context.Context, req *model.CheckRequest) (*model.CheckResponse, error) {
	logger := middleware.GetLogger(ctx).With("card_id", req.CardID)

	if !req.Mode.Valid() {
		return nil, model.NewAppError("INVALID_MODE", "mode must be eng_to_viet or viet_to_eng.", "mode", model.ErrInvalidInput)
	}

	var resp *model.CheckResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, req.CardID)
		if err != nil {
			return err
		}

		userNorm := vntext.Normalize(req.UserInput)
		vietNorm := vntext.Normalize(card.Vietnamese)
		engNorm := vntext.Normalize(card.English)

		// Lenient cross-check: either language counts as correct
		// regardless of quiz direction.
		correctViet := userNorm == vietNorm
		correctEng := userNorm == engNorm
		correct := correctViet || correctEng

		// The canonical expected answer follows the quiz direction; on a
		// correct answer it is whichever field actually matched.
		expected := card.Vietnamese
		expectedNorm := vietNorm
		if req.Mode == model.ModeVietToEng {
			expected = card.English
			expectedNorm = engNorm
		}
		if correct {
			if correctViet {
				expected = card.Vietnamese
				expectedNorm = vietNorm
			} else {
				expected = card.English
				expectedNorm = engNorm
			}
		}

		diff := ""
		if !correct {
			diff = vntext.Diff(expectedNorm, userNorm)
		}

		// A correct answer is always recorded; a wrong one only when the
		// caller asked for it (e.g. on the final attempt).
		if correct || req.RecordResult {
			now := time.Now()
			updates := map[string]interface{}{"last_reviewed": &now}
			if correct {
				updates["success_count"] = card.SuccessCount + 1
				if req.MarkMastered {
					updates["mastered"] = true
				}
			} else {
				updates["fail_count"] = card.FailCount + 1
			}
			if err := s.cardRepo.Update(ctx, tx, card.ID, updates); err != nil {
				logger.Error("Error recording quiz result", "error", err)
				return model.ErrInternalServer
			}
		}

		resp = &model.CheckResponse{
			Correct:   correct,
			Expected:  expected,
			UserInput: req.UserInput,
			Diff:      diff,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Answer checked", "correct", resp.Correct, "recorded", resp.Correct || req.RecordResult)
	return resp, nil
}

func (s *quizService) GiveUp(ctx context.Context, cardID uint) (*model.GiveUpResponse, error) {
	logger := middleware.GetLogger(ctx).With("card_id", cardID)

	var resp *model.GiveUpResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, cardID)
		if err != nil {
			return err
		}

		// Giving up always counts as a failed attempt.
		now := time.Now()
		updates := map[string]interface{}{
			"fail_count":    card.FailCount + 1,
			"last_reviewed": &now,
		}
		if err := s.cardRepo.Update(ctx, tx, card.ID, updates); err != nil {
			logger.Error("Error recording give-up", "error", err)
			return model.ErrInternalServer
		}

		resp = &model.GiveUpResponse{
			Answer:     card.Vietnamese,
			Vietnamese: card.Vietnamese,
			English:    card.English,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Gave up on card")
	return resp, nil
}

func (s *quizService) GetHint(ctx context.Context, cardID uint, level int, mode model.QuizMode) (*model.HintResponse, error) {
	if level < vntext.HintLevelMin || level > vntext.HintLevelMax {
		return nil, model.NewAppError("INVALID_HINT_LEVEL", "hint_level must be between 1 and 3.", "hint_level", model.ErrInvalidInput)
	}
	if !mode.Valid() {
		return nil, model.NewAppError("INVALID_MODE", "mode must be eng_to_viet or viet_to_eng.", "mode", model.ErrInvalidInput)
	}

	card, err := s.cardRepo.FindByID(ctx, s.db, cardID)
	if err != nil {
		return nil, err
	}

	answer := card.Vietnamese
	if mode == model.ModeVietToEng {
		answer = card.English
	}

	// Hints are purely informational: no counters move, even at level 3.
	return &model.HintResponse{
		Hint:      vntext.Hint(answer, level),
		HintLevel: level,
	}, nil
}
