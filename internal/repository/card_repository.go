//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vietcards/internal/middleware"
	"vietcards/internal/model"
)

// CardTotals are the raw aggregate counters across a set of cards.
type CardTotals struct {
	TotalCards   int64
	TotalSuccess int64
	TotalFail    int64
}

// CategoryTotals are CardTotals grouped by category, plus the mastered count.
type CategoryTotals struct {
	Category     string
	TotalCards   int64
	TotalSuccess int64
	TotalFail    int64
	Mastered     int64
}

// CardRepository is the persistence boundary for cards. Methods take the
// *gorm.DB (or transaction) they should run against, so services can group
// multiple calls into one transaction.
type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Card) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.Card, error)
	FindRandom(ctx context.Context, db *gorm.DB, category string) (*model.Card, error)
	List(ctx context.Context, db *gorm.DB, category string, offset, limit int) ([]*model.Card, error)
	PairExists(ctx context.Context, db *gorm.DB, vietnamese, english string) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
	ResetMastery(ctx context.Context, tx *gorm.DB, category string) (int64, error)
	Categories(ctx context.Context, db *gorm.DB) ([]string, error)
	Totals(ctx context.Context, db *gorm.DB) (*CardTotals, error)
	TotalsByCategory(ctx context.Context, db *gorm.DB) ([]CategoryTotals, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"vietnamese", card.Vietnamese,
			"english", card.English,
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).First(&card, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by ID in DB", "error", result.Error, "card_id", id)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) FindRandom(ctx context.Context, db *gorm.DB, category string) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	query := db.WithContext(ctx).Model(&model.Card{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	// RANDOM() is understood by both sqlite and postgres; the deck is small
	// enough that a full scan per pick is irrelevant.
	result := query.Order("RANDOM()").First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error picking random card in DB", "error", result.Error, "category", category)
		return nil, fmt.Errorf("gormCardRepository.FindRandom: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) List(ctx context.Context, db *gorm.DB, category string, offset, limit int) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	query := db.WithContext(ctx).Order("id ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&cards)
	if result.Error != nil {
		logger.Error("Error listing cards in DB", "error", result.Error, "category", category)
		return nil, fmt.Errorf("gormCardRepository.List: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) PairExists(ctx context.Context, db *gorm.DB, vietnamese, english string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Card{}).
		Where("vietnamese = ? AND english = ?", vietnamese, english).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking card pair existence in DB",
			"error", result.Error,
			"vietnamese", vietnamese,
			"english", english,
		)
		return false, fmt.Errorf("gormCardRepository.PairExists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormCardRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Card{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating card in DB", "error", result.Error, "card_id", id)
		return fmt.Errorf("gormCardRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("1 = 1").Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting all cards in DB", "error", result.Error)
		return 0, fmt.Errorf("gormCardRepository.DeleteAll: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormCardRepository) ResetMastery(ctx context.Context, tx *gorm.DB, category string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	query := tx.WithContext(ctx).Model(&model.Card{}).Where("mastered = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	result := query.Update("mastered", false)
	if result.Error != nil {
		logger.Error("Error resetting mastery in DB", "error", result.Error, "category", category)
		return 0, fmt.Errorf("gormCardRepository.ResetMastery: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormCardRepository) Categories(ctx context.Context, db *gorm.DB) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var categories []string
	result := db.WithContext(ctx).Model(&model.Card{}).
		Where("category <> ''").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories)
	if result.Error != nil {
		logger.Error("Error listing categories in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardRepository.Categories: %w", result.Error)
	}
	return categories, nil
}

func (r *gormCardRepository) Totals(ctx context.Context, db *gorm.DB) (*CardTotals, error) {
	logger := middleware.GetLogger(ctx)
	var totals CardTotals
	result := db.WithContext(ctx).Model(&model.Card{}).
		Select("COUNT(*) AS total_cards, COALESCE(SUM(success_count), 0) AS total_success, COALESCE(SUM(fail_count), 0) AS total_fail").
		Scan(&totals)
	if result.Error != nil {
		logger.Error("Error aggregating card totals in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardRepository.Totals: %w", result.Error)
	}
	return &totals, nil
}

func (r *gormCardRepository) TotalsByCategory(ctx context.Context, db *gorm.DB) ([]CategoryTotals, error) {
	logger := middleware.GetLogger(ctx)
	var totals []CategoryTotals
	result := db.WithContext(ctx).Model(&model.Card{}).
		Select("category, COUNT(*) AS total_cards, COALESCE(SUM(success_count), 0) AS total_success, COALESCE(SUM(fail_count), 0) AS total_fail, COALESCE(SUM(CASE WHEN mastered THEN 1 ELSE 0 END), 0) AS mastered").
		Group("category").
		Order("category ASC").
		Scan(&totals)
	if result.Error != nil {
		logger.Error("Error aggregating per-category totals in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardRepository.TotalsByCategory: %w", result.Error)
	}
	return totals, nil
}
