// cmd/seed/main.go
//
// Seeds an empty database with a small starter vocabulary. Does nothing
// when cards already exist; run the topics sync endpoint to load more.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"vietcards/internal/config"
	"vietcards/internal/model"
	"vietcards/internal/repository"
)

var seedCards = []model.Card{
	{Vietnamese: "xin chào", English: "hello", Category: "greetings", DifficultyLevel: 1},
	{Vietnamese: "cảm ơn", English: "thank you", Category: "greetings", DifficultyLevel: 1},
	{Vietnamese: "tạm biệt", English: "goodbye", Category: "greetings", DifficultyLevel: 1},
	{Vietnamese: "một", English: "one", Category: "numbers", DifficultyLevel: 1},
	{Vietnamese: "hai", English: "two", Category: "numbers", DifficultyLevel: 1},
	{Vietnamese: "ba", English: "three", Category: "numbers", DifficultyLevel: 1},
	{Vietnamese: "nước", English: "water", Category: "food and drink", DifficultyLevel: 1},
	{Vietnamese: "cà phê", English: "coffee", Category: "food and drink", DifficultyLevel: 1},
	{Vietnamese: "hôm nay", English: "today", Category: "time", DifficultyLevel: 1},
	{Vietnamese: "ngày mai", English: "tomorrow", Category: "time", DifficultyLevel: 1},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	godotenv.Load()

	cfg, err := config.Load("configs")
	if err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()

	var existing int64
	if err := db.WithContext(ctx).Model(&model.Card{}).Count(&existing).Error; err != nil {
		logger.Error("Error counting cards", slog.Any("error", err))
		os.Exit(1)
	}
	if existing > 0 {
		logger.Info("Database already has cards, skipping seed", slog.Int64("count", existing))
		return
	}

	cardRepo := repository.NewGormCardRepository()
	for i := range seedCards {
		if err := cardRepo.Create(ctx, db, &seedCards[i]); err != nil {
			logger.Error("Error seeding card", slog.Any("error", err), slog.String("vietnamese", seedCards[i].Vietnamese))
			os.Exit(1)
		}
	}

	logger.Info("Seeded starter vocabulary", slog.Int("count", len(seedCards)))
}
