// internal/model/card.go
package model

import (
	"time"
)

// Card is one vocabulary entry with its progress counters.
type Card struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Vietnamese      string     `gorm:"not null;index:idx_viet_eng,unique" json:"vietnamese"`
	English         string     `gorm:"not null;index:idx_viet_eng,unique" json:"english"`
	Category        string     `gorm:"index" json:"category"`
	DifficultyLevel int        `gorm:"not null;default:1" json:"difficulty_level"`
	SuccessCount    int        `gorm:"not null;default:0" json:"success_count"`
	FailCount       int        `gorm:"not null;default:0" json:"fail_count"`
	Mastered        bool       `gorm:"not null;default:false" json:"mastered"`
	LastReviewed    *time.Time `json:"last_reviewed"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Card) TableName() string {
	return "cards"
}

// CreateCardRequest is the DTO for manually adding a card.
type CreateCardRequest struct {
	Vietnamese      string `json:"vietnamese" validate:"required"`
	English         string `json:"english" validate:"required"`
	Category        string `json:"category"`
	DifficultyLevel int    `json:"difficulty_level" validate:"omitempty,min=1"`
}

// QuizCard is a card as presented during a quiz: only the prompt side.
type QuizCard struct {
	ID       uint     `json:"id"`
	Prompt   string   `json:"prompt"`
	Mode     QuizMode `json:"mode"`
	Category string   `json:"category,omitempty"`
}

// ResetMasteryRequest clears the mastered flag, optionally per category.
type ResetMasteryRequest struct {
	Category string `json:"category,omitempty"`
}

type ResetMasteryResponse struct {
	CardsReset int64 `json:"cards_reset"`
}

type DeleteCardsResponse struct {
	CardsDeleted int64 `json:"cards_deleted"`
}
