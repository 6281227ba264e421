// internal/model/quiz.go
package model

// QuizMode is the direction a card is being quizzed in.
type QuizMode string

const (
	ModeEngToViet QuizMode = "eng_to_viet"
	ModeVietToEng QuizMode = "viet_to_eng"
)

// Valid reports whether the mode is one of the two known directions.
func (m QuizMode) Valid() bool {
	return m == ModeEngToViet || m == ModeVietToEng
}

type CheckRequest struct {
	CardID    uint     `json:"card_id" validate:"required"`
	UserInput string   `json:"user_input"`
	Mode      QuizMode `json:"mode" validate:"required,oneof=eng_to_viet viet_to_eng"`
	// RecordResult controls whether an incorrect answer is written to the
	// card's counters. Correct answers are always recorded.
	RecordResult bool `json:"record_result"`
	// MarkMastered flags the card as mastered when the answer is correct.
	MarkMastered bool `json:"mark_mastered"`
}

type CheckResponse struct {
	Correct   bool   `json:"correct"`
	Expected  string `json:"expected"`
	UserInput string `json:"user_input"`
	Diff      string `json:"diff,omitempty"`
}

type GiveUpRequest struct {
	CardID uint `json:"card_id" validate:"required"`
}

type GiveUpResponse struct {
	Answer     string `json:"answer"`
	Vietnamese string `json:"vietnamese"`
	English    string `json:"english"`
}

type HintRequest struct {
	CardID    uint     `json:"card_id" validate:"required"`
	HintLevel int      `json:"hint_level" validate:"required"`
	Mode      QuizMode `json:"mode" validate:"required,oneof=eng_to_viet viet_to_eng"`
}

type HintResponse struct {
	Hint      string `json:"hint"`
	HintLevel int    `json:"hint_level"`
}
