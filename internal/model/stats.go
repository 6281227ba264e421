// internal/model/stats.go
package model

// CategoryStats is the per-category slice of the overall statistics.
type CategoryStats struct {
	Category      string  `json:"category"`
	TotalCards    int64   `json:"total_cards"`
	TotalSuccess  int64   `json:"total_success"`
	TotalFail     int64   `json:"total_fail"`
	TotalAttempts int64   `json:"total_attempts"`
	Accuracy      float64 `json:"accuracy"`
	Mastered      int64   `json:"mastered"`
}

type StatsResponse struct {
	TotalCards    int64           `json:"total_cards"`
	TotalSuccess  int64           `json:"total_success"`
	TotalFail     int64           `json:"total_fail"`
	TotalAttempts int64           `json:"total_attempts"`
	Accuracy      float64         `json:"accuracy"`
	PerCategory   []CategoryStats `json:"per_category"`
}
