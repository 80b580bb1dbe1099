package dto

import "github.com/momentumhq/momentum-backend/internal/models"

type CreateHabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Category    string `json:"category"`
	TimeOfDay   string `json:"timeOfDay"`
	Difficulty  string `json:"difficulty"`
	Color       string `json:"color"`
	CoinReward  int    `json:"coinReward"`
}

// UpdateHabitRequest is the allow-listed habit mutation: only these fields can
// be written, and only when present in the request body. Streak and completion
// counters are never client-writable.
type UpdateHabitRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Frequency   *string `json:"frequency"`
	Category    *string `json:"category"`
	TimeOfDay   *string `json:"timeOfDay"`
	Difficulty  *string `json:"difficulty"`
	Color       *string `json:"color"`
	CoinReward  *int    `json:"coinReward"`
}

type HabitResponse struct {
	Habit *models.Habit `json:"habit"`
}

type HabitsListResponse struct {
	Habits []models.Habit `json:"habits"`
}

type CompleteHabitResponse struct {
	Habit        *models.Habit `json:"habit"`
	Reward       int           `json:"reward"`
	CurrentCoins int           `json:"currentCoins"`
}
