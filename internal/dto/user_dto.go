package dto

import "time"

type ProfileResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatsResponse struct {
	TotalHabits        int `json:"totalHabits"`
	CompletedToday     int `json:"completedToday"`
	TotalCompletions   int `json:"totalCompletions"`
	LongestStreak      int `json:"longestStreak"`
	CurrentCoins       int `json:"currentCoins"`
	ItemsOwned         int `json:"itemsOwned"`
	AchievementsEarned int `json:"achievementsEarned"`
}
