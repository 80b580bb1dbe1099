package dto

import "github.com/momentumhq/momentum-backend/internal/models"

type AchievementsListResponse struct {
	Achievements []models.Achievement `json:"achievements"`
}

type ClaimAchievementResponse struct {
	Achievement  *models.Achievement `json:"achievement"`
	CurrentCoins int                 `json:"currentCoins"`
}
