package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/models"
	"gorm.io/gorm"
)

// StatsService builds read-only summary projections over the habit and
// inventory ledgers.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) Stats(userID uuid.UUID) (*dto.StatsResponse, error) {
	var habits []models.Habit
	if err := s.db.Where("user_id = ?", userID).Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	stats := dto.StatsResponse{TotalHabits: len(habits)}
	today := utcDate(time.Now().UTC())
	for i := range habits {
		h := &habits[i]
		stats.TotalCompletions += h.TotalCompletions
		if h.Streak > stats.LongestStreak {
			stats.LongestStreak = h.Streak
		}
		if completedOn(h, today) {
			stats.CompletedToday++
		}
	}

	var inventory models.Inventory
	if err := s.db.Where("user_id = ?", userID).First(&inventory).Error; err == nil {
		stats.CurrentCoins = inventory.Coins
	}

	var itemCount int64
	s.db.Model(&models.InventoryItem{}).Where("user_id = ?", userID).Count(&itemCount)
	stats.ItemsOwned = int(itemCount)

	var earnedCount int64
	s.db.Model(&models.Achievement{}).Where("user_id = ? AND earned = true", userID).Count(&earnedCount)
	stats.AchievementsEarned = int(earnedCount)

	return &stats, nil
}
