package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momentumhq/momentum-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrNotEarned           = errors.New("achievement not yet earned")
	ErrAlreadyClaimed      = errors.New("achievement already claimed")
)

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// AchievementTemplate defines one entry of the default set every account is
// seeded with.
type AchievementTemplate struct {
	Key         string
	Name        string
	Description string
	Icon        string
	Rarity      string
	Category    string
	Total       int
	CoinReward  int
}

var DefaultAchievements = []AchievementTemplate{
	{Key: "first-steps", Name: "First Steps", Description: "Complete your first habit", Icon: "👣", Rarity: "common", Category: models.AchievementCategoryHabits, Total: 1, CoinReward: 10},
	{Key: "committed", Name: "Committed", Description: "Complete habits 10 times", Icon: "✅", Rarity: "common", Category: models.AchievementCategoryHabits, Total: 10, CoinReward: 25},
	{Key: "habit-machine", Name: "Habit Machine", Description: "Complete habits 50 times", Icon: "⚙️", Rarity: "rare", Category: models.AchievementCategoryHabits, Total: 50, CoinReward: 75},
	{Key: "century-club", Name: "Century Club", Description: "Complete habits 100 times", Icon: "💯", Rarity: "epic", Category: models.AchievementCategoryHabits, Total: 100, CoinReward: 150},
	{Key: "on-a-roll", Name: "On a Roll", Description: "Reach a 3-day streak", Icon: "🎲", Rarity: "common", Category: models.AchievementCategoryStreaks, Total: 3, CoinReward: 15},
	{Key: "week-warrior", Name: "Week Warrior", Description: "Reach a 7-day streak", Icon: "🗓️", Rarity: "rare", Category: models.AchievementCategoryStreaks, Total: 7, CoinReward: 40},
	{Key: "fortnight-force", Name: "Fortnight Force", Description: "Reach a 14-day streak", Icon: "🔥", Rarity: "epic", Category: models.AchievementCategoryStreaks, Total: 14, CoinReward: 80},
	{Key: "unstoppable", Name: "Unstoppable", Description: "Reach a 30-day streak", Icon: "🚀", Rarity: "legendary", Category: models.AchievementCategoryStreaks, Total: 30, CoinReward: 200},
	{Key: "fitness-fan", Name: "Fitness Fan", Description: "Complete fitness habits 10 times", Icon: "💪", Rarity: "common", Category: "fitness", Total: 10, CoinReward: 30},
	{Key: "zen-mode", Name: "Zen Mode", Description: "Complete wellness habits 10 times", Icon: "🧘", Rarity: "common", Category: "wellness", Total: 10, CoinReward: 30},
	{Key: "bookworm", Name: "Bookworm", Description: "Complete learning habits 10 times", Icon: "📚", Rarity: "common", Category: "learning", Total: 10, CoinReward: 30},
	{Key: "taskmaster", Name: "Taskmaster", Description: "Complete productivity habits 10 times", Icon: "📋", Rarity: "common", Category: "productivity", Total: 10, CoinReward: 30},
}

// Seed inserts the default achievement set for a user. Idempotent per
// achievement key, so re-running against a partially seeded account is safe.
func (s *AchievementService) Seed(tx *gorm.DB, userID uuid.UUID) error {
	for _, tpl := range DefaultAchievements {
		var existing models.Achievement
		err := tx.Where("user_id = ? AND achievement_id = ?", userID, tpl.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check achievement %s: %w", tpl.Key, err)
		}

		achievement := models.Achievement{
			ID:            uuid.New(),
			UserID:        userID,
			AchievementID: tpl.Key,
			Name:          tpl.Name,
			Description:   tpl.Description,
			Icon:          tpl.Icon,
			Rarity:        tpl.Rarity,
			Category:      tpl.Category,
			Total:         tpl.Total,
			CoinReward:    tpl.CoinReward,
		}
		if err := tx.Create(&achievement).Error; err != nil {
			return fmt.Errorf("failed to seed achievement %s: %w", tpl.Key, err)
		}
	}
	return nil
}

// habitAggregates are the progress sources achievements draw from.
type habitAggregates struct {
	totalCompletions int
	longestStreak    int
	categoryCounts   map[string]int
}

func aggregateHabits(habits []models.Habit) habitAggregates {
	agg := habitAggregates{categoryCounts: make(map[string]int)}
	for _, h := range habits {
		agg.totalCompletions += h.TotalCompletions
		if h.Streak > agg.longestStreak {
			agg.longestStreak = h.Streak
		}
		agg.categoryCounts[h.Category] += h.TotalCompletions
	}
	return agg
}

// progressSource selects the aggregate that drives an achievement's progress
// based on its category tag.
func progressSource(category string, agg habitAggregates) int {
	switch category {
	case models.AchievementCategoryHabits:
		return agg.totalCompletions
	case models.AchievementCategoryStreaks:
		return agg.longestStreak
	default:
		return agg.categoryCounts[category]
	}
}

// Recalculate refreshes progress for every unearned achievement from current
// habit aggregates. It is the single recompute entry point: both the
// completion path and the read path go through it, so earned state cannot
// diverge depending on which endpoint ran last. Earned rows are skipped
// entirely (earned never reverts) and each changed row is one UPDATE.
func (s *AchievementService) Recalculate(tx *gorm.DB, userID uuid.UUID) error {
	var habits []models.Habit
	if err := tx.Where("user_id = ?", userID).Find(&habits).Error; err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	agg := aggregateHabits(habits)

	var achievements []models.Achievement
	if err := tx.Where("user_id = ? AND earned = false", userID).Find(&achievements).Error; err != nil {
		return fmt.Errorf("failed to load achievements: %w", err)
	}

	now := time.Now().UTC()
	for i := range achievements {
		a := &achievements[i]

		progress := progressSource(a.Category, agg)
		if progress > a.Total {
			progress = a.Total
		}
		if progress < 0 {
			progress = 0
		}

		updates := map[string]interface{}{}
		if progress != a.Progress {
			updates["progress"] = progress
		}
		if progress >= a.Total {
			updates["earned"] = true
			updates["earned_date"] = now
		}
		if len(updates) == 0 {
			continue
		}

		if err := tx.Model(a).UpdateColumns(updates).Error; err != nil {
			return fmt.Errorf("failed to update achievement %s: %w", a.AchievementID, err)
		}
	}
	return nil
}

// List recalculates and returns all achievements for the user.
func (s *AchievementService) List(userID uuid.UUID) ([]models.Achievement, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.Recalculate(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	var achievements []models.Achievement
	err = s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&achievements).Error
	return achievements, err
}

// claimable is the claim gate: the reward pays out only once, and only after
// the achievement is earned.
func claimable(a *models.Achievement) error {
	if !a.Earned {
		return ErrNotEarned
	}
	if a.Claimed {
		return ErrAlreadyClaimed
	}
	return nil
}

// Claim pays out one earned achievement's coin reward. The claimed flag flips
// with a guarded UPDATE so a double-claim race pays at most once.
func (s *AchievementService) Claim(userID uuid.UUID, achievementID string) (*models.Achievement, int, error) {
	var achievement models.Achievement
	err := s.db.Where("user_id = ? AND achievement_id = ?", userID, achievementID).First(&achievement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, ErrAchievementNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load achievement: %w", err)
	}

	if err := claimable(&achievement); err != nil {
		return nil, 0, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Achievement{}).
			Where("user_id = ? AND achievement_id = ? AND earned = true AND claimed = false", userID, achievementID).
			UpdateColumn("claimed", true)
		if result.Error != nil {
			return fmt.Errorf("failed to claim achievement: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyClaimed
		}

		result = tx.Model(&models.Inventory{}).
			Where("user_id = ?", userID).
			UpdateColumn("coins", gorm.Expr("coins + ?", achievement.CoinReward))
		if result.Error != nil {
			return fmt.Errorf("failed to add claim reward: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrInventoryNotFound
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	achievement.Claimed = true

	var inventory models.Inventory
	if err := s.db.Where("user_id = ?", userID).First(&inventory).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load coin balance: %w", err)
	}

	return &achievement, inventory.Coins, nil
}
