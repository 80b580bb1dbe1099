package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrAlreadyCompleted  = errors.New("habit already completed today")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrTitleRequired     = errors.New("title is required")
)

// Streak bonus tiers, additive: a 30+ day streak pays all three.
const (
	streakBonusTier1 = 5  // streak >= 5
	streakBonusTier2 = 5  // streak >= 10
	streakBonusTier3 = 10 // streak >= 30
)

type HabitService struct {
	db           *gorm.DB
	achievements *AchievementService
}

func NewHabitService(db *gorm.DB, achievements *AchievementService) *HabitService {
	return &HabitService{db: db, achievements: achievements}
}

func (s *HabitService) List(userID uuid.UUID) ([]models.Habit, error) {
	var habits []models.Habit
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&habits).Error
	return habits, err
}

func (s *HabitService) Get(userID uuid.UUID, habitID uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	err := s.db.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load habit: %w", err)
	}
	return &habit, nil
}

func (s *HabitService) Create(userID uuid.UUID, req dto.CreateHabitRequest) (*models.Habit, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	habit := models.Habit{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   defaultString(req.Frequency, "daily"),
		Category:    defaultString(req.Category, "wellness"),
		TimeOfDay:   defaultString(req.TimeOfDay, "any"),
		Difficulty:  defaultString(req.Difficulty, "medium"),
		Color:       defaultString(req.Color, "#00DCFF"),
		CoinReward:  req.CoinReward,
	}
	if habit.CoinReward <= 0 {
		habit.CoinReward = 10
	}

	if !contains(models.HabitFrequencies, habit.Frequency) {
		return nil, ErrInvalidFrequency
	}
	if !contains(models.HabitDifficulty, habit.Difficulty) {
		return nil, ErrInvalidDifficulty
	}

	if err := s.db.Create(&habit).Error; err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return &habit, nil
}

// Update applies the allow-listed field mutations. Absent fields stay as they
// are; everything is written in a single UPDATE.
func (s *HabitService) Update(userID uuid.UUID, habitID uuid.UUID, req dto.UpdateHabitRequest) (*models.Habit, error) {
	habit, err := s.Get(userID, habitID)
	if err != nil {
		return nil, err
	}

	updates := habitUpdates(req)
	if len(updates) == 0 {
		return habit, nil
	}
	if f, ok := updates["frequency"]; ok && !contains(models.HabitFrequencies, f.(string)) {
		return nil, ErrInvalidFrequency
	}
	if d, ok := updates["difficulty"]; ok && !contains(models.HabitDifficulty, d.(string)) {
		return nil, ErrInvalidDifficulty
	}

	if err := s.db.Model(habit).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}
	return s.Get(userID, habitID)
}

func (s *HabitService) Delete(userID uuid.UUID, habitID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete habit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// Complete marks the habit done for today, pays the coin reward and refreshes
// achievement progress. Habit write, coin increment and achievement recompute
// are one transaction. The habit UPDATE re-checks the daily gate, so two
// concurrent completions of the same habit cannot both pay out.
func (s *HabitService) Complete(userID uuid.UUID, habitID uuid.UUID) (*models.Habit, int, int, error) {
	habit, err := s.Get(userID, habitID)
	if err != nil {
		return nil, 0, 0, err
	}

	now := time.Now().UTC()
	if completedOn(habit, utcDate(now)) {
		return nil, 0, 0, ErrAlreadyCompleted
	}

	newStreak := 1
	if streakContinues(habit.LastCompletedAt, now) {
		newStreak = habit.Streak + 1
	}
	reward := completionReward(habit.CoinReward, newStreak)

	var coins int
	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Habit{}).
			Where("id = ? AND user_id = ?", habitID, userID).
			Where("completed_today = false OR last_completed_at < ?", utcDate(now)).
			UpdateColumns(map[string]interface{}{
				"completed_today":   true,
				"last_completed_at": now,
				"streak":            newStreak,
				"total_completions": gorm.Expr("total_completions + 1"),
				"updated_at":        now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to complete habit: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyCompleted
		}

		result = tx.Model(&models.Inventory{}).
			Where("user_id = ?", userID).
			UpdateColumn("coins", gorm.Expr("coins + ?", reward))
		if result.Error != nil {
			return fmt.Errorf("failed to add reward: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrInventoryNotFound
		}

		return s.achievements.Recalculate(tx, userID)
	})
	if err != nil {
		return nil, 0, 0, err
	}

	habit, err = s.Get(userID, habitID)
	if err != nil {
		return nil, 0, 0, err
	}

	var inventory models.Inventory
	if err := s.db.Where("user_id = ?", userID).First(&inventory).Error; err != nil {
		return nil, 0, 0, fmt.Errorf("failed to load coin balance: %w", err)
	}
	coins = inventory.Coins

	return habit, reward, coins, nil
}

// completedOn reports whether the habit's daily gate is closed for the given
// UTC date. A stale completed_today flag from a prior day does not block,
// so a missed rollover job cannot lock the habit forever.
func completedOn(habit *models.Habit, day time.Time) bool {
	if !habit.CompletedToday || habit.LastCompletedAt == nil {
		return false
	}
	return utcDate(*habit.LastCompletedAt).Equal(day)
}

// streakContinues reports whether completing now extends the streak: the last
// completion must fall on exactly the previous UTC calendar day.
func streakContinues(last *time.Time, now time.Time) bool {
	if last == nil {
		return false
	}
	yesterday := utcDate(now).AddDate(0, 0, -1)
	return utcDate(*last).Equal(yesterday)
}

// completionReward applies the additive streak bonus tiers to the base reward.
func completionReward(base, streak int) int {
	reward := base
	if streak >= 5 {
		reward += streakBonusTier1
	}
	if streak >= 10 {
		reward += streakBonusTier2
	}
	if streak >= 30 {
		reward += streakBonusTier3
	}
	return reward
}

func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func habitUpdates(req dto.UpdateHabitRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != "" {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Frequency != nil {
		updates["frequency"] = *req.Frequency
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.TimeOfDay != nil {
		updates["time_of_day"] = *req.TimeOfDay
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.CoinReward != nil && *req.CoinReward > 0 {
		updates["coin_reward"] = *req.CoinReward
	}
	return updates
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
