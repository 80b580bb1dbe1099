package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Habit is one tracked habit. JSON field names are camelCase because the web
// client reads them directly (completedToday, lastCompletedAt, ...).
type Habit struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title            string         `gorm:"size:200;not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	Frequency        string         `gorm:"size:20;default:'daily'" json:"frequency"`
	Category         string         `gorm:"size:50;default:'wellness';index" json:"category"`
	TimeOfDay        string         `gorm:"size:20;default:'any'" json:"timeOfDay"`
	Difficulty       string         `gorm:"size:20;default:'medium'" json:"difficulty"`
	Color            string         `gorm:"size:20;default:'#00DCFF'" json:"color"`
	CoinReward       int            `gorm:"default:10" json:"coinReward"`
	Streak           int            `gorm:"default:0" json:"streak"`
	TotalCompletions int            `gorm:"default:0" json:"totalCompletions"`
	CompletedToday   bool           `gorm:"default:false" json:"completedToday"`
	LastCompletedAt  *time.Time     `json:"lastCompletedAt"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"-"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

var (
	HabitFrequencies = []string{"daily", "weekly", "monthly"}
	HabitDifficulty  = []string{"easy", "medium", "hard"}
)
