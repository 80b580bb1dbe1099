package models

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is one per-user progress row seeded from the default template.
// AchievementID is the template key and is what the client knows as "id".
// Earned and Claimed only ever transition false -> true.
type Achievement struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_achievements_user_key" json:"-"`
	AchievementID string     `gorm:"size:50;not null;uniqueIndex:idx_achievements_user_key" json:"id"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	Description   string     `gorm:"type:text" json:"description"`
	Icon          string     `gorm:"size:20" json:"icon"`
	Rarity        string     `gorm:"size:20;default:'common'" json:"rarity"`
	Category      string     `gorm:"size:50;not null;index" json:"category"`
	Progress      int        `gorm:"default:0" json:"progress"`
	Total         int        `gorm:"not null" json:"total"`
	Earned        bool       `gorm:"default:false" json:"earned"`
	EarnedDate    *time.Time `json:"earnedDate"`
	Claimed       bool       `gorm:"default:false" json:"claimed"`
	CoinReward    int        `gorm:"default:0" json:"coinReward"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

// Achievement categories that map to habit aggregates. Any other category
// string counts completions of habits in that same category.
const (
	AchievementCategoryHabits  = "habits"
	AchievementCategoryStreaks = "streaks"
)
