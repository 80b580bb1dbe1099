package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory holds a user's coin balance. One row per user; items live in
// inventory_items so purchase/use can be guarded per row.
type Inventory struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Coins     int       `gorm:"default:0;check:coins >= 0" json:"coins"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// InventoryItem is an owned shop item. ItemID is the catalog key the client
// references ("theme-1", "powerup-5", ...), unique per user.
type InventoryItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_items_user_item" json:"-"`
	ItemID      string    `gorm:"size:50;not null;uniqueIndex:idx_inventory_items_user_item" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Category    string    `gorm:"size:20;not null;index" json:"category"`
	ThemeID     string    `gorm:"size:50" json:"themeId,omitempty"`
	IsActive    bool      `gorm:"default:false" json:"isActive"`
	UsageLimit  int       `gorm:"default:0" json:"usageLimit,omitempty"`
	UsesLeft    int       `gorm:"default:0" json:"usesLeft,omitempty"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

const (
	ItemCategoryThemes      = "themes"
	ItemCategoryPowerups    = "powerups"
	ItemCategoryBackgrounds = "backgrounds"
)

var ItemCategories = []string{ItemCategoryThemes, ItemCategoryPowerups, ItemCategoryBackgrounds}
