package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOwnedItemThemeDefaults(t *testing.T) {
	userID := uuid.New()

	item := newOwnedItem(userID, dto.PurchaseRequest{
		ID:       "theme-2",
		Name:     "Neon Synthwave Theme",
		Category: models.ItemCategoryThemes,
		Price:    150,
		ThemeID:  "neonSynthwave",
	})

	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, "theme-2", item.ItemID)
	assert.Equal(t, "neonSynthwave", item.ThemeID)
	assert.False(t, item.IsActive, "purchased themes start inactive")
	assert.Zero(t, item.UsesLeft)
	assert.False(t, item.PurchasedAt.IsZero())
}

func TestNewOwnedItemBackgroundDefaults(t *testing.T) {
	item := newOwnedItem(uuid.New(), dto.PurchaseRequest{
		ID:       "bg-1",
		Name:     "Aurora Background",
		Category: models.ItemCategoryBackgrounds,
		Price:    80,
	})

	assert.False(t, item.IsActive)
	assert.Empty(t, item.ThemeID)
	assert.Zero(t, item.UsageLimit)
}

func TestNewOwnedItemPowerupDefaults(t *testing.T) {
	item := newOwnedItem(uuid.New(), dto.PurchaseRequest{
		ID:         "powerup-3",
		Name:       "Flexible Day",
		Category:   models.ItemCategoryPowerups,
		Price:      100,
		UsageLimit: 3,
	})

	assert.Equal(t, 3, item.UsageLimit)
	assert.Equal(t, 3, item.UsesLeft, "powerups start with a full set of uses")
}

func TestNewOwnedItemPowerupMinimumOneUse(t *testing.T) {
	// A catalog entry without a usage limit still yields a usable powerup.
	item := newOwnedItem(uuid.New(), dto.PurchaseRequest{
		ID:       "powerup-5",
		Name:     "Bonus Coins",
		Category: models.ItemCategoryPowerups,
		Price:    75,
	})

	assert.Equal(t, 1, item.UsageLimit)
	assert.Equal(t, 1, item.UsesLeft)
}

func TestItemEffectRegistry(t *testing.T) {
	// The bonus-coins powerup must stay wired to an effect; other catalog
	// powerups fall through to the generic activation message.
	_, ok := itemEffects["powerup-5"]
	require.True(t, ok)

	_, ok = itemEffects["powerup-1"]
	assert.False(t, ok)
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		category string
		want     useAction
	}{
		{category: models.ItemCategoryThemes, want: useActivate},
		{category: models.ItemCategoryBackgrounds, want: useActivate},
		{category: models.ItemCategoryPowerups, want: useConsume},
		{category: "stickers", want: useUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, actionFor(tt.category))
		})
	}
}

func TestUsesAfterConsume(t *testing.T) {
	// A last use spends the powerup and removes it from the inventory.
	remaining, exhausted := usesAfterConsume(1)
	assert.Zero(t, remaining)
	assert.True(t, exhausted)

	// With uses to spare the item stays, one use down.
	remaining, exhausted = usesAfterConsume(2)
	assert.Equal(t, 1, remaining)
	assert.False(t, exhausted)
}

func TestItemCategories(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"themes", "powerups", "backgrounds"},
		models.ItemCategories,
	)
}
