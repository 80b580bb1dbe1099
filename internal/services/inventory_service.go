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
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrItemNotFound      = errors.New("item not found in inventory")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrNoUsesLeft        = errors.New("no uses left")
	ErrUnknownCategory   = errors.New("unknown item category")
	ErrMissingItemFields = errors.New("id, name, category and price are required")
)

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// itemEffect is a side effect applied when a powerup is used, keyed by catalog
// item ID. Returns the message shown to the user.
type itemEffect func(tx *gorm.DB, userID uuid.UUID) (string, error)

var itemEffects = map[string]itemEffect{
	"powerup-5": grantCoins(50),
}

func grantCoins(amount int) itemEffect {
	return func(tx *gorm.DB, userID uuid.UUID) (string, error) {
		result := tx.Model(&models.Inventory{}).
			Where("user_id = ?", userID).
			UpdateColumn("coins", gorm.Expr("coins + ?", amount))
		if result.Error != nil {
			return "", fmt.Errorf("failed to grant coins: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return "", ErrInventoryNotFound
		}
		return fmt.Sprintf("You received %d bonus coins!", amount), nil
	}
}

func (s *InventoryService) Get(userID uuid.UUID) (*dto.InventoryResponse, error) {
	inventory, err := s.inventory(s.db, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.items(userID)
	if err != nil {
		return nil, err
	}

	return &dto.InventoryResponse{Coins: inventory.Coins, Items: items}, nil
}

// Purchase appends the catalog item and deducts its price in one transaction.
// The coin decrement is guarded by coins >= price, so concurrent purchases
// cannot overdraw the balance.
func (s *InventoryService) Purchase(userID uuid.UUID, req dto.PurchaseRequest) (*models.InventoryItem, int, error) {
	if req.ID == "" || req.Name == "" || req.Category == "" || req.Price <= 0 {
		return nil, 0, ErrMissingItemFields
	}
	if !contains(models.ItemCategories, req.Category) {
		return nil, 0, ErrUnknownCategory
	}

	inventory, err := s.inventory(s.db, userID)
	if err != nil {
		return nil, 0, err
	}
	if inventory.Coins < req.Price {
		return nil, 0, ErrInsufficientFunds
	}

	var existing models.InventoryItem
	if err := s.db.Where("user_id = ? AND item_id = ?", userID, req.ID).First(&existing).Error; err == nil {
		return nil, 0, ErrAlreadyOwned
	}

	item := newOwnedItem(userID, req)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Inventory{}).
			Where("user_id = ? AND coins >= ?", userID, req.Price).
			UpdateColumn("coins", gorm.Expr("coins - ?", req.Price))
		if result.Error != nil {
			return fmt.Errorf("failed to deduct coins: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientFunds
		}

		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	inventory, err = s.inventory(s.db, userID)
	if err != nil {
		return nil, 0, err
	}
	return &item, inventory.Coins, nil
}

// Use activates or consumes an owned item. Themes and backgrounds are an
// exclusive switch within their category; powerups apply their effect and burn
// a use, disappearing from the inventory at zero.
func (s *InventoryService) Use(userID uuid.UUID, itemID string) (*dto.UseItemResponse, error) {
	var item models.InventoryItem
	err := s.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	message := ""
	switch actionFor(item.Category) {
	case useActivate:
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return activateExclusive(tx, userID, &item)
		})
		if err == nil {
			message = fmt.Sprintf("%s activated", item.Name)
		}

	case useConsume:
		if item.UsesLeft <= 0 {
			return nil, ErrNoUsesLeft
		}
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if effect, ok := itemEffects[item.ItemID]; ok {
				msg, effectErr := effect(tx, userID)
				if effectErr != nil {
					return effectErr
				}
				message = msg
			} else {
				message = fmt.Sprintf("%s has been activated!", item.Name)
			}
			return consumeUse(tx, &item)
		})

	default:
		return nil, ErrUnknownCategory
	}
	if err != nil {
		return nil, err
	}

	items, err := s.items(userID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.inventory(s.db, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UseItemResponse{
		Items:        items,
		CurrentCoins: inventory.Coins,
		Message:      message,
	}, nil
}

// useAction is what using an item does: themes and backgrounds are an
// exclusive per-category switch, powerups burn a use.
type useAction int

const (
	useActivate useAction = iota
	useConsume
	useUnknown
)

func actionFor(category string) useAction {
	switch category {
	case models.ItemCategoryThemes, models.ItemCategoryBackgrounds:
		return useActivate
	case models.ItemCategoryPowerups:
		return useConsume
	default:
		return useUnknown
	}
}

// activateExclusive flips the single-active-per-category switch: every item in
// the target's category is deactivated, then the target is activated.
func activateExclusive(tx *gorm.DB, userID uuid.UUID, item *models.InventoryItem) error {
	result := tx.Model(&models.InventoryItem{}).
		Where("user_id = ? AND category = ?", userID, item.Category).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate %s: %w", item.Category, result.Error)
	}

	result = tx.Model(&models.InventoryItem{}).
		Where("user_id = ? AND item_id = ?", userID, item.ItemID).
		UpdateColumn("is_active", true)
	if result.Error != nil {
		return fmt.Errorf("failed to activate item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// usesAfterConsume reports the uses remaining after burning one, and whether
// the powerup is spent and should leave the inventory.
func usesAfterConsume(usesLeft int) (int, bool) {
	remaining := usesLeft - 1
	if remaining < 0 {
		remaining = 0
	}
	return remaining, remaining <= 0
}

// consumeUse burns one use from a powerup, removing the row once exhausted.
// The decrement is guarded by uses_left > 0 against concurrent uses, and the
// delete re-checks the column so a racing use cannot remove a powerup that
// still has uses.
func consumeUse(tx *gorm.DB, item *models.InventoryItem) error {
	result := tx.Model(&models.InventoryItem{}).
		Where("user_id = ? AND item_id = ? AND uses_left > 0", item.UserID, item.ItemID).
		UpdateColumn("uses_left", gorm.Expr("uses_left - 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to consume use: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoUsesLeft
	}

	item.UsesLeft, _ = usesAfterConsume(item.UsesLeft)

	return tx.Where("user_id = ? AND item_id = ? AND uses_left <= 0", item.UserID, item.ItemID).
		Delete(&models.InventoryItem{}).Error
}

// newOwnedItem builds the owned row with category-specific defaults: themes
// carry their themeId and start inactive, backgrounds start inactive, powerups
// start with a full set of uses.
func newOwnedItem(userID uuid.UUID, req dto.PurchaseRequest) models.InventoryItem {
	item := models.InventoryItem{
		ID:          uuid.New(),
		UserID:      userID,
		ItemID:      req.ID,
		Name:        req.Name,
		Category:    req.Category,
		PurchasedAt: time.Now().UTC(),
	}

	switch req.Category {
	case models.ItemCategoryThemes:
		item.ThemeID = req.ThemeID
	case models.ItemCategoryPowerups:
		limit := req.UsageLimit
		if limit < 1 {
			limit = 1
		}
		item.UsageLimit = limit
		item.UsesLeft = limit
	}
	return item
}

func (s *InventoryService) inventory(db *gorm.DB, userID uuid.UUID) (*models.Inventory, error) {
	var inventory models.Inventory
	err := db.Where("user_id = ?", userID).First(&inventory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInventoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return &inventory, nil
}

func (s *InventoryService) items(userID uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.db.Where("user_id = ?", userID).Order("purchased_at ASC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	return items, nil
}
