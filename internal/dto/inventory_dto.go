package dto

import "github.com/momentumhq/momentum-backend/internal/models"

// PurchaseRequest carries the catalog entry being bought. The client posts the
// whole shop item; only the fields below are read.
type PurchaseRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      int    `json:"price"`
	ThemeID    string `json:"themeId"`
	UsageLimit int    `json:"usageLimit"`
}

type UseItemRequest struct {
	ItemID string `json:"itemId"`
}

type InventoryResponse struct {
	Coins int                    `json:"coins"`
	Items []models.InventoryItem `json:"items"`
}

type PurchaseResponse struct {
	Item         *models.InventoryItem `json:"item"`
	CurrentCoins int                   `json:"currentCoins"`
}

type UseItemResponse struct {
	Items        []models.InventoryItem `json:"items"`
	CurrentCoins int                    `json:"currentCoins"`
	Message      string                 `json:"message"`
}
