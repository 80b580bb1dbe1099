package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/middleware"
	"github.com/momentumhq/momentum-backend/internal/services"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GetInventory handles GET /inventory.
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.inventoryService.Get(userID)
	if err != nil {
		if errors.Is(err, services.ErrInventoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Inventory not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch inventory",
		})
	}

	return c.JSON(resp)
}

// PurchaseItem handles POST /inventory/purchase.
func (h *InventoryHandler) PurchaseItem(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	item, coins, err := h.inventoryService.Purchase(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInventoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Inventory not found",
			})
		case errors.Is(err, services.ErrMissingItemFields),
			errors.Is(err, services.ErrUnknownCategory),
			errors.Is(err, services.ErrInsufficientFunds),
			errors.Is(err, services.ErrAlreadyOwned):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to purchase item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.PurchaseResponse{
		Item:         item,
		CurrentCoins: coins,
	})
}

// UseItem handles POST /inventory/use.
func (h *InventoryHandler) UseItem(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UseItemRequest
	if err := c.BodyParser(&req); err != nil || req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "itemId is required",
		})
	}

	resp, err := h.inventoryService.Use(userID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Item not found in inventory",
			})
		case errors.Is(err, services.ErrNoUsesLeft),
			errors.Is(err, services.ErrUnknownCategory):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to use item",
		})
	}

	return c.JSON(resp)
}
