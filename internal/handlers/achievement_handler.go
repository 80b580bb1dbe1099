package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/middleware"
	"github.com/momentumhq/momentum-backend/internal/services"
)

type AchievementHandler struct {
	achievementService *services.AchievementService
}

func NewAchievementHandler(achievementService *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// ListAchievements handles GET /achievements. Progress is recalculated before
// the read so the response never shows stale earned state.
func (h *AchievementHandler) ListAchievements(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	achievements, err := h.achievementService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch achievements",
		})
	}

	return c.JSON(dto.AchievementsListResponse{Achievements: achievements})
}

// ClaimAchievement handles POST /achievements/:id/claim.
func (h *AchievementHandler) ClaimAchievement(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	achievementID := c.Params("id")
	if achievementID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Achievement ID is required",
		})
	}

	achievement, coins, err := h.achievementService.Claim(userID, achievementID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAchievementNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Achievement not found",
			})
		case errors.Is(err, services.ErrNotEarned),
			errors.Is(err, services.ErrAlreadyClaimed):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to claim achievement",
		})
	}

	return c.JSON(dto.ClaimAchievementResponse{
		Achievement:  achievement,
		CurrentCoins: coins,
	})
}
