package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/middleware"
	"github.com/momentumhq/momentum-backend/internal/services"
)

type UserHandler struct {
	authService  *services.AuthService
	statsService *services.StatsService
}

func NewUserHandler(authService *services.AuthService, statsService *services.StatsService) *UserHandler {
	return &UserHandler{authService: authService, statsService: statsService}
}

// GetProfile handles GET /user/profile.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}

	return c.JSON(dto.ProfileResponse{
		Email:     user.Email,
		Name:      user.DisplayName,
		CreatedAt: user.CreatedAt,
	})
}

// GetStats handles GET /user/stats.
func (h *UserHandler) GetStats(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	stats, err := h.statsService.Stats(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch stats",
		})
	}

	return c.JSON(stats)
}
