package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/middleware"
	"github.com/momentumhq/momentum-backend/internal/services"
)

type HabitHandler struct {
	habitService *services.HabitService
}

func NewHabitHandler(habitService *services.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// ListHabits handles GET /habits.
func (h *HabitHandler) ListHabits(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	habits, err := h.habitService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch habits",
		})
	}

	return c.JSON(dto.HabitsListResponse{Habits: habits})
}

// CreateHabit handles POST /habits.
func (h *HabitHandler) CreateHabit(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	habit, err := h.habitService.Create(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrInvalidFrequency),
			errors.Is(err, services.ErrInvalidDifficulty):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create habit",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.HabitResponse{Habit: habit})
}

// UpdateHabit handles PUT /habits/:id.
func (h *HabitHandler) UpdateHabit(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid habit ID",
		})
	}

	var req dto.UpdateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	habit, err := h.habitService.Update(userID, habitID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Habit not found",
			})
		case errors.Is(err, services.ErrInvalidFrequency),
			errors.Is(err, services.ErrInvalidDifficulty):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update habit",
		})
	}

	return c.JSON(dto.HabitResponse{Habit: habit})
}

// DeleteHabit handles DELETE /habits/:id.
func (h *HabitHandler) DeleteHabit(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid habit ID",
		})
	}

	if err := h.habitService.Delete(userID, habitID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Habit not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete habit",
		})
	}

	return c.JSON(fiber.Map{"message": "Habit deleted"})
}

// CompleteHabit handles POST /habits/:id/complete.
func (h *HabitHandler) CompleteHabit(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid habit ID",
		})
	}

	habit, reward, coins, err := h.habitService.Complete(userID, habitID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Habit not found",
			})
		case errors.Is(err, services.ErrAlreadyCompleted):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Habit already completed today",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to complete habit",
		})
	}

	return c.JSON(dto.CompleteHabitResponse{
		Habit:        habit,
		Reward:       reward,
		CurrentCoins: coins,
	})
}
