package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/momentumhq/momentum-backend/internal/config"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerApp() *fiber.App {
	authService := services.NewAuthService(nil, &config.Config{JWTSecret: "test-secret"}, nil)
	handler := NewAuthHandler(authService)

	app := fiber.New()
	app.Post("/register", handler.Register)
	return app
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := registerApp()

	req := httptest.NewRequest("POST", "/register",
		strings.NewReader(`{"email":"ada@example.com","password":"short"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Error)
	assert.Equal(t, services.ErrInvalidRegistration.Error(), body.Message)
}

func TestRegisterRejectsMissingEmail(t *testing.T) {
	app := registerApp()

	req := httptest.NewRequest("POST", "/register",
		strings.NewReader(`{"password":"longenough"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	app := registerApp()

	req := httptest.NewRequest("POST", "/register", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
