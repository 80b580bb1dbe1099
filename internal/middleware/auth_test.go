package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/momentumhq/momentum-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTProtected(cfg), func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.JSON(fiber.Map{"id": userID.String()})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTProtectedAcceptsValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := testApp(cfg)

	userID := uuid.New()
	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "ada@example.com",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTProtectedRejectsMissingToken(t *testing.T) {
	app := testApp(&config.Config{JWTSecret: "test-secret"})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsWrongSecret(t *testing.T) {
	app := testApp(&config.Config{JWTSecret: "test-secret"})

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := testApp(cfg)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
