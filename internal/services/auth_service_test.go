package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/momentumhq/momentum-backend/internal/config"
	"github.com/momentumhq/momentum-backend/internal/dto"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
	}
	s := &AuthService{cfg: cfg}

	user := &models.User{ID: uuid.New(), Email: "ada@example.com"}

	tokenString, err := s.generateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "ada@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(cfg.JWTAccessExpiry), exp.Time, time.Minute)
}

func TestGenerateAccessTokenRejectsWrongSecret(t *testing.T) {
	s := &AuthService{cfg: &config.Config{
		JWTSecret:       "right-secret",
		JWTAccessExpiry: time.Minute,
	}}

	tokenString, err := s.generateAccessToken(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name string
		req  dto.RegisterRequest
		want error
	}{
		{name: "valid", req: dto.RegisterRequest{Email: "ada@example.com", Password: "longenough"}, want: nil},
		{name: "missing email", req: dto.RegisterRequest{Password: "longenough"}, want: ErrInvalidRegistration},
		{name: "short password", req: dto.RegisterRequest{Email: "ada@example.com", Password: "short"}, want: ErrInvalidRegistration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRegistration(&tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestHashToken(t *testing.T) {
	h1 := hashToken("some-refresh-token")
	h2 := hashToken("some-refresh-token")
	h3 := hashToken("another-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64) // hex-encoded SHA-256
}
