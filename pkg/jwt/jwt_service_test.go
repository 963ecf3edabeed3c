package jwt

import (
	"testing"
	"time"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	service := NewJWTService()
	userID := uuid.New().String()

	token := service.GenerateTokenUser(userID, entities.RoleCook)
	require.NotEmpty(t, token)

	gotID, gotRole, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, entities.RoleCook, gotRole)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenVerifyEmail("a@b.test", time.Hour)
	require.NoError(t, err)

	email, err := service.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.test", email)
}

func TestVerifyEmailTokenExpires(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenVerifyEmail("a@b.test", -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenVerifyEmail(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
