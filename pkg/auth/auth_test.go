package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiouspeterson/schedule-app-router/pkg/database"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	user := &database.Profile{ID: "u1", Email: "manager@example.com", Role: "manager"}
	token, err := CreateToken(user)
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "manager@example.com", claims.Email)
	assert.Equal(t, "manager", claims.Role)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	user := &database.Profile{ID: "u1", Email: "a@example.com", Role: "employee"}
	token, err := CreateToken(user)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestHMACKeyRoundtrip(t *testing.T) {
	t.Setenv("API_MASTER_SECRET", "master-secret")

	key := GenerateHMACKey("billing-service")
	clientID, err := VerifyHMACKey(key)
	require.NoError(t, err)
	assert.Equal(t, "billing-service", clientID)
}

func TestVerifyHMACKeyRejectsTampering(t *testing.T) {
	t.Setenv("API_MASTER_SECRET", "master-secret")

	key := GenerateHMACKey("billing-service")
	_, err := VerifyHMACKey("other-service." + key[len("billing-service."):])
	assert.Error(t, err)

	_, err = VerifyHMACKey("not-a-key")
	assert.Error(t, err)
}
