// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestTokenService_RoundTrip issues a token and verifies its claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := NewTokenService("test-secret", "portfolio-api")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("admin", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, string(RoleAdmin), claims.Role)
	assert.Equal(t, "portfolio-api", claims.Issuer)
}

/*
TestTokenService_Rejects covers tokens that must not verify.
*/
func TestTokenService_Rejects(t *testing.T) {
	service, err := NewTokenService("test-secret", "portfolio-api")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		issued := time.Now().Add(-2 * time.Hour)
		service.now = func() time.Time { return issued }
		token, err := service.GenerateAccessToken("admin", RoleAdmin, time.Hour)
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other, err := NewTokenService("other-secret", "portfolio-api")
		require.NoError(t, err)
		token, err := other.GenerateAccessToken("admin", RoleAdmin, time.Hour)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		other, err := NewTokenService("test-secret", "someone-else")
		require.NoError(t, err)
		token, err := other.GenerateAccessToken("admin", RoleAdmin, time.Hour)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.VerifyToken("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := NewTokenService("", "portfolio-api")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.False(t, RoleGuest.AtLeast(RoleAdmin))
	assert.False(t, UserRole("").AtLeast(RoleAdmin))
}
