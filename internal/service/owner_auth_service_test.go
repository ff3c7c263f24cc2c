package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groomstation/internal/db"
	"groomstation/internal/repository"
)

func TestOwnerAuthLoginRoundTrip(t *testing.T) {
	repo := repository.NewMemoryOwnerRepository()
	svc := NewOwnerAuthService(repo, "test-secret")

	require.NoError(t, svc.CreateOwner("owner@example.com", "Ana", "hunter2"))

	token, err := svc.Login("owner@example.com", "hunter2")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, db.RoleOwner, claims["role"])
	assert.NotEmpty(t, claims["user_id"])
}

func TestOwnerAuthRejectsBadCredentials(t *testing.T) {
	repo := repository.NewMemoryOwnerRepository()
	svc := NewOwnerAuthService(repo, "test-secret")
	require.NoError(t, svc.CreateOwner("owner@example.com", "Ana", "hunter2"))

	_, err := svc.Login("owner@example.com", "wrong")
	assert.Error(t, err)

	_, err = svc.Login("nobody@example.com", "hunter2")
	assert.Error(t, err)
}

func TestCreateOwnerValidation(t *testing.T) {
	svc := NewOwnerAuthService(repository.NewMemoryOwnerRepository(), "test-secret")
	assert.Error(t, svc.CreateOwner("", "Ana", "hunter2"))
	assert.Error(t, svc.CreateOwner("owner@example.com", "Ana", ""))
}
