package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/security"
	"lendify-backend/internal/service"
)

const testJWTSecret = "test-secret-test-secret-test-secret-xyz"

func newTokenManager() security.TokenManager {
	return security.NewTokenManager(testJWTSecret, 60)
}

func TestAccountService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with explicit location", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewAccountService(store, newTokenManager())

		lat, lng := 40.73, -73.99
		user, token, err := svc.Signup(ctx, "New User", "new@example.com", "hunter22", &lat, &lng)
		require.NoError(t, err)
		assert.Equal(t, 5, user.ID) // seed max is 4
		assert.Equal(t, domain.DefaultTrustScore, user.TrustScore)
		assert.Equal(t, domain.Location{Lat: 40.73, Lng: -73.99}, user.Location)
		assert.NotEmpty(t, token)

		claims, err := newTokenManager().ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
	})

	t.Run("Default location when coordinates omitted", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewAccountService(store, newTokenManager())

		user, _, err := svc.Signup(ctx, "New User", "new@example.com", "hunter22", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.Location{Lat: 40.7128, Lng: -74.0060}, user.Location)
	})

	t.Run("Password is stored hashed", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewAccountService(store, newTokenManager())

		_, _, err := svc.Signup(ctx, "New User", "new@example.com", "hunter22", nil, nil)
		require.NoError(t, err)

		doc, err := store.Load(ctx)
		require.NoError(t, err)
		stored := doc.FindUserByEmail("new@example.com")
		require.NotNil(t, stored)
		assert.NotEqual(t, "hunter22", stored.PasswordHash)
	})

	t.Run("Duplicate email is rejected without creating a record", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewAccountService(store, newTokenManager())

		_, _, err := svc.Signup(ctx, "Imposter", "mike@example.com", "hunter22", nil, nil)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)

		doc, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, doc.Users, 4)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Seed credentials work", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewAccountService(store, newTokenManager())

		user, token, err := svc.Login(ctx, "sarah@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, 2, user.ID)
		assert.Equal(t, 105, user.TrustScore)
		assert.NotEmpty(t, token)
	})

	t.Run("Wrong password and unknown email yield identical error", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewAccountService(store, newTokenManager())

		_, _, errWrongPassword := svc.Login(ctx, "sarah@example.com", "nope")
		_, _, errUnknownEmail := svc.Login(ctx, "ghost@example.com", "password123")

		assert.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownEmail, domain.ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	})
}

func TestAccountService_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("Strips credentials from the projection", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewAccountService(store, newTokenManager())

		user, err := svc.Profile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Mike Johnson", user.Name)

		payload, err := json.Marshal(user)
		require.NoError(t, err)
		assert.False(t, strings.Contains(string(payload), "password"))
	})

	t.Run("Unknown user", func(t *testing.T) {
		store := newSeededStore(t)
		svc := service.NewAccountService(store, newTokenManager())

		_, err := svc.Profile(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
