// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietcards/internal/config"
	"vietcards/internal/model"
)

func authConfig(password string) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Password = password
	cfg.Auth.SessionTTL = time.Hour
	return cfg
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password returns a session token", func(t *testing.T) {
		svc, err := NewAuthService(authConfig("hunter2"), NewMemorySessionStore())
		require.NoError(t, err)
		require.True(t, svc.Enabled())

		token, ttl, err := svc.Login(ctx, &model.LoginRequest{Password: "hunter2"})

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, time.Hour, ttl)
		assert.True(t, svc.Authenticate(ctx, token))
	})

	t.Run("wrong password is forbidden", func(t *testing.T) {
		svc, err := NewAuthService(authConfig("hunter2"), NewMemorySessionStore())
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, &model.LoginRequest{Password: "letmein"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("login rejected when auth disabled", func(t *testing.T) {
		svc, err := NewAuthService(authConfig(""), NewMemorySessionStore())
		require.NoError(t, err)
		require.False(t, svc.Enabled())

		_, _, err = svc.Login(ctx, &model.LoginRequest{Password: "anything"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_authService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled auth accepts everything", func(t *testing.T) {
		svc, err := NewAuthService(authConfig(""), NewMemorySessionStore())
		require.NoError(t, err)

		assert.True(t, svc.Authenticate(ctx, ""))
		assert.True(t, svc.Authenticate(ctx, "garbage"))
	})

	t.Run("unknown or empty token is rejected when enabled", func(t *testing.T) {
		svc, err := NewAuthService(authConfig("hunter2"), NewMemorySessionStore())
		require.NoError(t, err)

		assert.False(t, svc.Authenticate(ctx, ""))
		assert.False(t, svc.Authenticate(ctx, "garbage"))
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		svc, err := NewAuthService(authConfig("hunter2"), NewMemorySessionStore())
		require.NoError(t, err)

		token, _, err := svc.Login(ctx, &model.LoginRequest{Password: "hunter2"})
		require.NoError(t, err)
		require.True(t, svc.Authenticate(ctx, token))

		svc.Logout(ctx, token)

		assert.False(t, svc.Authenticate(ctx, token))
	})
}

func Test_memorySessionStore(t *testing.T) {
	t.Run("expired sessions fail validation", func(t *testing.T) {
		store := NewMemorySessionStore()

		token := store.Create(-time.Second)

		assert.False(t, store.Validate(token))
	})

	t.Run("tokens are unique", func(t *testing.T) {
		store := NewMemorySessionStore()

		a := store.Create(time.Hour)
		b := store.Create(time.Hour)

		assert.NotEqual(t, a, b)
		assert.True(t, store.Validate(a))
		assert.True(t, store.Validate(b))
	})
}
