// internal/service/auth_service.go
package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"vietcards/internal/config"
	"vietcards/internal/middleware"
	"vietcards/internal/model"
)

// AuthService handles the optional single-password login. Auth is enabled
// exactly when a password is configured.
type AuthService interface {
	Enabled() bool
	Login(ctx context.Context, req *model.LoginRequest) (token string, ttl time.Duration, err error)
	Logout(ctx context.Context, token string)
	Authenticate(ctx context.Context, token string) bool
}

type authService struct {
	passwordHash []byte
	ttl          time.Duration
	store        SessionStore
}

// NewAuthService hashes the configured password once at startup so login
// attempts only ever compare against the hash.
func NewAuthService(cfg *config.Config, store SessionStore) (AuthService, error) {
	s := &authService{
		ttl:   cfg.Auth.SessionTTL,
		store: store,
	}
	if cfg.AuthEnabled() {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.passwordHash = hash
	}
	return s, nil
}

func (s *authService) Enabled() bool {
	return s.passwordHash != nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (string, time.Duration, error) {
	logger := middleware.GetLogger(ctx)

	if !s.Enabled() {
		return "", 0, model.NewAppError("AUTH_DISABLED", "Authentication is not enabled.", "", model.ErrInvalidInput)
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		logger.Warn("Failed login attempt")
		return "", 0, model.NewAppError("INVALID_PASSWORD", "Invalid password.", "password", model.ErrForbidden)
	}

	token := s.store.Create(s.ttl)
	logger.Info("User logged in successfully")
	return token, s.ttl, nil
}

func (s *authService) Logout(ctx context.Context, token string) {
	if token != "" {
		s.store.Delete(token)
	}
}

func (s *authService) Authenticate(ctx context.Context, token string) bool {
	if !s.Enabled() {
		return true
	}
	return token != "" && s.store.Validate(token)
}
