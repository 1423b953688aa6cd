package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/providers"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	apperrors "github.com/dento-health/dento-portal/backend/pkg/errors"
)

const sessionKeyPrefix = "session:"

// AuthService handles account registration, login and server-side
// sessions. Session state lives in the cache under an opaque token so
// any instance can validate a cookie.
type AuthService struct {
	userRepo   repositories.UserRepository
	cache      providers.CacheProvider
	sessionTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cache providers.CacheProvider, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		cache:      cache,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new portal account
func (s *AuthService) Register(ctx context.Context, user *entities.User) error {
	if user.Username == "" || user.Password == "" || user.FullName == "" {
		return apperrors.NewValidationError("username, password and full_name are required")
	}

	if user.UserType == "" {
		user.UserType = entities.UserTypePatient
	}

	existing, err := s.userRepo.GetByUsername(ctx, user.Username)
	if err != nil && !apperrors.IsNotFound(err) {
		return err
	}
	if existing != nil {
		return apperrors.NewConflictError("username already taken")
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()

	return s.userRepo.Create(ctx, user)
}

// Login verifies credentials and opens a session. The returned token is
// set as the session cookie value.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entities.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		return "", nil, err
	}

	if user.Password != password {
		return "", nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	token := uuid.New().String()
	session := entities.Session{
		UserID:   user.ID,
		UserType: user.UserType,
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return "", nil, apperrors.NewInternalError("failed to encode session", err)
	}

	if err := s.cache.Set(ctx, sessionKeyPrefix+token, payload, int(s.sessionTTL.Seconds())); err != nil {
		return "", nil, apperrors.NewInternalError("failed to store session", err)
	}

	return token, user, nil
}

// Logout closes the session for the given token. Unknown tokens are a
// no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}

// SessionFromToken resolves a session token to the logged-in identity
func (s *AuthService) SessionFromToken(ctx context.Context, token string) (*entities.Session, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("not logged in")
	}

	payload, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("session expired or invalid")
	}

	var session entities.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, apperrors.NewInternalError("failed to decode session", err)
	}

	return &session, nil
}

// CurrentUser loads the full user record behind a session token
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	session, err := s.SessionFromToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, session.UserID)
}
