package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	apperrors "github.com/dento-health/dento-portal/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// memoryCache is an in-process CacheProvider for tests
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.items[key]
	if !ok {
		return nil, fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok, nil
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByUsername", mock.Anything, "ahmad").Return(nil, apperrors.NewNotFoundError("user not found"))
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewAuthService(userRepo, newMemoryCache(), time.Hour)

	user := &entities.User{
		Username: "ahmad",
		Password: "secret",
		FullName: "Ahmad Ali",
	}
	err := service.Register(context.Background(), user)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entities.UserTypePatient, user.UserType)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByUsername", mock.Anything, "ahmad").Return(&entities.User{ID: "u1", Username: "ahmad"}, nil)

	service := NewAuthService(userRepo, newMemoryCache(), time.Hour)

	err := service.Register(context.Background(), &entities.User{
		Username: "ahmad",
		Password: "secret",
		FullName: "Ahmad Ali",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_MissingFields(t *testing.T) {
	service := NewAuthService(new(mockUserRepo), newMemoryCache(), time.Hour)

	err := service.Register(context.Background(), &entities.User{Username: "ahmad"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestLogin_And_SessionRoundTrip(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByUsername", mock.Anything, "ahmad").Return(&entities.User{
		ID:       "u1",
		Username: "ahmad",
		Password: "secret",
		UserType: entities.UserTypeDoctor,
	}, nil)

	service := NewAuthService(userRepo, newMemoryCache(), time.Hour)

	token, user, err := service.Login(context.Background(), "ahmad", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", user.ID)

	session, err := service.SessionFromToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, entities.UserTypeDoctor, session.UserType)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByUsername", mock.Anything, "ahmad").Return(&entities.User{
		ID:       "u1",
		Username: "ahmad",
		Password: "secret",
	}, nil)

	service := NewAuthService(userRepo, newMemoryCache(), time.Hour)

	_, _, err := service.Login(context.Background(), "ahmad", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, apperrors.NewNotFoundError("user not found"))

	service := NewAuthService(userRepo, newMemoryCache(), time.Hour)

	_, _, err := service.Login(context.Background(), "ghost", "whatever")
	require.Error(t, err)
	// Unknown user and wrong password are indistinguishable to the caller.
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestLogout_InvalidatesSession(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByUsername", mock.Anything, "ahmad").Return(&entities.User{
		ID:       "u1",
		Username: "ahmad",
		Password: "secret",
	}, nil)

	service := NewAuthService(userRepo, newMemoryCache(), time.Hour)

	token, _, err := service.Login(context.Background(), "ahmad", "secret")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))

	_, err = service.SessionFromToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestSessionFromToken_EmptyToken(t *testing.T) {
	service := NewAuthService(new(mockUserRepo), newMemoryCache(), time.Hour)

	_, err := service.SessionFromToken(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}
