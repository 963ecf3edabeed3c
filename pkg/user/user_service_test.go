package user

import (
	"context"
	"testing"
	"time"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"
	"foodconnect-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) Update(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func newTestService() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestRegisterIssuesTokenAndDefaultsRole(t *testing.T) {
	service, _ := newTestService()

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "student@campus.test",
		Password: "supersecret",
		FullName: "Test Student",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, entities.RoleConsumer, res.User.Role)
	assert.Equal(t, "student@campus.test", res.User.Email)
	assert.False(t, res.User.IsVerified)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "dup@campus.test",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Email:    "dup@campus.test",
		Password: "anothersecret",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestLogin(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "cook@campus.test",
		Password: "supersecret",
		Role:     entities.RoleCook,
	})
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@campus.test",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, entities.RoleCook, res.User.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "someone@campus.test",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "someone@campus.test",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ghost@campus.test",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	service, _ := newTestService()

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "me@campus.test",
		Password: "supersecret",
		FullName: "Me Myself",
	})
	require.NoError(t, err)

	res, err := service.Me(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Me Myself", res.FullName)

	_, err = service.Me(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestVerifyEmail(t *testing.T) {
	jwtService := jwt.NewJWTService()
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwtService)

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "verify@campus.test",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := jwtService.GenerateTokenVerifyEmail("verify@campus.test", time.Hour)
	require.NoError(t, err)

	require.NoError(t, service.VerifyEmail(context.Background(), token))

	res, err := service.Me(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.True(t, res.IsVerified)
}

func TestVerifyEmailRejectsUserToken(t *testing.T) {
	jwtService := jwt.NewJWTService()
	service := NewUserService(newFakeUserRepository(), jwtService)

	token := jwtService.GenerateTokenUser(uuid.New().String(), entities.RoleConsumer)
	err := service.VerifyEmail(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
