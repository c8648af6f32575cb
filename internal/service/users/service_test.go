package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/royalrinse/booking-service/internal/domain"
	userRepo "github.com/royalrinse/booking-service/internal/infra/storage/user"
	"github.com/royalrinse/booking-service/internal/service/users/models"
)

type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
	nextID    int64
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	stored := *user
	stored.ID = f.nextID
	if f.byEmail == nil {
		f.byEmail = make(map[string]*domain.User)
	}
	f.byEmail[user.Email] = &stored
	return &stored, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRegister(t *testing.T) {
	repo := &fakeUserRepo{nextID: 3}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Ivan Petrov",
		Email:    "ivan@example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "ivan@example.com", resp.Email)

	// Пароль хранится только в виде bcrypt-хэша
	stored := repo.byEmail["ivan@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-pass")))
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing name", models.RegisterRequest{Email: "a@b.c", Password: "x"}},
		{"missing email", models.RegisterRequest{FullName: "A", Password: "x"}},
		{"missing password", models.RegisterRequest{FullName: "A", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{nextID: 1}
	svc := NewService(repo, nopLogger{})

	req := &models.RegisterRequest{FullName: "Ivan", Email: "ivan@example.com", Password: "x12345"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{nextID: 5}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Anna",
		Email:    "anna@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "anna@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "anna@example.com",
			Password: "battery-staple",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
