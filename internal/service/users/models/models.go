package models

import (
	"time"

	"github.com/royalrinse/booking-service/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	FullName string
	Email    string
	Password string
}

// LoginRequest запрос на проверку учетных данных
type LoginRequest struct {
	Email    string
	Password string
}

// UserResponse представление пользователя без учетных данных
type UserResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует доменную модель в ответ сервиса
func FromDomainUser(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
