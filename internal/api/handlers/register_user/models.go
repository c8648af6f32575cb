package register_user

import (
	"github.com/royalrinse/booking-service/internal/service/users/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
	}
}
