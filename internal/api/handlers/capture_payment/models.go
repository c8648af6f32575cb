package capture_payment

import (
	"github.com/royalrinse/booking-service/internal/service/bookings/models"
)

// CapturePaymentRequest HTTP request model
// Реквизиты нигде не сохраняются и не передаются третьим сторонам
type CapturePaymentRequest struct {
	CardNumber   string `json:"cardNumber"`
	Expiry       string `json:"expiry"`
	SecurityCode string `json:"securityCode"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CapturePaymentRequest) ToServiceRequest() *models.CapturePaymentRequest {
	return &models.CapturePaymentRequest{
		CardNumber:   r.CardNumber,
		Expiry:       r.Expiry,
		SecurityCode: r.SecurityCode,
	}
}
