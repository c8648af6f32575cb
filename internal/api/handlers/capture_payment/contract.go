package capture_payment

import (
	"context"

	"github.com/royalrinse/booking-service/internal/domain"
	"github.com/royalrinse/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	CapturePayment(ctx context.Context, bookingID int64, actor domain.Actor, req *models.CapturePaymentRequest) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
