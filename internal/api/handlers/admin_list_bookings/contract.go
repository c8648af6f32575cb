package admin_list_bookings

import (
	"context"

	"github.com/royalrinse/booking-service/internal/domain"
	"github.com/royalrinse/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListAll(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
