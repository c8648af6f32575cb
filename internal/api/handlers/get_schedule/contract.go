package get_schedule

import (
	"context"
	"time"

	"github.com/royalrinse/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetSchedule(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
