package bookings

import (
	"context"
	"time"

	"github.com/royalrinse/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
	GetSchedule(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	SetPaid(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
