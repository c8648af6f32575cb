package admin_transition

import (
	"time"

	"github.com/royalrinse/booking-service/internal/domain"
	"github.com/royalrinse/booking-service/pkg/types"
)

// Request модель административного действия над бронированием
type Request struct {
	Actor     domain.Actor       // Кто выполняет действие (обязан быть админом)
	BookingID int64              // ID бронирования
	Action    domain.AdminAction // approve | reject | complete
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID       int64            // ID бронирования
	Status   string           // Новый статус
	Date     time.Time        // Дата бронирования
	TimeSlot types.TimeString // Слот
	Paid     bool             // Флаг оплаты (действие его не меняет)
}
