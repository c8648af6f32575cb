package get_available_slots

import (
	"context"
	"fmt"

	"github.com/royalrinse/booking-service/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	bookingRepo BookingRepository
	slotSet     domain.SlotSet
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, slotSet domain.SlotSet, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotSet:     slotSet,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистая функция от текущего состояния хранилища: никаких побочных эффектов.
// Прошедшие даты допустимы — исторические даты не блокируются.
// Дата без одобренных бронирований возвращает полный набор слотов,
// полностью занятая дата — пустой список (это не ошибка)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	approved, err := uc.bookingRepo.GetByDateAndStatus(ctx, req.Date, domain.StatusApproved)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get approved bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get approved bookings: %v", ErrInternal, err)
	}

	slots := availableSlots(uc.slotSet, approved)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free on %s",
		len(slots), len(uc.slotSet), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
