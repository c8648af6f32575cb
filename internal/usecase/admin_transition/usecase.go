package admin_transition

import (
	"context"
	"errors"
	"fmt"

	"github.com/royalrinse/booking-service/internal/domain"
	bookingRepo "github.com/royalrinse/booking-service/internal/infra/storage/booking"
)

// UseCase use case административного перехода статуса
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет административный переход статуса
// Машина состояний применяется строго: pending -> approved|rejected,
// approved -> completed; остальные переходы отклоняются.
// Аппрув перепроверяет доступность слота в сериализуемой транзакции:
// из двух конкурентных аппрувов на одну пару (дата, слот) пройдет
// не более одного. Флаг оплаты действие не трогает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdminTransition: booking id=%d, action=%s, admin user=%d",
		req.BookingID, req.Action, req.Actor.UserID)

	if !req.Actor.IsAdmin {
		uc.logger.Warn("AdminTransition: access denied for user=%d", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	if !req.Action.IsValid() {
		uc.logger.Warn("AdminTransition: invalid action %q", req.Action)
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AdminTransition: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AdminTransition: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !req.Action.AllowedFrom(booking.Status) {
			uc.logger.Warn("AdminTransition: action %s not allowed from status %s for booking id=%d",
				req.Action, booking.Status, req.BookingID)
			return fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidTransition, req.Action, booking.Status)
		}

		// Аппрув занимает слот: перепроверяем доступность под блокировкой
		if req.Action == domain.ActionApprove {
			approved, err := uc.bookingRepo.GetByDateAndStatus(txCtx, booking.Date, domain.StatusApproved)
			if err != nil {
				uc.logger.Error("AdminTransition: failed to get approved bookings: %v", err)
				return fmt.Errorf("%w: failed to get approved bookings: %v", ErrInternal, err)
			}
			for _, other := range approved {
				if other.ID != booking.ID && other.TimeSlot == booking.TimeSlot {
					uc.logger.Warn("AdminTransition: slot %s on %s already approved for booking id=%d",
						booking.TimeSlot, booking.Date.Format(domain.DateFormat), other.ID)
					return ErrSlotConflict
				}
			}
		}

		newStatus := req.Action.TargetStatus()
		if err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, newStatus); err != nil {
			// Страховка на уровне БД: частичный уникальный индекс по
			// approved-слотам срабатывает, если гонку не поймала блокировка
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("AdminTransition: unique index rejected approve for booking id=%d", req.BookingID)
				return ErrSlotConflict
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("AdminTransition: failed to update status for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = newStatus
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AdminTransition: booking id=%d is now %s", result.ID, result.Status)

	return &Response{
		ID:       result.ID,
		Status:   string(result.Status),
		Date:     result.Date,
		TimeSlot: result.TimeSlot,
		Paid:     result.Paid,
	}, nil
}
