package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/royalrinse/booking-service/internal/domain"
	userRepo "github.com/royalrinse/booking-service/internal/infra/storage/user"
	"github.com/royalrinse/booking-service/pkg/ptr"
)

// UseCase use case подачи заявки на бронирование
type UseCase struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	catalog     Catalog
	txManager   TransactionManager
	slotSet     domain.SlotSet
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	catalog Catalog,
	txManager TransactionManager,
	slotSet domain.SlotSet,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		catalog:     catalog,
		txManager:   txManager,
		slotSet:     slotSet,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции, чтобы два конкурентных запроса видели согласованный снимок.
// Создается pending-бронирование: pending-заявки не блокируют слот для
// других (доступность считается только по approved), поэтому несколько
// pending-заявок на один слот — допустимое состояние
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, date=%s, time=%s, tier=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.TimeSlot, req.Tier)

	// 1. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Подстановка имени из учетной записи, если имя не указано
	customerName := req.CustomerName
	if customerName == "" {
		user, err := uc.userRepo.GetByID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
				return nil, ErrUserNotFound
			}
			uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}
		customerName = user.FullName
	}

	// 3. Разрешение тарифа: пустой тариф — базовый, неизвестный — ошибка
	var tier domain.ServiceTier
	if req.Tier == "" {
		tier = uc.catalog.Base()
	} else {
		resolved, err := uc.catalog.Resolve(req.Tier)
		if err != nil {
			uc.logger.Warn("CreateBooking: unknown tier %q", req.Tier)
			return nil, fmt.Errorf("%w: %q", ErrUnknownTier, req.Tier)
		}
		tier = resolved
	}

	var result *domain.Booking

	// 4. Проверка слота и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Одобренные бронирования на дату с блокировкой (FOR UPDATE)
		approved, err := uc.bookingRepo.GetByDateAndStatus(txCtx, req.Date, domain.StatusApproved)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get approved bookings: %v", err)
			return fmt.Errorf("%w: failed to get approved bookings: %v", ErrInternal, err)
		}

		// 4.2. Слот должен входить в availableSlots(date)
		if !slotIsFree(uc.slotSet, req, approved) {
			uc.logger.Warn("CreateBooking: slot %s not available on %s",
				req.TimeSlot, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 4.3. Создаем бронирование: pending, не оплачено, цена каталога
		// фиксируется в записи и впоследствии не пересчитывается
		booking := &domain.Booking{
			CustomerName: customerName,
			UserID:       ptr.Ptr(req.UserID),
			Phone:        req.Phone,
			Email:        req.Email,
			Tier:         tier.ID,
			Date:         req.Date,
			TimeSlot:     req.TimeSlot,
			Address:      req.Address,
			Notes:        req.Notes,
			Status:       domain.StatusPending,
			Paid:         false,
			Amount:       tier.Price,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for user=%d", result.ID, req.UserID)

	return &Response{
		ID:           result.ID,
		CustomerName: result.CustomerName,
		UserID:       req.UserID,
		Tier:         result.Tier,
		Date:         result.Date,
		TimeSlot:     result.TimeSlot,
		Status:       string(result.Status),
		Paid:         result.Paid,
		Amount:       result.Amount,
		CreatedAt:    result.CreatedAt,
	}, nil
}
