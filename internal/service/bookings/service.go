package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/royalrinse/booking-service/internal/domain"
	bookingRepo "github.com/royalrinse/booking-service/internal/infra/storage/booking"
	"github.com/royalrinse/booking-service/internal/service/bookings/models"
)

// Service сервис чтения бронирований и приема оплаты
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор — любые.
// Чужое бронирование неотличимо от несуществующего
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d admin=%t", id, actor.UserID, actor.IsAdmin)

	booking, err := s.getOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
func (s *Service) GetUserBookings(ctx context.Context, userID int64, actor domain.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if !actor.IsAdmin && actor.UserID != userID {
		s.logger.Warn("GetUserBookings: access denied for user=%d to bookings of user=%d", actor.UserID, userID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetSchedule получает расписание на дату: только одобренные и оплаченные
// бронирования, по возрастанию времени
func (s *Service) GetSchedule(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for %s", date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetSchedule(ctx, date)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает все бронирования для админской панели
// Сортировка: pending первыми, затем по дате (сначала новые) и времени
func (s *Service) ListAll(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	if !actor.IsAdmin {
		s.logger.Warn("ListAll: access denied for user=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// CapturePayment принимает оплату бронирования (демо-заглушка платежа)
// Флаг paid меняется не более одного раза и только в статусах
// pending/approved. Статус бронирования при оплате не меняется
func (s *Service) CapturePayment(ctx context.Context, bookingID int64, actor domain.Actor, req *models.CapturePaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("CapturePayment: booking id=%d by user=%d", bookingID, actor.UserID)

	if err := validateInstrument(req); err != nil {
		s.logger.Warn("CapturePayment: invalid instrument for booking id=%d: %v", bookingID, err)
		return nil, err
	}

	booking, err := s.getOwned(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}

	if booking.Paid {
		s.logger.Warn("CapturePayment: booking id=%d already paid", bookingID)
		return nil, ErrAlreadyPaid
	}
	if !booking.CanCapturePayment() {
		s.logger.Warn("CapturePayment: booking id=%d not payable, status=%s", bookingID, booking.Status)
		return nil, ErrNotPayable
	}

	if err := s.bookingRepo.SetPaid(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrAlreadyPaid) {
			// Конкурентная оплата успела раньше
			s.logger.Warn("CapturePayment: booking id=%d concurrently paid", bookingID)
			return nil, ErrAlreadyPaid
		}
		s.logger.Error("CapturePayment: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: CapturePayment - repository error: %v", ErrInternal, err)
	}

	reference := uuid.NewString()
	s.logger.Info("CapturePayment: booking id=%d paid, reference=%s", bookingID, reference)

	return &models.PaymentResponse{
		BookingID: bookingID,
		Reference: reference,
		Amount:    booking.Amount,
	}, nil
}

// getOwned загружает бронирование и проверяет права доступа
func (s *Service) getOwned(ctx context.Context, id int64, actor domain.Actor) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getOwned: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getOwned: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwned - repository error: %v", ErrInternal, err)
	}

	if !actor.CanAccessBookingsOf(booking.UserID) {
		s.logger.Warn("getOwned: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrBookingNotFound
	}

	return booking, nil
}

// validateInstrument минимальная проверка формы платежных реквизитов
// Номер карты не короче 12 символов, код безопасности не короче 3.
// Это заглушка, а не настоящая валидация платежного инструмента
func validateInstrument(req *models.CapturePaymentRequest) error {
	card := strings.ReplaceAll(strings.TrimSpace(req.CardNumber), " ", "")
	code := strings.TrimSpace(req.SecurityCode)

	if len(card) < domain.MinCardNumberLength {
		return fmt.Errorf("%w: card number too short", ErrInvalidInstrument)
	}
	if len(code) < domain.MinSecurityCodeLength {
		return fmt.Errorf("%w: security code too short", ErrInvalidInstrument)
	}
	return nil
}
