package create_booking

import (
	"fmt"

	"github.com/royalrinse/booking-service/internal/domain"
)

// validateRequest валидирует входные данные заявки
// Обязательные поля: телефон, дата, слот, адрес. Имя может быть пустым
// (будет подставлено имя учетной записи), email и заметки опциональны
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: time slot is required", ErrInvalidInput)
	}
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time slot format: %v", ErrInvalidInput, err)
	}

	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// slotIsFree проверяет, что слот входит в дневной набор и не занят
// одобренным бронированием
func slotIsFree(slotSet domain.SlotSet, req *Request, approved []*domain.Booking) bool {
	if !slotSet.Contains(req.TimeSlot) {
		return false
	}
	for _, b := range approved {
		if b.OccupiesSlot() && b.TimeSlot == req.TimeSlot {
			return false
		}
	}
	return true
}
