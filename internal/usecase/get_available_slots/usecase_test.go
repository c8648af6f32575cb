package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalrinse/booking-service/internal/domain"
	"github.com/royalrinse/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDateAndStatus(_ context.Context, _ time.Time, _ domain.BookingStatus) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSlotSet() domain.SlotSet {
	return domain.SlotSet{"08:00", "09:00", "10:00", "11:00"}
}

func testDate() time.Time {
	return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
}

func TestExecute_NoApprovedBookings(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, testSlotSet(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	// Дата без одобренных бронирований возвращает полный набор слотов
	assert.Equal(t, []types.TimeString{"08:00", "09:00", "10:00", "11:00"}, resp.Slots)
}

func TestExecute_ApprovedBookingTakesSlot(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{TimeSlot: "09:00", Status: domain.StatusApproved},
		},
	}
	uc := NewUseCase(repo, testSlotSet(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"08:00", "10:00", "11:00"}, resp.Slots)
}

func TestExecute_FullyBookedDay(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{TimeSlot: "08:00", Status: domain.StatusApproved},
			{TimeSlot: "09:00", Status: domain.StatusApproved},
			{TimeSlot: "10:00", Status: domain.StatusApproved},
			{TimeSlot: "11:00", Status: domain.StatusApproved},
		},
	}
	uc := NewUseCase(repo, testSlotSet(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	// Полностью занятая дата — пустой список, а не ошибка
	assert.Empty(t, resp.Slots)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, testSlotSet(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection reset")}
	uc := NewUseCase(repo, testSlotSet(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestAvailableSlots_OnlyApprovedOccupy(t *testing.T) {
	// pending, rejected и completed не блокируют слот
	bookings := []*domain.Booking{
		{TimeSlot: "08:00", Status: domain.StatusPending},
		{TimeSlot: "09:00", Status: domain.StatusRejected},
		{TimeSlot: "10:00", Status: domain.StatusCompleted},
		{TimeSlot: "11:00", Status: domain.StatusApproved},
	}

	free := availableSlots(testSlotSet(), bookings)
	assert.Equal(t, []types.TimeString{"08:00", "09:00", "10:00"}, free)
}
