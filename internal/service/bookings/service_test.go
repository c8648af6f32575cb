package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalrinse/booking-service/internal/domain"
	bookingRepo "github.com/royalrinse/booking-service/internal/infra/storage/booking"
	"github.com/royalrinse/booking-service/internal/service/bookings/models"
	"github.com/royalrinse/booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	byID       map[int64]*domain.Booking
	byUser     []*domain.Booking
	schedule   []*domain.Booking
	all        []*domain.Booking
	setPaidErr error
	paidIDs    []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetSchedule(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.schedule, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	return f.all, nil
}

func (f *fakeBookingRepo) SetPaid(_ context.Context, id int64) error {
	if f.setPaidErr != nil {
		return f.setPaidErr
	}
	f.byID[id].Paid = true
	f.paidIDs = append(f.paidIDs, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin = domain.Actor{IsAdmin: true, UserID: 1}
	owner = domain.Actor{UserID: 7}
	other = domain.Actor{UserID: 8}
)

func repoWithBooking(b *domain.Booking) *fakeBookingRepo {
	return &fakeBookingRepo{byID: map[int64]*domain.Booking{b.ID: b}}
}

func ownedBooking() *domain.Booking {
	return &domain.Booking{
		ID:     10,
		UserID: ptr.Ptr(int64(7)),
		Status: domain.StatusPending,
		Amount: 50.0,
	}
}

func validInstrument() *models.CapturePaymentRequest {
	return &models.CapturePaymentRequest{
		CardNumber:   "4111 1111 1111 1111",
		Expiry:       "12/27",
		SecurityCode: "123",
	}
}

func TestGetByID_Ownership(t *testing.T) {
	svc := NewService(repoWithBooking(ownedBooking()), nopLogger{})

	t.Run("owner sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 10, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
	})

	t.Run("admin sees any booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, admin)
		assert.NoError(t, err)
	})

	t.Run("foreign booking looks nonexistent", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, other)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404, owner)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetUserBookings_Access(t *testing.T) {
	repo := &fakeBookingRepo{byUser: []*domain.Booking{ownedBooking()}}
	svc := NewService(repo, nopLogger{})

	t.Run("owner", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), 7, owner)
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("admin", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), 7, admin)
		assert.NoError(t, err)
	})

	t.Run("other user denied", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), 7, other)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestListAll_AdminOnly(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.ListAll(context.Background(), owner)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ListAll(context.Background(), admin)
	assert.NoError(t, err)
}

func TestCapturePayment_Success(t *testing.T) {
	repo := repoWithBooking(ownedBooking())
	svc := NewService(repo, nopLogger{})

	resp, err := svc.CapturePayment(context.Background(), 10, owner, validInstrument())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.BookingID)
	assert.Equal(t, 50.0, resp.Amount)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, []int64{10}, repo.paidIDs)
}

func TestCapturePayment_ApprovedBookingPayable(t *testing.T) {
	b := ownedBooking()
	b.Status = domain.StatusApproved
	svc := NewService(repoWithBooking(b), nopLogger{})

	_, err := svc.CapturePayment(context.Background(), 10, owner, validInstrument())
	assert.NoError(t, err)
}

func TestCapturePayment_InvalidInstrument(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CapturePaymentRequest)
	}{
		{"short card number", func(r *models.CapturePaymentRequest) { r.CardNumber = "4111" }},
		{"short security code", func(r *models.CapturePaymentRequest) { r.SecurityCode = "12" }},
		{"empty card", func(r *models.CapturePaymentRequest) { r.CardNumber = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repoWithBooking(ownedBooking())
			svc := NewService(repo, nopLogger{})

			req := validInstrument()
			tt.mutate(req)

			_, err := svc.CapturePayment(context.Background(), 10, owner, req)
			assert.ErrorIs(t, err, ErrInvalidInstrument)

			// Отклоненная оплата не трогает флаг paid
			assert.Empty(t, repo.paidIDs)
			assert.False(t, repo.byID[10].Paid)
		})
	}
}

func TestCapturePayment_AlreadyPaid(t *testing.T) {
	b := ownedBooking()
	b.Paid = true
	svc := NewService(repoWithBooking(b), nopLogger{})

	_, err := svc.CapturePayment(context.Background(), 10, owner, validInstrument())
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestCapturePayment_ConcurrentPaymentLoses(t *testing.T) {
	repo := repoWithBooking(ownedBooking())
	repo.setPaidErr = bookingRepo.ErrAlreadyPaid
	svc := NewService(repo, nopLogger{})

	_, err := svc.CapturePayment(context.Background(), 10, owner, validInstrument())
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestCapturePayment_TerminalStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusRejected, domain.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			b := ownedBooking()
			b.Status = status
			svc := NewService(repoWithBooking(b), nopLogger{})

			_, err := svc.CapturePayment(context.Background(), 10, owner, validInstrument())
			assert.ErrorIs(t, err, ErrNotPayable)
		})
	}
}

func TestCapturePayment_ForeignBooking(t *testing.T) {
	svc := NewService(repoWithBooking(ownedBooking()), nopLogger{})

	_, err := svc.CapturePayment(context.Background(), 10, other, validInstrument())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetSchedule(t *testing.T) {
	repo := &fakeBookingRepo{
		schedule: []*domain.Booking{
			{ID: 1, TimeSlot: "09:00", Status: domain.StatusApproved, Paid: true},
			{ID: 2, TimeSlot: "11:00", Status: domain.StatusApproved, Paid: true},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "09:00", resp.Bookings[0].TimeSlot)
}
