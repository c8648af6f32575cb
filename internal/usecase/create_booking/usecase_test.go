package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalrinse/booking-service/internal/domain"
	userRepo "github.com/royalrinse/booking-service/internal/infra/storage/user"
	"github.com/royalrinse/booking-service/pkg/ptr"
	"github.com/royalrinse/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	approved []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetByDateAndStatus(_ context.Context, _ time.Time, _ domain.BookingStatus) ([]*domain.Booking, error) {
	return f.approved, nil
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

type fakeCatalog struct {
	tiers map[string]domain.ServiceTier
	base  domain.ServiceTier
}

func (f *fakeCatalog) Resolve(tierID string) (domain.ServiceTier, error) {
	tier, ok := f.tiers[tierID]
	if !ok {
		return domain.ServiceTier{}, ErrUnknownTier
	}
	return tier, nil
}

func (f *fakeCatalog) Base() domain.ServiceTier {
	return f.base
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *fakeCatalog {
	base := domain.ServiceTier{ID: "base", Title: "Base Rinse", Price: 15.0}
	return &fakeCatalog{
		base: base,
		tiers: map[string]domain.ServiceTier{
			"base":  base,
			"royal": {ID: "royal", Title: "Royal Rinse", Price: 50.0},
		},
	}
}

func testSlotSet() domain.SlotSet {
	return domain.SlotSet{"08:00", "09:00", "10:00"}
}

func validRequest() *Request {
	return &Request{
		UserID:       7,
		CustomerName: "Ivan Petrov",
		Phone:        "+7 900 123-45-67",
		Tier:         "royal",
		Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:     types.TimeString("09:00"),
		Address:      "Lenina 1",
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, users *fakeUserRepo) *UseCase {
	return NewUseCase(bookingRepo, users, testCatalog(), fakeTxManager{}, testSlotSet(), nopLogger{})
}

func TestExecute_CreatesPendingUnpaidBooking(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 101}
	uc := newTestUseCase(repo, &fakeUserRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.False(t, resp.Paid)
	// Цена тарифа фиксируется в бронировании в момент создания
	assert.Equal(t, 50.0, resp.Amount)
	assert.Equal(t, "royal", resp.Tier)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	require.NotNil(t, repo.created.UserID)
	assert.Equal(t, int64(7), *repo.created.UserID)
}

func TestExecute_EmptyTierFallsBackToBase(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 1}
	uc := newTestUseCase(repo, &fakeUserRepo{})

	req := validRequest()
	req.Tier = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "base", resp.Tier)
	assert.Equal(t, 15.0, resp.Amount)
}

func TestExecute_UnknownTier(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{})

	req := validRequest()
	req.Tier = "platinum"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestExecute_EmptyNameFallsBackToAccount(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 1}
	users := &fakeUserRepo{user: &domain.User{ID: 7, FullName: "Anna Smirnova"}}
	uc := newTestUseCase(repo, users)

	req := validRequest()
	req.CustomerName = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Anna Smirnova", resp.CustomerName)
}

func TestExecute_EmptyNameUnknownUser(t *testing.T) {
	users := &fakeUserRepo{err: userRepo.ErrUserNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, users)

	req := validRequest()
	req.CustomerName = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_SlotTakenByApproved(t *testing.T) {
	repo := &fakeBookingRepo{
		approved: []*domain.Booking{
			{ID: 1, UserID: ptr.Ptr(int64(2)), TimeSlot: "09:00", Status: domain.StatusApproved},
		},
	}
	uc := newTestUseCase(repo, &fakeUserRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SlotOutsideDailySet(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{})

	req := validRequest()
	req.TimeSlot = types.TimeString("23:00")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastDateAccepted(t *testing.T) {
	// Прошедшие даты не отклоняются
	repo := &fakeBookingRepo{nextID: 1}
	uc := newTestUseCase(repo, &fakeUserRepo{})

	req := validRequest()
	req.Date = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	longNotes := string(make([]byte, domain.MaxNotesLength+1))

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing phone", func(r *Request) { r.Phone = "" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing time slot", func(r *Request) { r.TimeSlot = "" }},
		{"missing address", func(r *Request) { r.Address = "" }},
		{"non-positive user id", func(r *Request) { r.UserID = 0 }},
		{"notes too long", func(r *Request) { r.Notes = &longNotes }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
