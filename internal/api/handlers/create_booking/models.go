package create_booking

import (
	"time"

	"github.com/royalrinse/booking-service/internal/domain"
	createBooking "github.com/royalrinse/booking-service/internal/usecase/create_booking"
	"github.com/royalrinse/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
// ID заявителя берется из identity запроса, а не из тела
type CreateBookingRequest struct {
	CustomerName string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	Tier         string  `json:"tier"`
	Date         string  `json:"date"` // "2026-03-14"
	TimeSlot     string  `json:"time"` // "10:00"
	Address      string  `json:"address"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	UserID       int64   `json:"userId"`
	Tier         string  `json:"tier"`
	Date         string  `json:"date"`
	TimeSlot     string  `json:"time"`
	Status       string  `json:"status"`
	Paid         bool    `json:"paid"`
	Amount       float64 `json:"amount"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Email:        r.Email,
		Tier:         r.Tier,
		Date:         date,
		TimeSlot:     timeSlot,
		Address:      r.Address,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		UserID:       resp.UserID,
		Tier:         resp.Tier,
		Date:         resp.Date.Format(domain.DateFormat),
		TimeSlot:     resp.TimeSlot.String(),
		Status:       resp.Status,
		Paid:         resp.Paid,
		Amount:       resp.Amount,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
