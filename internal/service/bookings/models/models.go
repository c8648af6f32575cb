package models

import (
	"time"

	"github.com/royalrinse/booking-service/internal/domain"
)

// CapturePaymentRequest платежные реквизиты (демо-заглушка)
type CapturePaymentRequest struct {
	CardNumber   string
	Expiry       string
	SecurityCode string
}

// PaymentResponse результат оплаты
type PaymentResponse struct {
	BookingID int64   `json:"bookingId"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
}

// BookingResponse представление бронирования для API
type BookingResponse struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	UserID       *int64  `json:"userId,omitempty"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	Tier         string  `json:"tier"`
	Date         string  `json:"date"`
	TimeSlot     string  `json:"time"`
	Address      string  `json:"address"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`
	Paid         bool    `json:"paid"`
	Amount       float64 `json:"amount"`
	CreatedAt    string  `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменную модель в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		UserID:       b.UserID,
		Phone:        b.Phone,
		Email:        b.Email,
		Tier:         b.Tier,
		Date:         b.Date.Format(domain.DateFormat),
		TimeSlot:     b.TimeSlot.String(),
		Address:      b.Address,
		Notes:        b.Notes,
		Status:       string(b.Status),
		Paid:         b.Paid,
		Amount:       b.Amount,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует слайс доменных моделей в ответ сервиса
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
