package capture_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/royalrinse/booking-service/internal/api/handlers"
	"github.com/royalrinse/booking-service/internal/api/middleware"
	bookingsService "github.com/royalrinse/booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInstrument  = "invalid payment card details"
	msgBookingNotFound    = "booking not found"
	msgAlreadyPaid        = "booking is already paid"
	msgNotPayable         = "booking can no longer be paid"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /bookings/{id}/payment - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CapturePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payment - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CapturePayment(r.Context(), bookingID, actor, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInstrument):
			h.logger.Warn("POST /bookings/{id}/payment - Invalid instrument: booking_id=%d, user_id=%d",
				bookingID, actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidInstrument)

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment - Booking not found: booking_id=%d, user_id=%d",
				bookingID, actor.UserID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAlreadyPaid):
			h.logger.Warn("POST /bookings/{id}/payment - Already paid: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, bookingsService.ErrNotPayable):
			h.logger.Warn("POST /bookings/{id}/payment - Not payable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotPayable)

		default:
			h.logger.Error("POST /bookings/{id}/payment - Failed to capture payment: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payment - Payment captured: booking_id=%d, reference=%s",
		bookingID, result.Reference)
	handlers.RespondJSON(w, http.StatusOK, result)
}
