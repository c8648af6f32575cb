package admin_action

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/royalrinse/booking-service/internal/api/handlers"
	"github.com/royalrinse/booking-service/internal/api/middleware"
	"github.com/royalrinse/booking-service/internal/domain"
	adminTransition "github.com/royalrinse/booking-service/internal/usecase/admin_transition"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAction      = "unknown action, expected approve, reject or complete"
	msgAccessDenied       = "access denied"
	msgBookingNotFound    = "booking not found"
	msgInvalidTransition  = "action is not allowed for the current booking status"
	msgSlotConflict       = "another approved booking already holds this slot"
)

type Handler struct {
	useCase AdminTransitionUseCase
	logger  Logger
}

func NewHandler(useCase AdminTransitionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/action
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /admin/bookings/{id}/action - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/action - Invalid request body: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &adminTransition.Request{
		Actor:     actor,
		BookingID: bookingID,
		Action:    domain.AdminAction(req.Action),
	})
	if err != nil {
		switch {
		case errors.Is(err, adminTransition.ErrAccessDenied):
			h.logger.Warn("POST /admin/bookings/{id}/action - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, adminTransition.ErrInvalidAction):
			h.logger.Warn("POST /admin/bookings/{id}/action - Invalid action %q: booking_id=%d",
				req.Action, bookingID)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, adminTransition.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/action - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, adminTransition.ErrInvalidTransition):
			h.logger.Warn("POST /admin/bookings/{id}/action - Invalid transition: booking_id=%d, action=%s",
				bookingID, req.Action)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, adminTransition.ErrSlotConflict):
			h.logger.Warn("POST /admin/bookings/{id}/action - Slot conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /admin/bookings/{id}/action - Failed to apply action: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/action - Booking %d is now %s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
