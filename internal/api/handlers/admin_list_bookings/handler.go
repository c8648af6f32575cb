package admin_list_bookings

import (
	"errors"
	"net/http"

	"github.com/royalrinse/booking-service/internal/api/handlers"
	"github.com/royalrinse/booking-service/internal/api/middleware"
	bookingsService "github.com/royalrinse/booking-service/internal/service/bookings"
)

const msgAccessDenied = "access denied"

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

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())

	result, err := h.service.ListAll(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - %d bookings listed", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
