package get_schedule

import (
	"net/http"
	"time"

	"github.com/royalrinse/booking-service/internal/api/handlers"
	"github.com/royalrinse/booking-service/internal/domain"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

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

// Handle GET /api/v1/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Без параметра date показывается расписание на сегодня
	rawDate := r.URL.Query().Get("date")
	var date time.Time
	if rawDate == "" {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		rawDate = date.Format(domain.DateFormat)
	} else {
		var err error
		date, err = time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid date %q: %v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.service.GetSchedule(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule - Failed to get schedule: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - %d bookings scheduled on %s", len(result.Bookings), rawDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
