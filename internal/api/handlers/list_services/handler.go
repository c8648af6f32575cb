package list_services

import (
	"net/http"

	"github.com/royalrinse/booking-service/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tiers := h.catalog.List()

	h.logger.Info("GET /services - Returned %d service tiers", len(tiers))
	handlers.RespondJSON(w, http.StatusOK, FromDomainTiers(tiers))
}
