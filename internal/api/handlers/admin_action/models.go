package admin_action

import (
	"github.com/royalrinse/booking-service/internal/domain"
	adminTransition "github.com/royalrinse/booking-service/internal/usecase/admin_transition"
)

// ActionRequest HTTP request model
type ActionRequest struct {
	Action string `json:"action"` // approve | reject | complete
}

// ActionResponse HTTP response model
type ActionResponse struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	TimeSlot string `json:"time"`
	Paid     bool   `json:"paid"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *adminTransition.Response) *ActionResponse {
	return &ActionResponse{
		ID:       resp.ID,
		Status:   resp.Status,
		Date:     resp.Date.Format(domain.DateFormat),
		TimeSlot: resp.TimeSlot.String(),
		Paid:     resp.Paid,
	}
}
