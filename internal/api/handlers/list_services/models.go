package list_services

import (
	"github.com/royalrinse/booking-service/internal/domain"
)

// ServiceTierResponse HTTP response model одного тарифа
type ServiceTierResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ServicesResponse HTTP response model каталога
type ServicesResponse struct {
	Services []ServiceTierResponse `json:"services"`
}

// FromDomainTiers конвертирует тарифы каталога в HTTP response
func FromDomainTiers(tiers []domain.ServiceTier) *ServicesResponse {
	services := make([]ServiceTierResponse, 0, len(tiers))
	for _, tier := range tiers {
		services = append(services, ServiceTierResponse{
			ID:          tier.ID,
			Title:       tier.Title,
			Price:       tier.Price,
			Description: tier.Description,
		})
	}
	return &ServicesResponse{Services: services}
}
