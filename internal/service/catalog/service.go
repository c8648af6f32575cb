package catalog

import (
	"fmt"

	"github.com/royalrinse/booking-service/internal/config"
	"github.com/royalrinse/booking-service/internal/domain"
)

// Service статический каталог услуг
// Загружается один раз при старте процесса и не изменяется в рантайме.
// Цена фиксируется в бронировании в момент создания, поэтому последующие
// изменения каталога (через рестарт) не влияют на существующие записи
type Service struct {
	tiers map[string]domain.ServiceTier
	order []string
}

// NewService строит каталог из конфигурации
func NewService(cfg config.CatalogConfig) (*Service, error) {
	if len(cfg.Tiers) == 0 {
		return nil, fmt.Errorf("catalog: at least one tier is required")
	}

	s := &Service{
		tiers: make(map[string]domain.ServiceTier, len(cfg.Tiers)),
		order: make([]string, 0, len(cfg.Tiers)),
	}

	for _, tier := range cfg.Tiers {
		if _, ok := s.tiers[tier.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate tier %q", tier.ID)
		}
		s.tiers[tier.ID] = domain.ServiceTier{
			ID:          tier.ID,
			Title:       tier.Title,
			Price:       tier.Price,
			Description: tier.Description,
		}
		s.order = append(s.order, tier.ID)
	}

	return s, nil
}

// Resolve находит тариф по идентификатору
// Неизвестный тариф — это ошибка: молчаливого фолбэка на базовый тариф нет
func (s *Service) Resolve(tierID string) (domain.ServiceTier, error) {
	tier, ok := s.tiers[tierID]
	if !ok {
		return domain.ServiceTier{}, fmt.Errorf("%w: %q", ErrUnknownTier, tierID)
	}
	return tier, nil
}

// Base возвращает базовый тариф — первый в порядке объявления
// Используется, когда тариф в заявке не указан вовсе
func (s *Service) Base() domain.ServiceTier {
	return s.tiers[s.order[0]]
}

// List возвращает все тарифы в порядке объявления в конфигурации
func (s *Service) List() []domain.ServiceTier {
	result := make([]domain.ServiceTier, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.tiers[id])
	}
	return result
}
