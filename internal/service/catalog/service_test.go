package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalrinse/booking-service/internal/config"
)

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{
		Tiers: []config.TierConfig{
			{ID: "base", Title: "Base Rinse", Price: 15.0, Description: "Exterior wash and dry"},
			{ID: "deluxe", Title: "Deluxe Rinse", Price: 30.0, Description: "Exterior + interior vacuum"},
			{ID: "royal", Title: "Royal Rinse", Price: 50.0, Description: "Full detail"},
		},
	}
}

func TestNewService(t *testing.T) {
	t.Run("empty catalog rejected", func(t *testing.T) {
		_, err := NewService(config.CatalogConfig{})
		assert.Error(t, err)
	})

	t.Run("duplicate tier rejected", func(t *testing.T) {
		cfg := testCatalogConfig()
		cfg.Tiers = append(cfg.Tiers, config.TierConfig{ID: "base", Title: "Base again", Price: 1.0})

		_, err := NewService(cfg)
		assert.Error(t, err)
	})
}

func TestService_Resolve(t *testing.T) {
	svc, err := NewService(testCatalogConfig())
	require.NoError(t, err)

	t.Run("known tier", func(t *testing.T) {
		tier, err := svc.Resolve("deluxe")
		require.NoError(t, err)
		assert.Equal(t, "Deluxe Rinse", tier.Title)
		assert.Equal(t, 30.0, tier.Price)
	})

	t.Run("unknown tier is an error, not a fallback", func(t *testing.T) {
		_, err := svc.Resolve("platinum")
		assert.ErrorIs(t, err, ErrUnknownTier)
	})
}

func TestService_Base(t *testing.T) {
	svc, err := NewService(testCatalogConfig())
	require.NoError(t, err)

	// Базовый тариф — первый объявленный в конфигурации
	assert.Equal(t, "base", svc.Base().ID)
}

func TestService_List(t *testing.T) {
	svc, err := NewService(testCatalogConfig())
	require.NoError(t, err)

	tiers := svc.List()
	require.Len(t, tiers, 3)

	// Порядок объявления в конфигурации сохраняется
	assert.Equal(t, "base", tiers[0].ID)
	assert.Equal(t, "deluxe", tiers[1].ID)
	assert.Equal(t, "royal", tiers[2].ID)
}
