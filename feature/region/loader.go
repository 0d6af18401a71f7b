package region

import (
	"countries-api/core/index"
	"countries-api/core/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new region feature.
func NewFeature(catalog *index.Catalog, m *metrics.Metrics, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(catalog, m, logger))}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "region"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(router fiber.Router) error {
	f.handler.RegisterRoutes(router)
	return nil
}
