package region

import (
	"countries-api/core/dataset"
	"countries-api/core/index"
	"countries-api/core/metrics"
	"countries-api/core/normalize"
	"countries-api/core/query"
	"countries-api/core/value"

	"go.uber.org/zap"
)

// Service answers region listing and region lookups from the catalog.
type Service struct {
	catalog *index.Catalog
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new region service. m may be nil.
func NewService(catalog *index.Catalog, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		catalog: catalog,
		metrics: m,
		logger:  logger,
	}
}

// Regions returns the region summaries sorted by name.
func (s *Service) Regions() []index.RegionSummary {
	return s.catalog.Regions()
}

// FindByRegion returns the countries of region, sorted and projected by opts.
// The second result is false for an unknown region.
func (s *Service) FindByRegion(region string, opts query.Options) ([]*value.Value, bool) {
	records, ok := s.catalog.LookupRegion(normalize.Key(region))
	if s.metrics != nil {
		s.metrics.ObserveLookup(metrics.KindRegion, ok)
	}
	if !ok {
		return nil, false
	}
	return query.Apply(dataset.Documents(records), opts), true
}
