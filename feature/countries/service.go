package countries

import (
	"countries-api/core/dataset"
	"countries-api/core/index"
	"countries-api/core/metrics"
	"countries-api/core/normalize"
	"countries-api/core/query"
	"countries-api/core/value"

	"go.uber.org/zap"
)

// Service answers country listing and name lookups from the catalog.
type Service struct {
	catalog *index.Catalog
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new countries service. m may be nil.
func NewService(catalog *index.Catalog, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		catalog: catalog,
		metrics: m,
		logger:  logger,
	}
}

// All returns every country, sorted and projected by opts.
func (s *Service) All(opts query.Options) []*value.Value {
	return query.Apply(dataset.Documents(s.catalog.All()), opts)
}

// FindByName returns the countries carrying name in any language, in
// dataset order before sorting. The second result is false when no country
// matches.
func (s *Service) FindByName(name string, opts query.Options) ([]*value.Value, bool) {
	records, ok := s.catalog.LookupName(normalize.Key(name))
	if s.metrics != nil {
		s.metrics.ObserveLookup(metrics.KindName, ok)
	}
	if !ok {
		return nil, false
	}
	return query.Apply(dataset.Documents(records), opts), true
}
