package metrics

import (
	"time"

	"countries-api/core/index"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup kinds.
const (
	KindName   = "name"
	KindRegion = "region"
)

// Metrics holds the Prometheus collectors of the service.
// Each instance owns its registry, so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	Lookups             *prometheus.CounterVec
	MissingTranslations *prometheus.CounterVec
	RecordsLoaded       prometheus.Gauge
	NameKeys            prometheus.Gauge
	Regions             prometheus.Gauge
	DatasetLoadDuration prometheus.Histogram
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countries_lookups_total",
			Help: "Total number of index lookups by kind and result",
		}, []string{"kind", "result"}),
		MissingTranslations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "countries_missing_translations_total",
			Help: "Total number of messages rendered without a template",
		}, []string{"key"}),
		RecordsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name: "countries_records_loaded",
			Help: "Number of country records in the catalog",
		}),
		NameKeys: factory.NewGauge(prometheus.GaugeOpts{
			Name: "countries_name_keys",
			Help: "Number of distinct normalized name keys",
		}),
		Regions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "countries_regions",
			Help: "Number of indexed regions",
		}),
		DatasetLoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "countries_dataset_load_duration_seconds",
			Help:    "Duration of loading and indexing the dataset",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveLookup records the outcome of one index lookup.
func (m *Metrics) ObserveLookup(kind string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	m.Lookups.WithLabelValues(kind, result).Inc()
}

// IncrementMissingTranslation records a render without a template for key.
func (m *Metrics) IncrementMissingTranslation(key string) {
	m.MissingTranslations.WithLabelValues(key).Inc()
}

// SetCatalog publishes the sizes of a freshly built catalog.
func (m *Metrics) SetCatalog(stats index.Stats) {
	m.RecordsLoaded.Set(float64(stats.Records))
	m.NameKeys.Set(float64(stats.NameKeys))
	m.Regions.Set(float64(stats.Regions))
}

// ObserveDatasetLoad records the time since start.
// Call with time.Now() taken before loading began.
func (m *Metrics) ObserveDatasetLoad(start time.Time) {
	m.DatasetLoadDuration.Observe(time.Since(start).Seconds())
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
