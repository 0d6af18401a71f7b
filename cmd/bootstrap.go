package cmd

import (
	"context"
	"fmt"
	"time"

	"countries-api/core/config"
	"countries-api/core/database"
	"countries-api/core/dataset"
	"countries-api/core/i18n"
	"countries-api/core/index"
	"countries-api/core/logger"
	"countries-api/core/metrics"
	"countries-api/core/storage"

	"go.uber.org/zap"
)

// runtime holds everything built once at startup and shared afterwards.
type runtime struct {
	cfg      *config.Config
	log      *zap.Logger
	metrics  *metrics.Metrics
	resolver *i18n.Resolver
	catalog  *index.Catalog
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// bootstrap loads configuration, the message catalogue and the dataset, and
// builds the catalog. Any failure aborts startup.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, logg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	m := metrics.New()

	resolver, err := newResolver(cfg.I18n, logg, m)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, cfg, logg, m)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, log: logg, metrics: m, resolver: resolver, catalog: catalog}, nil
}

func newResolver(cfg i18n.Config, logg *zap.Logger, m *metrics.Metrics) (*i18n.Resolver, error) {
	catalogue, err := i18n.LoadCatalogue(cfg.CataloguePath)
	if err != nil {
		return nil, err
	}
	return i18n.NewResolver(catalogue, cfg.DefaultLocale, logg,
		i18n.WithMissingHook(m.IncrementMissingTranslation))
}

// openSource creates the configured dataset source. Only the backend the
// source needs is connected.
func openSource(cfg *config.Config) (dataset.Source, error) {
	return openNamedSource(cfg, cfg.Dataset.Source)
}

// openNamedSource opens one dataset source regardless of dataset.source.
func openNamedSource(cfg *config.Config, name string) (dataset.Source, error) {
	dcfg := cfg.Dataset
	dcfg.Source = name

	switch name {
	case dataset.SourceStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return dataset.NewSource(dcfg, client, cfg.Storage.Bucket, nil)
	case dataset.SourceDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		return dataset.NewSource(dcfg, nil, "", db)
	default:
		return dataset.NewSource(dcfg, nil, "", nil)
	}
}

func loadRecords(ctx context.Context, cfg *config.Config, logg *zap.Logger) ([]*dataset.Record, error) {
	src, err := openSource(cfg)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Dataset.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logg.Info("Loading dataset", zap.String("source", src.Name()))
	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset from %s: %w", src.Name(), err)
	}
	return records, nil
}

func loadCatalog(ctx context.Context, cfg *config.Config, logg *zap.Logger, m *metrics.Metrics) (*index.Catalog, error) {
	start := time.Now()

	records, err := loadRecords(ctx, cfg, logg)
	if err != nil {
		return nil, err
	}

	catalog := index.Build(records)
	stats := catalog.Stats()
	m.SetCatalog(stats)
	m.ObserveDatasetLoad(start)

	logg.Info("Catalog built",
		zap.Int("records", stats.Records),
		zap.Int("name_keys", stats.NameKeys),
		zap.Int("regions", stats.Regions),
		zap.Int("skipped_without_common_name", stats.NameSkipped),
		zap.Duration("took", time.Since(start)))

	return catalog, nil
}
