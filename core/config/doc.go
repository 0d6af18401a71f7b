// Package config loads the Countries API configuration.
//
// Values come from environment variables, optionally seeded from a .env file,
// and are decoded with Viper. Every field declares its key with a mapstructure
// tag and its fallback with a default tag; nested sections become the
// variable prefix.
//
// # Sections
//
//   - Server: port, API key, CORS origins, cache lifetime, route prefix
//   - Dataset: source (file, storage, database) and its location
//   - I18n: default locale and an optional catalogue file
//   - Storage: S3/MinIO credentials and bucket
//   - Database: MySQL connection details
//   - Metrics: Prometheus endpoint
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Dataset.Source) // DATASET_SOURCE, "file" by default
package config
