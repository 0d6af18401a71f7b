package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"countries-api/core/database"
	"countries-api/core/dataset"
	"countries-api/core/i18n"
	"countries-api/core/logger"
	"countries-api/core/metrics"
	"countries-api/core/server"
	"countries-api/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete application configuration, one section per subsystem.
type Config struct {
	// Server holds HTTP listener and middleware settings.
	Server server.Config `mapstructure:"server"`
	// Dataset selects where country records are loaded from.
	Dataset dataset.Config `mapstructure:"dataset"`
	// I18n holds the message catalogue settings.
	I18n i18n.Config `mapstructure:"i18n"`
	// Storage holds the S3/MinIO connection used by the storage dataset source.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds the MySQL connection used by the database dataset source.
	Database database.Config `mapstructure:"database"`
	// Metrics holds the Prometheus endpoint settings.
	Metrics metrics.Config `mapstructure:"metrics"`
	// Log holds logger settings.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig reads the .env file in dir, if any, then environment variables.
// Keys map to variables by section: server.port is SERVER_PORT.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would only fail later at startup.
func (c *Config) Validate() error {
	if !c.Dataset.IsValidSource() {
		return fmt.Errorf("invalid dataset source %q: expected %s, %s or %s",
			c.Dataset.Source, dataset.SourceFile, dataset.SourceStorage, dataset.SourceDatabase)
	}
	if c.I18n.DefaultLocale == "" {
		return fmt.Errorf("i18n default locale must not be empty")
	}
	if !strings.HasPrefix(c.Server.Prefix, "/") {
		return fmt.Errorf("server prefix %q must start with '/'", c.Server.Prefix)
	}
	return nil
}

// registerDefaults walks the struct type and sets every mapstructure key to its
// default tag. Registering empty defaults too is what lets AutomaticEnv see
// the key during Unmarshal.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
