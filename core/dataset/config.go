package dataset

// Config holds configuration for the country dataset.
type Config struct {
	// Source selects where the dataset is read from (file, storage, database).
	Source string `mapstructure:"source" default:"file"`
	// Path is the local JSON file used by the file source.
	Path string `mapstructure:"path" default:"data/countries.json"`
	// Object is the object key inside the storage bucket used by the storage source.
	Object string `mapstructure:"object" default:"data/countriesV3.1.json"`
	// Table is the table holding one JSON document per row for the database source.
	Table string `mapstructure:"table" default:"countries"`
	// TimeoutSeconds bounds how long loading may take at startup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage, SourceDatabase:
		return true
	default:
		return false
	}
}
