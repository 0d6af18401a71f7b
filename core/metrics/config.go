package metrics

// Config defines the Prometheus endpoint settings.
type Config struct {
	// Enabled exposes the metrics endpoint.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is the route of the metrics endpoint.
	Path string `mapstructure:"path" default:"/metrics"`
}
