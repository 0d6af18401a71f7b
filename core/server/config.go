package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey, when set, is required in the X-API-Key header of API requests.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowOrigins is the CORS allow-list, comma separated.
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
	// CacheMaxAgeSeconds is the max-age sent on successful API responses.
	CacheMaxAgeSeconds int `mapstructure:"cache_max_age_seconds" default:"604800"`
	// Prefix is the mount point of the versioned API.
	Prefix string `mapstructure:"prefix" default:"/api/v1"`
}

// Address returns the listen address for Port.
func (c Config) Address() string {
	return ":" + c.Port
}
