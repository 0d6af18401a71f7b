package database

import (
	"fmt"
	"net/url"
)

// Config holds configuration for the database connection used by the database dataset source.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"countries"`
	// TimeoutSeconds bounds connection setup and each read or write.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// DSN renders the go-sql-driver/mysql data source name.
// The password is URL-encoded so special characters survive parsing.
func (c Config) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password).String()
	timeout := c.timeout()
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, c.Host, c.Port, c.Name, timeout, timeout, timeout)
}

func (c Config) timeout() int {
	if c.TimeoutSeconds <= 0 {
		return 10
	}
	return c.TimeoutSeconds
}
