package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("server.port is required")
	}
	if c.GitHub.Username == "" {
		return errors.New("github.username is required")
	}
	if c.GitHub.BaseURL == "" {
		return errors.New("github.base_url is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings. A zero RequestTimeout leaves
// upstream calls bounded only by the transport defaults.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// GitHubConfig is the credential set used for every upstream call.
type GitHubConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Token    string `mapstructure:"token"`
	Username string `mapstructure:"username"`
}
