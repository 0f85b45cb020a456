// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(path); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnvs(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", time.Duration(0))

	v.SetDefault("github.base_url", "https://api.github.com")
	v.SetDefault("github.token", "")
	v.SetDefault("github.username", "")
}

// The deployment contract names PORT, GITHUB_TOKEN and GITHUB_USERNAME
// directly, so those keys do not follow the dotted-name convention.
var envAliases = map[string]string{
	"server.port":     "PORT",
	"github.token":    "GITHUB_TOKEN",
	"github.username": "GITHUB_USERNAME",
	"github.base_url": "GITHUB_BASE_URL",
}

func bindEnvs(v *viper.Viper) error {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"github.base_url",
		"github.token",
		"github.username",
	}

	for _, k := range keys {
		if alias, ok := envAliases[k]; ok {
			if err := v.BindEnv(k, alias); err != nil {
				return err
			}
			continue
		}
		_ = v.BindEnv(k)
	}
	return nil
}
