package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	StoreDSN   string `mapstructure:"STORE_DSN"`
	HTTPAddr   string `mapstructure:"HTTP_ADDR"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	LogFormat  string `mapstructure:"LOG_FORMAT"`
	LogFile    string `mapstructure:"LOG_FILE"`
	IDStrategy string `mapstructure:"ID_STRATEGY"`
	SeedFile   string `mapstructure:"SEED_FILE"`
	GinMode    string `mapstructure:"GIN_MODE"`
}

var keys = []string{
	"STORE_DSN", "HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "ID_STRATEGY", "SEED_FILE", "GIN_MODE",
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("STORE_DSN", "")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("ID_STRATEGY", "sequential")
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("GIN_MODE", "debug")
}

// Load reads configuration from a .env file and environment variables.
// An empty path looks for .env in the working directory; a missing file
// is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".env")
	}
	v.SetConfigType("env")
	v.AutomaticEnv()
	for _, k := range keys {
		// AutomaticEnv only applies to keys viper already knows about.
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates a configuration from v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.IDStrategy) {
	case "", "sequential", "uuid":
	default:
		return fmt.Errorf("ID_STRATEGY must be sequential or uuid, got %q", c.IDStrategy)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}
