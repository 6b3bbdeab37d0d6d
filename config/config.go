// Package config loads application configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Presence PresenceConfig `mapstructure:"presence"`
	Matching MatchingConfig `mapstructure:"matching"`
	Hotseats HotseatsConfig `mapstructure:"hotseats"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
	CORSAllowedOrigins string        `mapstructure:"cors_allowed_origins"` // comma-separated, or "*"
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// PresenceConfig controls derived online status.
type PresenceConfig struct {
	Window time.Duration `mapstructure:"window"`
}

// MatchingConfig controls the public matches query.
type MatchingConfig struct {
	TopN int `mapstructure:"top_n"`
}

// HotseatsConfig holds session creation defaults.
type HotseatsConfig struct {
	DefaultCapacity int `mapstructure:"default_capacity"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AllowedOrigins splits CORSAllowedOrigins.
func (c ServerConfig) AllowedOrigins() []string {
	return splitTrim(c.CORSAllowedOrigins, ",")
}

// Validate ensures values are usable.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("server.port must be within 1-65535")
	}
	if c.Presence.Window <= 0 {
		return errors.New("presence.window must be positive")
	}
	if c.Matching.TopN <= 0 {
		return errors.New("matching.top_n must be positive")
	}
	if c.Hotseats.DefaultCapacity <= 0 {
		return errors.New("hotseats.default_capacity must be positive")
	}
	return nil
}

// Load reads configuration from environment, with optional .env file.
// Variable names are the upper-cased keys with dots replaced, e.g. SERVER_PORT.
func Load() (*Config, error) {
	_ = godotenv.Load()      // .env
	_ = godotenv.Load("env") // env (no leading dot)
	return load()
}

func load() (*Config, error) {
	v := viper.New()
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
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.cors_allowed_origins", "*")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)

	v.SetDefault("presence.window", 15*time.Minute)
	v.SetDefault("matching.top_n", 3)
	v.SetDefault("hotseats.default_capacity", 6)
}

func bindEnvs(v *viper.Viper) error {
	// PORT is what most hosting platforms inject.
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return err
	}
	if err := v.BindEnv("server.mode", "SERVER_MODE", "GIN_MODE"); err != nil {
		return err
	}
	keys := []string{
		"server.read_timeout",
		"server.write_timeout",
		"server.shutdown_timeout",
		"server.cors_allowed_origins",
		"logging.level",
		"logging.development",
		"presence.window",
		"matching.top_n",
		"hotseats.default_capacity",
	}
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return err
		}
	}
	return nil
}

func splitTrim(s, sep string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, sep) {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
