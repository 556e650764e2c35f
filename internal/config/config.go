// Package config loads runtime configuration from environment
// variables, an optional config.yaml and defaults, in that priority.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	API      APIConfig      `mapstructure:"api"`
	Sim      SimConfig      `mapstructure:"sim"`
	Content  ContentConfig  `mapstructure:"content"`
	Player   PlayerConfig   `mapstructure:"player"`
}

// DatabaseConfig locates the save store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// APIConfig controls the optional read-only status server.
type APIConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"gte=1,lte=65535"`
}

// SimConfig tunes the tick loop.
type SimConfig struct {
	TickMillis      int `mapstructure:"tick_millis" validate:"gte=10,lte=1000"`
	AutosaveSeconds int `mapstructure:"autosave_seconds" validate:"gte=1"`
}

// ContentConfig locates the content tables; empty path means the
// embedded default universe.
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

// PlayerConfig identifies the save slot. Empty id means a fresh
// identity is generated and logged on first run.
type PlayerConfig struct {
	ID string `mapstructure:"id"`
}

// Load reads configuration with priority: env (STARDRIFT_ prefix),
// then config file, then defaults. A missing config file is fine.
func Load(configPath string) (*Config, error) {
	// Pick up a .env file if present; missing is not an error.
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("STARDRIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; only a present-but-broken file errors.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "data/stardrift.db")
	v.SetDefault("api.enabled", false)
	v.SetDefault("api.port", 8080)
	v.SetDefault("sim.tick_millis", 50)
	v.SetDefault("sim.autosave_seconds", 30)
	v.SetDefault("content.path", "")
	v.SetDefault("player.id", "")
}
