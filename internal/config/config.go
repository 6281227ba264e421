// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the explicit application configuration. It is constructed once
// in main and handed to the components that need it; nothing reads viper or
// the environment after startup.
type Config struct {
	Database struct {
		// URL selects the store: a postgres:// URL opens postgres,
		// anything else is treated as an sqlite file path.
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App struct {
		// VocabDir is the directory scanned for topic CSV files.
		VocabDir string `mapstructure:"vocab_dir"`
	} `mapstructure:"app"`
	Auth struct {
		// Password enables single-password login when non-empty.
		Password string `mapstructure:"password"`
		// SessionTTL bounds how long a login session stays valid.
		SessionTTL time.Duration `mapstructure:"session_ttl"`
	} `mapstructure:"auth"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// AuthEnabled reports whether login is required. Auth is on exactly when a
// password is configured, matching the single-user deployment model.
func (c *Config) AuthEnabled() bool {
	return c.Auth.Password != ""
}

// Load reads config.yaml from the given path (and the working directory),
// applies APP_-prefixed environment overrides, fills defaults and returns
// the resulting Config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.BindEnv("database.url", "APP_DATABASE_URL")
	v.BindEnv("auth.password", "APP_PASSWORD")
	v.BindEnv("server.port", "APP_SERVER_PORT")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus environment cover the
		// single-user local setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config.Load: reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: unmarshalling config: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8000"
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = "vietcards.db"
	}
	if cfg.App.VocabDir == "" {
		cfg.App.VocabDir = "vocab"
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = 7 * 24 * time.Hour
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}
