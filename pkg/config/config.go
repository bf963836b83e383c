package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"3000"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	// RateLimit is requests per second per client IP; 0 disables the limiter.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"20"`

	DB struct {
		Name            string        `envconfig:"DB_NAME"`
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER"`
		Pass            string        `envconfig:"DB_PASS"`
		EnableSSL       bool          `envconfig:"ENABLE_SSL"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
