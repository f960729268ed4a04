package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration read from the environment. Every field is optional.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json pretty"`

	Provider string        `envconfig:"NBA_STATS_PROVIDER" default:"nbastats" validate:"oneof=nbastats fixture"`
	BaseURL  string        `envconfig:"NBA_STATS_BASE_URL" default:"https://stats.nba.com/stats" validate:"required,url"`
	Timeout  time.Duration `envconfig:"NBA_STATS_TIMEOUT" default:"60s" validate:"gt=0"`

	MetricsEnabled  bool   `envconfig:"METRICS_ENABLED" default:"false"`
	MetricsTextfile string `envconfig:"METRICS_TEXTFILE"`

	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"nba-season-stats" validate:"required"`
	OtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`

	TraceExporter string `envconfig:"TRACE_EXPORTER" default:"none" validate:"oneof=none stdout"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
