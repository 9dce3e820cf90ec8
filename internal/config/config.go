// Package config loads the process configuration from environment variables.
package config

import (
	"time"

	"github.com/gabapcia/suiwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Config is the complete process configuration. Every field is read from the
// environment variable named by its envconfig tags, joined with underscores.
type Config struct {
	Log              LogConfig         `envconfig:"LOG"`
	Sui              SuiConfig         `envconfig:"SUI"`
	HTTP             HTTPConfig        `envconfig:"HTTP"`
	Checkpoints      CheckpointsConfig `envconfig:"CHECKPOINTS"`
	Tail             TailConfig        `envconfig:"TAIL"`
	Redis            RedisConfig       `envconfig:"REDIS"`
	Telemetry        TelemetryConfig   `envconfig:"TELEMETRY"`
	TrackedAddresses []string          `envconfig:"TRACKED_ADDRESSES" validate:"dive,suiaddress"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

// SuiConfig selects the network and, optionally, a custom GraphQL endpoint.
type SuiConfig struct {
	Network         string `envconfig:"NETWORK" default:"mainnet" validate:"oneof=mainnet testnet"`
	GraphQLEndpoint string `envconfig:"GRAPHQL_ENDPOINT" validate:"omitempty,url"`
}

// HTTPConfig bounds each request and the retry policy around it.
// RetryLimit counts attempts, the first one included.
type HTTPConfig struct {
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	RetryLimit     uint          `envconfig:"RETRY_LIMIT" default:"5" validate:"min=1"`
	RetryDelay     time.Duration `envconfig:"RETRY_DELAY" default:"200ms" validate:"gte=0"`
	RetryMaxDelay  time.Duration `envconfig:"RETRY_MAX_DELAY" default:"5s" validate:"gte=0"`
	RetryMaxJitter time.Duration `envconfig:"RETRY_MAX_JITTER" default:"250ms" validate:"gte=0"`
}

// CheckpointsConfig sizes discovery and pagination. ToRead of zero reads
// without a bound.
type CheckpointsConfig struct {
	ToRead      int `envconfig:"TO_READ" default:"9" validate:"min=0"`
	PageSize    int `envconfig:"PAGE_SIZE" default:"1" validate:"min=1,max=50"`
	AnchorDepth int `envconfig:"ANCHOR_DEPTH" default:"10" validate:"min=1,max=50"`
}

// TailConfig decides what happens at the tip and after a failed page.
type TailConfig struct {
	Follow        bool          `envconfig:"FOLLOW" default:"false"`
	PollInterval  time.Duration `envconfig:"POLL_INTERVAL" default:"1s" validate:"gt=0"`
	OnPageFailure string        `envconfig:"ON_PAGE_FAILURE" default:"skip" validate:"oneof=skip fail"`
}

// RedisConfig enables the tracked address set when Addr is set.
type RedisConfig struct {
	Addr     string `envconfig:"ADDR"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"min=0"`
}

// TelemetryConfig enables OTLP trace export.
type TelemetryConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"suiwatch" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
