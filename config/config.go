// Package config loads service configuration from environment
// variables.
package config

import (
	logging "github.com/fsouza/gizmo-stackdriver-logging"
	"github.com/kelseyhightower/envconfig"
	"github.com/zsiec/pkg/tracing"
)

// Config contains all the needed configuration for running the
// changelist service.
type Config struct {
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	DefaultFPS  int    `envconfig:"DEFAULT_FPS" default:"24"`
	RedisAddr   string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisDB     int    `envconfig:"REDIS_DB"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	Log         *logging.Config

	// Tracer is set by the process hosting the service, not the
	// environment.
	Tracer tracing.Tracer `ignored:"true"`
}

// LoadConfig loads the configuration of the service using environment
// variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
