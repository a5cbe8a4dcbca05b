package app

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrymomot/uakit/pkg/httpserver"
	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/ratelimiter"
	"github.com/dmitrymomot/uakit/pkg/validator"
)

// Session store backends accepted by SESSION_STORE.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config is the service configuration. Store connection settings are read
// separately, only for the selected backend.
type Config struct {
	Name      string `env:"APP_NAME" envDefault:"uakit"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	SessionStore     string        `env:"SESSION_STORE" envDefault:"memory"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	FingerprintCheck bool          `env:"SESSION_FINGERPRINT_CHECK" envDefault:"false"`

	ParserCacheSize  int           `env:"PARSER_CACHE_SIZE" envDefault:"1024"`
	MaxBatchSize     int           `env:"API_MAX_BATCH_SIZE" envDefault:"100"`
	RequestTimeout   time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"30s"`
	RateLimitEnabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

// Validate checks the values New relies on.
func (c Config) Validate() error {
	err := validator.Apply(
		validator.OneOf("SESSION_STORE", normalizeStore(c.SessionStore), StoreMemory, StoreRedis, StorePostgres),
		validator.OneOf("LOG_FORMAT", c.LogFormat, "", string(logger.FormatJSON), string(logger.FormatText)),
		validator.NonNegative("PARSER_CACHE_SIZE", c.ParserCacheSize),
		validator.NonNegative("API_MAX_BATCH_SIZE", c.MaxBatchSize),
		validator.NonNegative("API_REQUEST_TIMEOUT", c.RequestTimeout),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

func normalizeStore(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StoreMemory
	}
	return name
}
