package app

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/uakit/pkg/clientip"
	"github.com/dmitrymomot/uakit/pkg/environment"
	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/requestid"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// NewLogger builds the service logger. The environment preset picks level and
// format; LOG_LEVEL and LOG_FORMAT override it.
func NewLogger(cfg Config, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Name),
		logger.WithOutput(out),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			useragent.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}
