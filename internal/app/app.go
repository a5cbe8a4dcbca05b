package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrymomot/uakit/internal/api"
	"github.com/dmitrymomot/uakit/pkg/config"
	"github.com/dmitrymomot/uakit/pkg/environment"
	"github.com/dmitrymomot/uakit/pkg/httpserver"
	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/pg"
	"github.com/dmitrymomot/uakit/pkg/ratelimiter"
	"github.com/dmitrymomot/uakit/pkg/redis"
	"github.com/dmitrymomot/uakit/pkg/sessionlog"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// App is the wired HTTP service.
type App struct {
	cfg     Config
	log     *slog.Logger
	handler http.Handler
	server  *httpserver.Server
	closers []func()
}

// Run loads the configuration from the environment and serves until ctx is
// cancelled or the process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := NewLogger(cfg, os.Stdout)
	logger.SetAsDefault(log)

	a, err := New(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to start", logger.Error(err))
		return err
	}
	return a.Run(ctx)
}

// New connects the session store and builds the router and server.
func New(ctx context.Context, cfg Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = logger.Noop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, log: log}

	store, probes, limiterStore, err := a.connectStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	sessionOpts := []sessionlog.Option{sessionlog.WithLogger(log.With(logger.Component("sessionlog")))}
	if cfg.FingerprintCheck {
		sessionOpts = append(sessionOpts, sessionlog.WithFingerprintCheck())
	}

	apiOpts := []api.Option{
		api.WithLogger(log),
		api.WithEnvironment(environment.Parse(cfg.Env)),
		api.WithParser(useragent.NewParser(cfg.ParserCacheSize)),
		api.WithSessions(sessionlog.NewService(store, sessionOpts...)),
		api.WithProbes(probes...),
		api.WithRequestTimeout(cfg.RequestTimeout),
	}
	if cfg.MaxBatchSize > 0 {
		apiOpts = append(apiOpts, api.WithMaxBatchSize(cfg.MaxBatchSize))
	}
	if cfg.RateLimitEnabled {
		limiter, err := ratelimiter.NewBucket(limiterStore, cfg.RateLimit)
		if err != nil {
			a.Close()
			return nil, err
		}
		apiOpts = append(apiOpts, api.WithRateLimiter(limiter))
	}

	a.handler = api.NewRouter(apiOpts...)
	a.server = httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(ctx context.Context, l *slog.Logger) {
			l.InfoContext(ctx, "session store ready", slog.String("store", a.storeName()))
		}),
	)
	return a, nil
}

// Handler returns the API router.
func (a *App) Handler() http.Handler { return a.handler }

// Run serves HTTP and releases the store connections when the server stops.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()
	return a.server.Run(ctx, a.handler)
}

// Close releases store connections. It is safe to call more than once.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) storeName() string {
	return normalizeStore(a.cfg.SessionStore)
}

// connectStore opens the configured session backend. The rate limiter shares
// Redis when sessions live there and stays in memory otherwise.
func (a *App) connectStore(ctx context.Context) (sessionlog.Store, []httpserver.Probe, ratelimiter.Store, error) {
	switch name := a.storeName(); name {
	case StoreMemory:
		limiter := ratelimiter.NewMemoryStore()
		a.closers = append(a.closers, limiter.Close)
		return sessionlog.NewMemoryStore(), nil, limiter, nil

	case StoreRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, errors.Join(ErrStoreUnavailable, err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })

		store := sessionlog.NewRedisStore(client, sessionlog.WithTTL(a.cfg.SessionTTL))
		probe := httpserver.Probe{Name: "redis", Check: redis.Healthcheck(client)}
		return store, []httpserver.Probe{probe}, ratelimiter.NewRedisStore(client), nil

	case StorePostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, errors.Join(ErrStoreUnavailable, err)
		}
		a.closers = append(a.closers, pool.Close)

		if err := pg.Migrate(ctx, pool, cfg, sessionlog.Migrations, sessionlog.MigrationsDir, a.log); err != nil {
			return nil, nil, nil, err
		}

		limiter := ratelimiter.NewMemoryStore()
		a.closers = append(a.closers, limiter.Close)
		probe := httpserver.Probe{Name: "postgres", Check: pg.Healthcheck(pool)}
		return sessionlog.NewPostgresStore(pool), []httpserver.Probe{probe}, limiter, nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: unknown session store %q", ErrInvalidConfig, name)
	}
}
