package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uakit/pkg/clientip"
	"github.com/dmitrymomot/uakit/pkg/environment"
	"github.com/dmitrymomot/uakit/pkg/handler"
	"github.com/dmitrymomot/uakit/pkg/httpserver"
	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/ratelimiter"
	"github.com/dmitrymomot/uakit/pkg/requestid"
	"github.com/dmitrymomot/uakit/pkg/sessionlog"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// DefaultMaxBatchSize caps POST /v1/useragent/batch.
const DefaultMaxBatchSize = 100

// Option configures the router.
type Option func(*api)

type api struct {
	log          *slog.Logger
	env          environment.Environment
	parser       *useragent.Parser
	sessions     *sessionlog.Service
	limiter      ratelimiter.Limiter
	probes       []httpserver.Probe
	maxBatchSize int
	timeout      time.Duration
	onError      handler.ErrorHandler
}

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *api) {
		if l != nil {
			a.log = l
		}
	}
}

// WithEnvironment stores env in every request context.
func WithEnvironment(env environment.Environment) Option {
	return func(a *api) { a.env = env }
}

// WithParser replaces the default memoizing parser.
func WithParser(p *useragent.Parser) Option {
	return func(a *api) {
		if p != nil {
			a.parser = p
		}
	}
}

// WithSessions mounts the session routes backed by svc.
func WithSessions(svc *sessionlog.Service) Option {
	return func(a *api) { a.sessions = svc }
}

// WithRateLimiter limits the parse routes per client IP.
func WithRateLimiter(l ratelimiter.Limiter) Option {
	return func(a *api) { a.limiter = l }
}

// WithProbes adds readiness checks to /health/ready.
func WithProbes(probes ...httpserver.Probe) Option {
	return func(a *api) { a.probes = append(a.probes, probes...) }
}

// WithMaxBatchSize sets the batch parse limit. It panics if n is not positive.
func WithMaxBatchSize(n int) Option {
	if n <= 0 {
		panic("api: batch size must be positive")
	}
	return func(a *api) { a.maxBatchSize = n }
}

// WithRequestTimeout bounds the handling time of every request.
func WithRequestTimeout(d time.Duration) Option {
	return func(a *api) { a.timeout = d }
}

// NewRouter builds the HTTP API.
func NewRouter(opts ...Option) http.Handler {
	a := &api{
		log:          logger.Noop(),
		env:          environment.Development,
		parser:       useragent.NewParser(useragent.DefaultCacheSize),
		maxBatchSize: DefaultMaxBatchSize,
		timeout:      30 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.onError = a.errorHandler()

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(useragent.Middleware)
	r.Use(environment.Middleware(a.env))
	r.Use(requestLogger(a.log))
	if a.timeout > 0 {
		r.Use(chimw.Timeout(a.timeout))
	}

	r.NotFound(a.renderError(handler.ErrNotFound))
	r.MethodNotAllowed(a.renderError(handler.ErrMethodNotAllowed))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(a.log, a.probes...))

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if a.limiter != nil {
				r.Use(ratelimiter.Middleware(a.limiter, ratelimiter.ByClientIP(),
					ratelimiter.WithLogger(a.log),
					ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
						a.renderError(handler.ErrTooManyRequests)(w, r)
					}),
				))
			}
			r.Get("/useragent", a.parseOwn())
			r.Post("/useragent", a.parseOne())
			r.Post("/useragent/batch", a.parseBatch())
		})

		if a.sessions != nil {
			r.Route("/users/{userID}/sessions", func(r chi.Router) {
				r.Get("/", a.listSessions())
				r.Post("/", a.startSession())
				r.Delete("/", a.endOtherSessions())
			})
			r.Route("/sessions/{sessionID}", func(r chi.Router) {
				r.Get("/", a.getSession())
				r.Post("/touch", a.touchSession())
				r.Delete("/", a.endSession())
			})
		}
	})

	return r
}

func (a *api) errorHandler() handler.ErrorHandler {
	render := handler.JSONErrorHandler(a.log)
	return func(w http.ResponseWriter, r *http.Request, err error) {
		render(w, r, mapError(err))
	}
}

func (a *api) renderError(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { a.onError(w, r, err) }
}

// errorResponse defers rendering to the router's error handler so that
// server errors returned by handlers are logged.
type errorResponse struct {
	render handler.ErrorHandler
	err    error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	e.render(w, r, e.err)
	return nil
}

func (a *api) fail(err error) handler.Response {
	return errorResponse{render: a.onError, err: err}
}
