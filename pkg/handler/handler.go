package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/uakit/pkg/logger"
)

// HandlerFunc handles a request already decoded into R.
type HandlerFunc[R any] func(r *http.Request, req R) Response

// Bind decodes part of an HTTP request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler renders binding, handler and rendering failures.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to
// WithDecorators is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []Bind
	errorHandler ErrorHandler
	decorators   []Decorator[R]
}

// WithBinders appends request binders, applied in order.
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) { c.binders = append(c.binders, binders...) }
}

// WithErrorHandler replaces the default JSON error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) { c.decorators = append(c.decorators, decorators...) }
}

// JSONErrorHandler renders errors with JSONError and logs server-side
// failures to log.
func JSONErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Noop()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		resp := JSONError(err).(*jsonResponse)
		if resp.status >= http.StatusInternalServerError {
			log.ErrorContext(r.Context(), "request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Error(err),
			)
		}
		if renderErr := resp.Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}

// Wrap adapts a typed handler to http.HandlerFunc.
//
//	mux.Post("/v1/useragent", handler.Wrap(parse,
//		handler.WithBinders[ParseRequest](binder.JSON()),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: JSONErrorHandler(nil)}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
		}

		resp := final(r, req)
		if resp == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}
