package useragent

import "context"

type contextKey struct{}

// WithContext stores a parsed user agent in ctx.
func WithContext(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, contextKey{}, ua)
}

// FromContext returns the user agent stored by Middleware.
func FromContext(ctx context.Context) (UserAgent, bool) {
	if ctx == nil {
		return UserAgent{}, false
	}
	ua, ok := ctx.Value(contextKey{}).(UserAgent)
	return ua, ok
}

// MustFromContext is FromContext returning ErrNoUserAgent when nothing was stored.
func MustFromContext(ctx context.Context) (UserAgent, error) {
	ua, ok := FromContext(ctx)
	if !ok {
		return UserAgent{}, ErrNoUserAgent
	}
	return ua, nil
}
