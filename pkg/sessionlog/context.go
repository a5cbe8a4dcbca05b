package sessionlog

import (
	"context"

	"github.com/google/uuid"
)

type currentKey struct{}

// WithCurrent marks id as the session making the request.
func WithCurrent(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, currentKey{}, id)
}

// CurrentFromContext returns the session stored by WithCurrent.
func CurrentFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(currentKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
