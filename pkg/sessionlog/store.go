package sessionlog

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Store persists sessions.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, s *Session) error

	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Session, error)

	// Touch records activity: the access time and any non-empty metadata.
	Touch(ctx context.Context, id uuid.UUID, meta Metadata, at time.Time) error

	// ListByUser returns the user's sessions, most recently accessed first.
	ListByUser(ctx context.Context, userID string) ([]Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// sortByAccess orders sessions most recently accessed first, breaking ties by
// creation time and then ID so listings are deterministic.
func sortByAccess(sessions []Session) {
	slices.SortStableFunc(sessions, func(a, b Session) int {
		if c := b.AccessedAt.Compare(a.AccessedAt); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
}
