package sessionlog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Service records login sessions and lists them with parsed device details.
type Service struct {
	store            Store
	log              *slog.Logger
	now              func() time.Time
	checkFingerprint bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for session events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("WithClock: nil clock")
	}
	return func(s *Service) { s.now = now }
}

// WithFingerprintCheck makes Touch reject requests whose fingerprint differs
// from the one recorded for the session.
func WithFingerprintCheck() Option {
	return func(s *Service) { s.checkFingerprint = true }
}

// NewService creates a Service backed by store.
func NewService(store Store, opts ...Option) *Service {
	if store == nil {
		panic("sessionlog: nil store")
	}
	s := &Service{
		store: store,
		log:   logger.Noop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens a new session for userID from the request metadata.
func (s *Service) Start(ctx context.Context, userID string, meta Metadata) (*Session, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if meta.UserAgent == "" {
		meta.UserAgent = UnknownUserAgent
	}

	now := s.now().UTC()
	sess := &Session{
		ID:          uuid.New(),
		UserID:      userID,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
		Fingerprint: meta.Fingerprint,
		CreatedAt:   now,
		AccessedAt:  now,
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session started",
		logger.SessionID(sess.ID.String()),
		logger.UserID(userID),
		logger.Device(useragent.Parse(sess.UserAgent).Display),
		logger.IPAddress(sess.IPAddress),
	)
	return sess, nil
}

// Touch records activity on a session.
func (s *Service) Touch(ctx context.Context, id uuid.UUID, meta Metadata) error {
	if id == uuid.Nil {
		return ErrInvalidSession
	}
	if s.checkFingerprint && meta.Fingerprint != "" {
		sess, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}
		if sess.Fingerprint != "" && sess.Fingerprint != meta.Fingerprint {
			s.log.WarnContext(ctx, "session fingerprint mismatch",
				logger.SessionID(id.String()),
				logger.UserID(sess.UserID),
				logger.IPAddress(meta.IPAddress),
			)
			return ErrInvalidSession
		}
	}
	return s.store.Touch(ctx, id, meta, s.now().UTC())
}

// Get returns a single session view.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (View, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	current, _ := CurrentFromContext(ctx)
	return newView(*sess, current), nil
}

// List returns the user's sessions, most recently used first. The session
// marked with WithCurrent in ctx is flagged as current.
func (s *Service) List(ctx context.Context, userID string) ([]View, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	sessions, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	current, _ := CurrentFromContext(ctx)
	views := make([]View, len(sessions))
	for i, sess := range sessions {
		views[i] = newView(sess, current)
	}
	return views, nil
}

// End deletes a session. Ending an unknown session returns ErrSessionNotFound.
func (s *Service) End(ctx context.Context, id uuid.UUID) error {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "session ended",
		logger.SessionID(id.String()),
		logger.UserID(sess.UserID),
	)
	return nil
}

// EndOthers deletes every session of userID except keep and returns how many
// were removed.
func (s *Service) EndOthers(ctx context.Context, userID string, keep uuid.UUID) (int, error) {
	if userID == "" {
		return 0, ErrInvalidUserID
	}
	sessions, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	var errs []error
	removed := 0
	for _, sess := range sessions {
		if sess.ID == keep {
			continue
		}
		if err := s.store.Delete(ctx, sess.ID); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.log.InfoContext(ctx, "other sessions ended", logger.UserID(userID), logger.Count(removed))
	}
	return removed, errors.Join(errs...)
}
