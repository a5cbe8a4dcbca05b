package sessionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a JSON string and indexes a user's
// sessions in a sorted set scored by access time in milliseconds.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix namespaces every key. The default is "uakit:".
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = prefix }
}

// WithTTL expires sessions that have not been touched for ttl.
// Zero keeps sessions until they are deleted.
func WithTTL(ttl time.Duration) RedisOption {
	if ttl < 0 {
		panic("WithTTL: ttl must be >= 0")
	}
	return func(s *RedisStore) { s.ttl = ttl }
}

// NewRedisStore creates a store on top of client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: "uakit:"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (r *RedisStore) sessionKey(id uuid.UUID) string {
	return r.prefix + "session:" + id.String()
}

func (r *RedisStore) userKey(userID string) string {
	return r.prefix + "user_sessions:" + userID
}

func score(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func (r *RedisStore) write(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.sessionKey(s.ID), data, r.ttl)
		pipe.ZAdd(ctx, r.userKey(s.UserID), redis.Z{Score: score(s.AccessedAt), Member: s.ID.String()})
		if r.ttl > 0 {
			pipe.Expire(ctx, r.userKey(s.UserID), r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	n, err := r.client.Exists(ctx, r.sessionKey(s.ID)).Result()
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if n > 0 {
		return ErrInvalidSession
	}
	return r.write(ctx, s)
}

func (r *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}
	return &s, nil
}

func (r *RedisStore) Touch(ctx context.Context, id uuid.UUID, meta Metadata, at time.Time) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	s.apply(meta, at)
	return r.write(ctx, s)
}

func (r *RedisStore) ListByUser(ctx context.Context, userID string) ([]Session, error) {
	key := r.userKey(userID)
	members, err := r.client.ZRevRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if len(members) == 0 {
		return []Session{}, nil
	}

	var stale []any
	indexed := make([]string, 0, len(members))
	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			stale = append(stale, m)
			continue
		}
		indexed = append(indexed, m)
		keys = append(keys, r.sessionKey(id))
	}
	if len(keys) == 0 {
		_ = r.client.ZRem(ctx, key, stale...).Err()
		return []Session{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	out := make([]Session, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Expired or deleted behind the index.
			stale = append(stale, indexed[i])
			continue
		}
		var s Session
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			stale = append(stale, indexed[i])
			continue
		}
		out = append(out, s)
	}
	if len(stale) > 0 {
		_ = r.client.ZRem(ctx, key, stale...).Err()
	}

	sortByAccess(out)
	return out, nil
}

func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	s, err := r.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.sessionKey(id))
		pipe.ZRem(ctx, r.userKey(s.UserID), id.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Count returns the number of indexed sessions for userID.
func (r *RedisStore) Count(ctx context.Context, userID string) (int, error) {
	n, err := r.client.ZCard(ctx, r.userKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return int(n), nil
}

