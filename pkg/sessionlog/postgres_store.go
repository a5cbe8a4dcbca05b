package sessionlog

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/uakit/pkg/pg"
)

// Migrations holds the goose migrations for PostgresStore, rooted at
// MigrationsDir.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that goose reads.
const MigrationsDir = "migrations"

const sessionColumns = `id, user_id, ip_address, user_agent, fingerprint, created_at, accessed_at`

// PostgresStore keeps sessions in the sessions table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store on top of pool. The schema must already be
// migrated with pg.Migrate(ctx, pool, cfg, Migrations, MigrationsDir, log).
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Create(ctx context.Context, s *Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO sessions (`+sessionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.UserID, s.IPAddress, s.UserAgent, s.Fingerprint, s.CreatedAt, s.AccessedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrInvalidSession
	}
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if pg.IsNotFoundError(err) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

func (p *PostgresStore) Touch(ctx context.Context, id uuid.UUID, meta Metadata, at time.Time) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE sessions SET
			accessed_at = $2,
			ip_address  = COALESCE(NULLIF($3, ''), ip_address),
			user_agent  = COALESCE(NULLIF($4, ''), user_agent),
			fingerprint = COALESCE(NULLIF($5, ''), fingerprint)
		WHERE id = $1`,
		id, at, meta.IPAddress, meta.UserAgent, meta.Fingerprint,
	)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (p *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Session, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE user_id = $1
		ORDER BY accessed_at DESC, created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Session, error) {
		return scanSession(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

func (p *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func scanSession(row pgx.Row) (Session, error) {
	var s Session
	err := row.Scan(&s.ID, &s.UserID, &s.IPAddress, &s.UserAgent, &s.Fingerprint, &s.CreatedAt, &s.AccessedAt)
	return s, err
}
