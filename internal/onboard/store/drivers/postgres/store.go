package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// Queryer is implemented by pgxpool.Pool, pgx.Tx and pgxmock.
type Queryer interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// Pool is the subset of pgxpool.Pool the store needs.
type Pool interface {
	Queryer
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type Config struct {
	URL      string
	MaxConns int
}

type Store struct {
	pool Pool
	url  string
}

// NewPool builds a pgxpool and verifies connectivity.
func NewPool(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return pool, nil
}

func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool, url: cfg.URL}, nil
}

// NewStoreWithPool wraps an existing pool. ApplyMigrations needs url.
func NewStoreWithPool(pool Pool, url string) *Store {
	return &Store{pool: pool, url: url}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadWrite})
	if err != nil {
		return nil, fmt.Errorf("postgres: begin tx: %w", err)
	}
	return &txStore{ctx: ctx, tx: tx}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("postgres: rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func (s *Store) Companies() store.Companies             { return &companiesRepo{q: s.pool} }
func (s *Store) Actors() store.Actors                   { return &actorsRepo{q: s.pool} }
func (s *Store) Employees() store.Employees             { return &employeesRepo{q: s.pool} }
func (s *Store) Tasks() store.Tasks                     { return &tasksRepo{q: s.pool} }
func (s *Store) Assignments() store.Assignments         { return &assignmentsRepo{q: s.pool} }
func (s *Store) Invitations() store.Invitations         { return &invitationsRepo{q: s.pool} }
func (s *Store) RoleAssignments() store.RoleAssignments { return &roleAssignmentsRepo{q: s.pool} }

type txStore struct {
	ctx context.Context
	tx  pgx.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit(t.ctx) }
func (t *txStore) Rollback() error { return t.tx.Rollback(t.ctx) }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error         { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, pgx.ErrTxClosed
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return pgx.ErrTxClosed
}

func (t *txStore) Companies() store.Companies             { return &companiesRepo{q: t.tx} }
func (t *txStore) Actors() store.Actors                   { return &actorsRepo{q: t.tx} }
func (t *txStore) Employees() store.Employees             { return &employeesRepo{q: t.tx} }
func (t *txStore) Tasks() store.Tasks                     { return &tasksRepo{q: t.tx} }
func (t *txStore) Assignments() store.Assignments         { return &assignmentsRepo{q: t.tx} }
func (t *txStore) Invitations() store.Invitations         { return &invitationsRepo{q: t.tx} }
func (t *txStore) RoleAssignments() store.RoleAssignments { return &roleAssignmentsRepo{q: t.tx} }

// translatePgError maps driver errors onto the store sentinels, keeping the
// original error in the chain for logs.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return errors.Join(store.ErrAlreadyExists, err)
		case foreignKeyViolationCode:
			return errors.Join(store.ErrNotFound, err)
		case checkViolationCode:
			return fmt.Errorf("postgres: check %s violated: %w", pgErr.ConstraintName, err)
		}
	}
	return err
}

func execOne(ctx context.Context, q Queryer, query string, args ...any) error {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return translatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func execCount(ctx context.Context, q Queryer, query string, args ...any) (int64, error) {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, translatePgError(err)
	}
	return tag.RowsAffected(), nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	v := nt.Time.UTC()
	return &v
}
