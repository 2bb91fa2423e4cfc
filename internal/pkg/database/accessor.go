package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
)

// Querier is the statement surface shared by the pool and a transaction.
// Queries are written with ? placeholders and rebound for the driver.
type Querier interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) (int64, error)
	// Insert runs an INSERT ... RETURNING id and returns the generated id.
	Insert(ctx context.Context, query string, args ...interface{}) (int64, error)
}

// Accessor executes parameterized statements on an injected pool.
// Every call is bounded by the configured timeout, classified, and retried
// on connectivity failures only.
type Accessor struct {
	db       *sqlx.DB
	timeout  time.Duration
	attempts uint
}

// Option configures an Accessor
type Option func(*Accessor)

// WithTimeout bounds each call (including connection acquisition).
func WithTimeout(d time.Duration) Option {
	return func(a *Accessor) { a.timeout = d }
}

// WithRetryAttempts sets the total number of tries for connectivity failures.
func WithRetryAttempts(n uint) Option {
	return func(a *Accessor) { a.attempts = n }
}

// NewAccessor creates an Accessor over db.
func NewAccessor(db *sqlx.DB, opts ...Option) *Accessor {
	a := &Accessor{db: db, timeout: 5 * time.Second, attempts: 3}
	for _, opt := range opts {
		opt(a)
	}
	if a.attempts == 0 {
		a.attempts = 1
	}
	return a
}

// DB exposes the underlying pool (health checks, shutdown).
func (a *Accessor) DB() *sqlx.DB {
	return a.db
}

func (a *Accessor) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return a.retry(ctx, func(ctx context.Context) error {
		return Classify(a.db.GetContext(ctx, dest, a.db.Rebind(query), args...))
	})
}

func (a *Accessor) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return a.retry(ctx, func(ctx context.Context) error {
		return Classify(a.db.SelectContext(ctx, dest, a.db.Rebind(query), args...))
	})
}

func (a *Accessor) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var affected int64
	err := a.retry(ctx, func(ctx context.Context) error {
		res, err := a.db.ExecContext(ctx, a.db.Rebind(query), args...)
		if err != nil {
			return Classify(err)
		}
		affected, err = res.RowsAffected()
		return Classify(err)
	})
	return affected, err
}

func (a *Accessor) Insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	err := a.retry(ctx, func(ctx context.Context) error {
		return Classify(a.db.QueryRowxContext(ctx, a.db.Rebind(query), args...).Scan(&id))
	})
	return id, err
}

// InTx runs fn inside one transaction: commit when fn returns nil, rollback otherwise.
// fn must run its statements on the ctx it is given, which carries the per-attempt deadline.
// The whole sequence is retried on connectivity failures; a failed commit is not.
// Errors returned by fn are passed through untouched.
func (a *Accessor) InTx(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	return a.retry(ctx, func(ctx context.Context) error {
		sqlTx, err := a.db.BeginTxx(ctx, nil)
		if err != nil {
			return Classify(err)
		}
		defer sqlTx.Rollback()

		if err := fn(ctx, &Tx{tx: sqlTx}); err != nil {
			return expiredTx(ctx, err)
		}
		if err := sqlTx.Commit(); err != nil {
			return backoff.Permanent(expiredTx(ctx, Classify(err)))
		}
		return nil
	})
}

// expiredTx reports a transaction that database/sql closed because its deadline
// passed as a connectivity failure.
func expiredTx(ctx context.Context, err error) error {
	if ctx.Err() == nil || errors.Is(err, ErrConnectivity) {
		return err
	}
	if errors.Is(err, sql.ErrTxDone) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrConnectivity, ctx.Err())
	}
	return err
}

func (a *Accessor) retry(ctx context.Context, op func(ctx context.Context) error) error {
	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		err := op(callCtx)
		var permanent *backoff.PermanentError
		switch {
		case err == nil:
			return struct{}{}, nil
		case errors.As(err, &permanent):
			return struct{}{}, err
		case errors.Is(err, ErrConnectivity) && ctx.Err() == nil:
			logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("Transient database failure")
			return struct{}{}, err
		default:
			return struct{}{}, backoff.Permanent(err)
		}
	},
		backoff.WithBackOff(newBackOff()),
		backoff.WithMaxTries(a.attempts),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	return b
}

// Tx is a Querier bound to an open transaction. Calls are not retried individually.
type Tx struct {
	tx *sqlx.Tx
}

func (t *Tx) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return Classify(t.tx.GetContext(ctx, dest, t.tx.Rebind(query), args...))
}

func (t *Tx) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return Classify(t.tx.SelectContext(ctx, dest, t.tx.Rebind(query), args...))
}

func (t *Tx) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := t.tx.ExecContext(ctx, t.tx.Rebind(query), args...)
	if err != nil {
		return 0, Classify(err)
	}
	n, err := res.RowsAffected()
	return n, Classify(err)
}

func (t *Tx) Insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	err := t.tx.QueryRowxContext(ctx, t.tx.Rebind(query), args...).Scan(&id)
	return id, Classify(err)
}

// IsNotFound reports whether err means the row lookup matched nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
