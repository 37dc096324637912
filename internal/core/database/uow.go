package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultRetryBackoff = 500 * time.Millisecond

// TxFunc runs inside a transaction; tx is the transaction-scoped handle.
type TxFunc func(tx *gorm.DB) error

// TxManager executes a unit of work in a single database transaction with
// bounded automatic retry on serialization conflict.
type TxManager interface {
	ExecuteInTransaction(ctx context.Context, fn TxFunc, opts ...TxOption) error
}

type txOptions struct {
	isolation  sql.IsolationLevel
	retryCount int
}

type TxOption func(*txOptions)

// WithIsolation overrides the transaction isolation level (default read committed).
func WithIsolation(level sql.IsolationLevel) TxOption {
	return func(o *txOptions) { o.isolation = level }
}

// WithRetryCount allows up to n retries after the first attempt (default 0).
func WithRetryCount(n int) TxOption {
	return func(o *txOptions) {
		if n > 0 {
			o.retryCount = n
		}
	}
}

// txRunner is the begin/act/commit-or-rollback primitive under the retry loop.
type txRunner interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, fn TxFunc) error
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) RunInTx(ctx context.Context, opts *sql.TxOptions, fn TxFunc) error {
	tx := r.db.WithContext(ctx).Begin(opts)
	if tx.Error != nil {
		return tx.Error
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	// A cancellation that fired mid-action must not slip into a commit.
	if err := ctx.Err(); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// UnitOfWork wraps caller-supplied work in a transaction. Every failed attempt
// is rolled back and its staged state discarded; only a serialization-conflict
// class of errors is retried, after a fixed backoff, each retry on a fresh
// transaction. The retry counter is per call.
type UnitOfWork struct {
	runner  txRunner
	log     *zap.Logger
	backoff time.Duration
}

func NewUnitOfWork(db *gorm.DB, log *zap.Logger) *UnitOfWork {
	return &UnitOfWork{
		runner:  gormTxRunner{db: db},
		log:     log,
		backoff: defaultRetryBackoff,
	}
}

func (u *UnitOfWork) ExecuteInTransaction(ctx context.Context, fn TxFunc, opts ...TxOption) error {
	o := txOptions{isolation: sql.LevelReadCommitted}
	for _, opt := range opts {
		opt(&o)
	}

	retries := 0
	for {
		err := u.runner.RunInTx(ctx, &sql.TxOptions{Isolation: o.isolation}, fn)
		if err == nil {
			return nil
		}
		if !IsSerializationFailure(err) || retries >= o.retryCount {
			return err
		}
		retries++
		u.log.Warn("transaction conflict, retrying",
			zap.Int("attempt", retries),
			zap.Int("retry_count", o.retryCount),
			zap.Error(err),
		)
		select {
		case <-time.After(u.backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// IsSerializationFailure classifies err as the retryable concurrent-modification
// class: PostgreSQL 40001 (serialization failure) and 40P01 (deadlock), MySQL
// 1213 (deadlock) and 1205 (lock wait timeout). Wrapped errors are unwrapped;
// drivers that surface the condition only as text fall through to a message check.
func IsSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1213 || myErr.Number == 1205
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "serialization") || strings.Contains(msg, "deadlock")
}
