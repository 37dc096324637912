package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeRunner fails the first failUntil attempts with err, then succeeds.
type fakeRunner struct {
	attempts  int
	failUntil int
	err       error
	lastOpts  *sql.TxOptions
}

func (r *fakeRunner) RunInTx(ctx context.Context, opts *sql.TxOptions, fn TxFunc) error {
	r.attempts++
	r.lastOpts = opts
	if r.attempts <= r.failUntil {
		return r.err
	}
	return fn(nil)
}

func newTestUOW(runner txRunner) *UnitOfWork {
	return &UnitOfWork{runner: runner, log: zap.NewNop(), backoff: time.Millisecond}
}

func serializationErr() error {
	return &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
}

func TestUnitOfWorkCommitsFirstAttempt(t *testing.T) {
	runner := &fakeRunner{}
	uow := newTestUOW(runner)

	called := 0
	err := uow.ExecuteInTransaction(context.Background(), func(tx *gorm.DB) error {
		called++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, runner.attempts)
	assert.Equal(t, 1, called)
}

func TestUnitOfWorkRetriesSerializationFailure(t *testing.T) {
	runner := &fakeRunner{failUntil: 2, err: serializationErr()}
	uow := newTestUOW(runner)

	err := uow.ExecuteInTransaction(context.Background(), func(tx *gorm.DB) error {
		return nil
	}, WithRetryCount(3))
	require.NoError(t, err)
	assert.Equal(t, 3, runner.attempts)
}

func TestUnitOfWorkExhaustsRetries(t *testing.T) {
	serErr := serializationErr()
	runner := &fakeRunner{failUntil: 10, err: serErr}
	uow := newTestUOW(runner)

	err := uow.ExecuteInTransaction(context.Background(), func(tx *gorm.DB) error {
		return nil
	}, WithRetryCount(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, serErr)
	// first attempt plus two retries
	assert.Equal(t, 3, runner.attempts)
}

func TestUnitOfWorkDoesNotRetryByDefault(t *testing.T) {
	runner := &fakeRunner{failUntil: 1, err: serializationErr()}
	uow := newTestUOW(runner)

	err := uow.ExecuteInTransaction(context.Background(), func(tx *gorm.DB) error {
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 1, runner.attempts)
}

func TestUnitOfWorkDoesNotRetryOtherErrors(t *testing.T) {
	boom := fmt.Errorf("constraint violation")
	runner := &fakeRunner{failUntil: 10, err: boom}
	uow := newTestUOW(runner)

	err := uow.ExecuteInTransaction(context.Background(), func(tx *gorm.DB) error {
		return nil
	}, WithRetryCount(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, runner.attempts)
}

func TestUnitOfWorkCancelledDuringBackoff(t *testing.T) {
	runner := &fakeRunner{failUntil: 10, err: serializationErr()}
	uow := newTestUOW(runner)
	uow.backoff = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- uow.ExecuteInTransaction(ctx, func(tx *gorm.DB) error {
			return nil
		}, WithRetryCount(5))
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, runner.attempts)
	case <-time.After(5 * time.Second):
		t.Fatal("unit of work did not observe cancellation")
	}
}

func TestUnitOfWorkIsolationOption(t *testing.T) {
	runner := &fakeRunner{}
	uow := newTestUOW(runner)

	err := uow.ExecuteInTransaction(context.Background(), func(tx *gorm.DB) error {
		return nil
	}, WithIsolation(sql.LevelSerializable))
	require.NoError(t, err)
	require.NotNil(t, runner.lastOpts)
	assert.Equal(t, sql.LevelSerializable, runner.lastOpts.Isolation)
}

func TestUnitOfWorkDefaultIsolation(t *testing.T) {
	runner := &fakeRunner{}
	uow := newTestUOW(runner)

	err := uow.ExecuteInTransaction(context.Background(), func(tx *gorm.DB) error {
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, runner.lastOpts)
	assert.Equal(t, sql.LevelReadCommitted, runner.lastOpts.Isolation)
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pg serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"mysql deadlock", &mysqldrv.MySQLError{Number: 1213}, true},
		{"mysql lock wait timeout", &mysqldrv.MySQLError{Number: 1205}, true},
		{"mysql duplicate entry", &mysqldrv.MySQLError{Number: 1062}, false},
		{"wrapped pg error", fmt.Errorf("tx failed: %w", &pgconn.PgError{Code: "40001"}), true},
		{"message fallback serialization", errors.New("could not complete: serialization conflict"), true},
		{"message fallback deadlock", errors.New("deadlock detected"), true},
		{"plain error", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}
