package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"

	maxAttempts = 4
	baseBackoff = 100 * time.Millisecond
)

var (
	errTxBegin     = errs.New("failed to begin transaction")
	errTxCommit    = errs.New("failed to commit transaction")
	errTxExhausted = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted plus the room-type row lock taken by the booking repository
// is what shields the count-then-insert sequence; the retry loop covers
// deadlocks between admissions locking in opposite order.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil || !retryable(err) {
			return err
		}
		if attempt == maxAttempts {
			break
		}

		wait := backoff(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.Error("transaction gave up", "attempts", maxAttempts, "error", err.Error())
	return errs.Mark(err, errTxExhausted)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, d db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTxBegin)
	}

	if err = fn(ctx, tx); err == nil {
		if err = tx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTxCommit)
	}

	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

// exponential backoff with up to 20% jitter
func backoff(attempt int) time.Duration {
	wait := time.Duration(1<<(attempt-1)) * baseBackoff
	return wait + rand.N(wait/5)
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}
