package shared

import (
	"context"

	"hotel-booking-api/internal/infra/db"
)

type UnitOfWork interface {
	// Within: read-committed transaction for write operations, retried on
	// serialization failures. Row locks taken inside fn hold until commit.
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, d db.DBTX) error) error
}
