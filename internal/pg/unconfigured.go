package pg

import (
	"context"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unconfigured stands in for the database when credentials are missing.
// Every call fails with domain.ErrNotConfigured without any network I/O.
type Unconfigured struct{}

func (Unconfigured) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, domain.ErrNotConfigured
}

func (Unconfigured) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, domain.ErrNotConfigured
}

func (Unconfigured) QueryRow(context.Context, string, ...any) pgx.Row {
	return unconfiguredRow{}
}

func (Unconfigured) Begin(context.Context, TransactionalFn) error {
	return domain.ErrNotConfigured
}

type unconfiguredRow struct{}

func (unconfiguredRow) Scan(...any) error {
	return domain.ErrNotConfigured
}
