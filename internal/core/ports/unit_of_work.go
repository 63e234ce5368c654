package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per catalog change.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups catalog writes into one transaction. Callers Begin, defer
// Rollback and Commit once the writes succeed. A deferred Rollback after Commit only
// reports that no transaction is open.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when Begin was not called.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// CatalogRepository writes through the open transaction, or directly to
	// the database when none is open.
	CatalogRepository() CatalogRepository
}
