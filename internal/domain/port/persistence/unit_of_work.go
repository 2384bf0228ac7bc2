package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating operations across
// multiple repositories inside one database transaction, so a withdrawal's
// balance change and its receipt commit or roll back together
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetVaultRepository returns a vault repository bound to the current transaction
	GetVaultRepository(ctx context.Context) VaultRepository

	// GetWithdrawalRepository returns a withdrawal repository bound to the current transaction
	GetWithdrawalRepository(ctx context.Context) WithdrawalRepository
}
