package persistence

import (
	"context"

	"github.com/timelocked/vault-service/internal/domain/entity"
)

// WithdrawalRepository defines essential methods to interact with withdrawal receipts
type WithdrawalRepository interface {
	// Create saves a withdrawal receipt. Called inside the same unit-of-work
	// transaction that zeroes the vault balance, so a receipt is only ever
	// visible together with its balance change.
	//
	// Possible errors:
	// - ErrVaultNotFound: If referenced vault does not exist
	// - ErrConstraintViolation: If receipt data violates a constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, withdrawal *entity.Withdrawal) error

	// GetByWithdrawalID retrieves a withdrawal by its reference
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: If withdrawal with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByWithdrawalID(ctx context.Context, withdrawalID string) (*entity.Withdrawal, error)

	// ListByVault retrieves all withdrawals recorded for a vault, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByVault(ctx context.Context, vaultID string) ([]*entity.Withdrawal, error)
}
