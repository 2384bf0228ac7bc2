package persistence

import (
	"context"

	"github.com/timelocked/vault-service/internal/domain/entity"
)

// VaultRepository defines essential methods to interact with vault data
type VaultRepository interface {
	// GetByID retrieves a vault by its reference
	// Used for the GET /vault/{vaultId} endpoint
	//
	// Possible errors:
	// - ErrVaultNotFound: If vault with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Vault, error)

	// GetByIDForUpdate retrieves a vault and takes a row lock on it.
	// Must be called inside a unit-of-work transaction; the lock is held
	// until that transaction ends. This is the read used by withdrawal
	// processing so concurrent withdrawals on one vault serialize.
	//
	// Possible errors:
	// - ErrVaultNotFound: If vault with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Vault, error)

	// Create persists a newly deployed vault
	//
	// Possible errors:
	// - ErrDuplicateVault: If vault with same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, vault *entity.Vault) error

	// Update persists vault state changes (balance, withdrawal count)
	//
	// Possible errors:
	// - ErrVaultNotFound: If vault doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, vault *entity.Vault) error

	// Exists checks if a vault with the given reference exists
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Exists(ctx context.Context, id string) (bool, error)
}
