package persistence

import (
	"context"
	"time"
)

// VaultLockRepository defines methods for managing advisory vault locks.
// The lock table serializes withdrawal processing on one vault across
// service replicas; within a replica the withdraw queue already does so.
type VaultLockRepository interface {
	// AcquireLock attempts to acquire a lock on the vault for withdrawal
	// processing. The lock expires after the given duration so a crashed
	// holder cannot freeze the vault forever.
	//
	// Possible errors:
	// - ErrVaultBusy: If vault is already locked by another process
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, vaultID string, duration time.Duration) error

	// ReleaseLock releases a previously acquired lock
	// This should be called after withdrawal processing completes
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ReleaseLock(ctx context.Context, vaultID string) error
}
