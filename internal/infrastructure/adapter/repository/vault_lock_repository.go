package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/timelocked/vault-service/internal/domain/error"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// VaultLockRepository implements vault locking functionality using GORM.
// The lock row keeps withdrawals on one vault serialized across service
// replicas; within a single replica the withdraw queue already does that.
type VaultLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewVaultLockRepository creates a new VaultLockRepository instance
func NewVaultLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *VaultLockRepository {
	return &VaultLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock attempts to acquire a lock on the vault for withdrawal
// processing. The lock carries an expiry so a crashed holder cannot freeze
// the vault forever.
func (r *VaultLockRepository) AcquireLock(ctx context.Context, vaultID string, duration time.Duration) error {
	r.logger.Debug("Attempting to acquire vault lock", map[string]any{
		"vault_id": vaultID,
		"duration": duration.String(),
	})

	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	// Insert or steal an expired lock in a single statement. The WHERE on
	// the conflict branch means a live lock is never overwritten.
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO vault_locks (vault_id, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (vault_id) DO UPDATE
		SET locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE vault_locks.expires_at <= ?`,
		vaultID, now, expiresAt, now, now, // INSERT values
		now, // WHERE condition for the ON CONFLICT clause
	)

	if err := result.Error; err != nil {
		// A unique violation can still surface when two inserts race
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Vault is already locked", map[string]any{
				"vault_id": vaultID,
			})
			return errs.ErrVaultBusy
		}

		if isContextError(err) {
			r.logger.Warn("Context timeout acquiring vault lock", map[string]any{
				"vault_id": vaultID,
				"error":    err.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", err)
		}

		r.logger.Error("Database error acquiring vault lock", map[string]any{
			"vault_id": vaultID,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	// Zero affected rows means the conflict branch found a live lock
	if result.RowsAffected == 0 {
		r.logger.Warn("Vault is already locked", map[string]any{
			"vault_id": vaultID,
		})
		return errs.ErrVaultBusy
	}

	r.logger.Info("Vault lock acquired successfully", map[string]any{
		"vault_id":   vaultID,
		"locked_at":  now,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock releases a previously acquired lock
func (r *VaultLockRepository) ReleaseLock(ctx context.Context, vaultID string) error {
	r.logger.Debug("Releasing vault lock", map[string]any{
		"vault_id": vaultID,
	})

	// Check first so "lock wasn't there" and "delete failed" stay
	// distinguishable
	var lock model.VaultLock
	findResult := r.db.WithContext(ctx).Where("vault_id = ?", vaultID).First(&lock)

	if errors.Is(findResult.Error, gorm.ErrRecordNotFound) {
		r.logger.Debug("No vault lock found to release - may have already expired", map[string]any{
			"vault_id": vaultID,
		})
		return nil
	}

	if findResult.Error != nil && !isContextError(findResult.Error) {
		r.logger.Error("Error checking vault lock status", map[string]any{
			"vault_id": vaultID,
			"error":    findResult.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, findResult.Error.Error())
	}

	result := r.db.WithContext(ctx).Where("vault_id = ?", vaultID).Delete(&model.VaultLock{})

	// On context timeout the lock will expire on its own, so don't treat
	// that as critical
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing vault lock, lock will expire automatically", map[string]any{
			"vault_id": vaultID,
			"error":    result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release vault lock", map[string]any{
			"vault_id": vaultID,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Vault lock released successfully", map[string]any{
			"vault_id": vaultID,
		})
	}

	return nil
}

// CleanupExpiredLocks removes all expired vault locks from the database
func (r *VaultLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	r.logger.Debug("Cleaning up expired vault locks", map[string]any{
		"current_time": now,
	})

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.VaultLock{})

	if result.Error != nil {
		r.logger.Error("Failed to clean up expired vault locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired vault locks cleanup completed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
