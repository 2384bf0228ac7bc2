package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/timelocked/vault-service/internal/domain/entity"
	errs "github.com/timelocked/vault-service/internal/domain/error"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VaultRepository implements VaultRepository interface using GORM
type VaultRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewVaultRepository creates a new VaultRepository instance
func NewVaultRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *VaultRepository {
	return &VaultRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a vault model to an entity
func (r *VaultRepository) modelToEntity(vaultModel *model.Vault) *entity.Vault {
	return entity.RestoreVault(
		vaultModel.ID,
		vaultModel.Owner,
		vaultModel.UnlockTime,
		vaultModel.Balance,
		vaultModel.CreatedAt,
		vaultModel.UpdatedAt,
		vaultModel.WithdrawalCount,
	)
}

// entityToModel converts a vault entity to a database model
func (r *VaultRepository) entityToModel(vault *entity.Vault) model.Vault {
	return model.Vault{
		ID:              vault.ID,
		Owner:           vault.Owner,
		UnlockTime:      vault.UnlockTime,
		Balance:         vault.Balance(),
		CreatedAt:       vault.CreatedAt,
		UpdatedAt:       vault.UpdatedAt,
		WithdrawalCount: vault.WithdrawalCount,
	}
}

// handleDatabaseError standardizes database error handling
func (r *VaultRepository) handleDatabaseError(operation string, err error, vaultID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"vault_id": vaultID,
		"error":    err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Vault not found", map[string]any{
			"vault_id": vaultID,
		})
		return errs.ErrVaultNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate vault operation", map[string]any{
			"vault_id": vaultID,
		})
		return errs.ErrDuplicateVault
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Vault is locked by another withdrawal", map[string]any{
			"vault_id": vaultID,
			"error":    err.Error(),
		})
		return errs.ErrVaultBusy
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a vault by its reference
func (r *VaultRepository) GetByID(ctx context.Context, id string) (*entity.Vault, error) {
	r.logger.Debug("Getting vault by ID", map[string]any{
		"vault_id": id,
	})

	var vaultModel model.Vault
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&vaultModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting vault", result.Error, id)
	}

	vault := r.modelToEntity(&vaultModel)

	r.logger.Debug("Vault retrieved successfully", map[string]any{
		"vault_id":         id,
		"balance":          vault.GetBalance(),
		"withdrawal_count": vault.WithdrawalCount,
		"last_updated":     vault.UpdatedAt,
	})

	return vault, nil
}

// GetByIDForUpdate retrieves a vault and takes a FOR UPDATE row lock on it.
// The lock is held until the surrounding transaction ends, so this must run
// inside a unit-of-work context.
func (r *VaultRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Vault, error) {
	r.logger.Debug("Getting vault by ID with row lock", map[string]any{
		"vault_id": id,
	})

	var vaultModel model.Vault
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&vaultModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking vault", result.Error, id)
	}

	return r.modelToEntity(&vaultModel), nil
}

// Create persists a newly deployed vault
func (r *VaultRepository) Create(ctx context.Context, vault *entity.Vault) error {
	r.logger.Debug("Creating new vault", map[string]any{
		"vault_id":    vault.ID,
		"owner":       vault.Owner,
		"unlock_time": vault.UnlockTime,
		"balance":     vault.GetBalance(),
	})

	vaultModel := r.entityToModel(vault)

	result := r.db.WithContext(ctx).Create(&vaultModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating vault", result.Error, vault.ID)
	}

	r.logger.Info("Vault created successfully", map[string]any{
		"vault_id":    vault.ID,
		"owner":       vault.Owner,
		"unlock_time": vault.UnlockTime,
		"balance":     vault.GetBalance(),
	})
	return nil
}

// Update persists vault state changes (balance, withdrawal count)
func (r *VaultRepository) Update(ctx context.Context, vault *entity.Vault) error {
	r.logger.Debug("Updating vault", map[string]any{
		"vault_id":         vault.ID,
		"balance":          vault.GetBalance(),
		"withdrawal_count": vault.WithdrawalCount,
	})

	result := r.db.WithContext(ctx).Model(&model.Vault{}).
		Where("id = ?", vault.ID).
		Updates(map[string]interface{}{
			"balance":          vault.Balance(),
			"updated_at":       vault.UpdatedAt,
			"withdrawal_count": vault.WithdrawalCount,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating vault", result.Error, vault.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Vault not found during update", map[string]any{
			"vault_id": vault.ID,
		})
		return errs.ErrVaultNotFound
	}

	r.logger.Info("Vault updated successfully", map[string]any{
		"vault_id":         vault.ID,
		"balance":          vault.GetBalance(),
		"withdrawal_count": vault.WithdrawalCount,
	})
	return nil
}

// Exists checks if a vault with the given reference exists
func (r *VaultRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.logger.Debug("Checking if vault exists", map[string]any{
		"vault_id": id,
	})

	var count int64
	result := r.db.WithContext(ctx).Model(&model.Vault{}).
		Where("id = ?", id).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to check vault existence", map[string]any{
			"vault_id": id,
			"error":    result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	exists := count > 0
	r.logger.Debug("Vault existence check completed", map[string]any{
		"vault_id": id,
		"exists":   exists,
	})
	return exists, nil
}
