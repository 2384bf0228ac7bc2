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
)

// WithdrawalRepository implements WithdrawalRepository interface using GORM
type WithdrawalRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWithdrawalRepository creates a new WithdrawalRepository instance
func NewWithdrawalRepository(db *gorm.DB, logger coreport.Logger) *WithdrawalRepository {
	return &WithdrawalRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a withdrawal entity to a database model
func (r *WithdrawalRepository) entityToModel(withdrawal *entity.Withdrawal) model.Withdrawal {
	return model.Withdrawal{
		VaultID:       withdrawal.VaultID,
		WithdrawalID:  withdrawal.WithdrawalID,
		Recipient:     withdrawal.Recipient,
		Amount:        withdrawal.Amount,
		AmountInCents: withdrawal.AmountInCents,
		CreatedAt:     withdrawal.CreatedAt,
		ProcessedAt:   withdrawal.ProcessedAt,
		ResultBalance: withdrawal.ResultBalance,
		Status:        string(withdrawal.Status),
	}
}

// modelToEntity converts a withdrawal model to an entity
func (r *WithdrawalRepository) modelToEntity(withdrawalModel *model.Withdrawal) *entity.Withdrawal {
	return &entity.Withdrawal{
		ID:            withdrawalModel.ID,
		VaultID:       withdrawalModel.VaultID,
		WithdrawalID:  withdrawalModel.WithdrawalID,
		Recipient:     withdrawalModel.Recipient,
		Amount:        withdrawalModel.Amount,
		AmountInCents: withdrawalModel.AmountInCents,
		CreatedAt:     withdrawalModel.CreatedAt,
		ProcessedAt:   withdrawalModel.ProcessedAt,
		ResultBalance: withdrawalModel.ResultBalance,
		Status:        entity.WithdrawalStatus(withdrawalModel.Status),
	}
}

// Create saves a withdrawal receipt. It runs inside the same unit-of-work
// transaction that zeroes the vault balance.
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *entity.Withdrawal) error {
	r.logger.Debug("Creating withdrawal receipt", map[string]any{
		"withdrawal_id": withdrawal.WithdrawalID,
		"vault_id":      withdrawal.VaultID,
	})

	withdrawalModel := r.entityToModel(withdrawal)

	result := r.db.WithContext(ctx).Create(&withdrawalModel)

	if result.Error != nil {
		if r.errorClassifier.IsConstraintError(result.Error) && !r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Error("Withdrawal receipt violates a constraint", map[string]any{
				"withdrawal_id": withdrawal.WithdrawalID,
				"vault_id":      withdrawal.VaultID,
				"error":         result.Error.Error(),
			})
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}

		r.logger.Error("Failed to create withdrawal receipt", map[string]any{
			"withdrawal_id": withdrawal.WithdrawalID,
			"vault_id":      withdrawal.VaultID,
			"error":         result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	// Propagate the storage-assigned surrogate key back to the entity
	withdrawal.ID = withdrawalModel.ID

	r.logger.Info("Withdrawal receipt created successfully", map[string]any{
		"withdrawal_id": withdrawal.WithdrawalID,
		"vault_id":      withdrawal.VaultID,
		"amount":        withdrawal.Amount,
	})
	return nil
}

// GetByWithdrawalID retrieves a withdrawal by its reference
func (r *WithdrawalRepository) GetByWithdrawalID(ctx context.Context, withdrawalID string) (*entity.Withdrawal, error) {
	r.logger.Debug("Getting withdrawal by ID", map[string]any{
		"withdrawal_id": withdrawalID,
	})

	var withdrawalModel model.Withdrawal
	result := r.db.WithContext(ctx).
		Where("withdrawal_id = ?", withdrawalID).
		First(&withdrawalModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Withdrawal not found", map[string]any{
				"withdrawal_id": withdrawalID,
			})
			return nil, errs.ErrWithdrawalNotFound
		}
		r.logger.Error("Failed to get withdrawal", map[string]any{
			"withdrawal_id": withdrawalID,
			"error":         result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	withdrawal := r.modelToEntity(&withdrawalModel)

	r.logger.Debug("Withdrawal retrieved successfully", map[string]any{
		"withdrawal_id": withdrawalID,
		"vault_id":      withdrawal.VaultID,
		"status":        withdrawal.Status,
	})

	return withdrawal, nil
}

// ListByVault retrieves all withdrawals recorded for a vault, newest first
func (r *WithdrawalRepository) ListByVault(ctx context.Context, vaultID string) ([]*entity.Withdrawal, error) {
	r.logger.Debug("Listing withdrawals for vault", map[string]any{
		"vault_id": vaultID,
	})

	var withdrawalModels []model.Withdrawal
	result := r.db.WithContext(ctx).
		Where("vault_id = ?", vaultID).
		Order("created_at desc").
		Find(&withdrawalModels)

	if result.Error != nil {
		r.logger.Error("Failed to list withdrawals", map[string]any{
			"vault_id": vaultID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	withdrawals := make([]*entity.Withdrawal, 0, len(withdrawalModels))
	for i := range withdrawalModels {
		withdrawals = append(withdrawals, r.modelToEntity(&withdrawalModels[i]))
	}

	r.logger.Debug("Withdrawals listed successfully", map[string]any{
		"vault_id": vaultID,
		"count":    len(withdrawals),
	})

	return withdrawals, nil
}
