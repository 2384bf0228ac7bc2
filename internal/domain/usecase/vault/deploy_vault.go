package vault

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/timelocked/vault-service/internal/domain/entity"
	errs "github.com/timelocked/vault-service/internal/domain/error"
)

// DeployVault creates a new vault owned by the calling identity. The vault
// reference is generated here and returned to the caller; it is the handle
// for every later read and withdrawal.
func (u *VaultUseCase) DeployVault(ctx context.Context, owner string, unlockTime int64, initialAmount string) (*entity.Vault, error) {
	// Reject garbage timestamps before building anything
	if unlockTime <= 0 {
		return nil, errs.ErrInvalidUnlockTime
	}

	normalizedOwner, err := entity.NormalizeAddress(owner)
	if err != nil {
		return nil, err
	}

	// Validate the attached amount early so the caller gets the precise error
	if _, err := entity.ValidateAndConvertAmount(initialAmount); err != nil {
		return nil, err
	}

	unlockAt := time.Unix(unlockTime, 0).UTC()
	vaultID := uuid.NewString()

	// The entity enforces the strictly-in-the-future rule against the
	// injected clock
	vault, err := entity.NewVault(vaultID, normalizedOwner, unlockAt, initialAmount, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.vaultRepo.Create(ctx, vault); err != nil {
		u.logger.Error("Failed to create vault", map[string]any{
			"vaultId": vaultID,
			"owner":   normalizedOwner,
			"error":   err.Error(),
		})
		return nil, errs.NewDeployError(normalizedOwner, unlockAt, initialAmount, err)
	}

	u.logger.Info("Vault deployed", map[string]any{
		"vaultId":       vault.ID,
		"owner":         vault.Owner,
		"unlockTime":    vault.UnlockTime.Unix(),
		"initialAmount": vault.GetBalance(),
	})

	return vault, nil
}
