package vault

import (
	"context"
	"errors"
	"strings"

	errs "github.com/timelocked/vault-service/internal/domain/error"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/domain/port/persistence"
	"github.com/timelocked/vault-service/internal/domain/port/usecase"
)

// VaultUseCase implements the vault business logic
type VaultUseCase struct {
	vaultRepo    persistence.VaultRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewVaultUseCase creates a new vault use case instance
func NewVaultUseCase(
	vaultRepo persistence.VaultRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.VaultUseCase {
	return &VaultUseCase{
		vaultRepo:    vaultRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetVaultStatus retrieves vault details in the standardized format
func (u *VaultUseCase) GetVaultStatus(ctx context.Context, vaultID string) (*usecase.VaultStatusResponse, error) {
	if strings.TrimSpace(vaultID) == "" {
		return nil, errs.ErrInvalidVaultID
	}

	// Get the vault from the repository
	vault, err := u.vaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		u.logger.Error("Failed to get vault", map[string]any{
			"vaultId": vaultID,
			"error":   err.Error(),
		})
		return nil, err
	}

	unlocked := vault.IsUnlocked(u.timeProvider)
	response := &usecase.VaultStatusResponse{
		VaultID:    vault.ID,
		Owner:      vault.Owner,
		UnlockTime: vault.UnlockTime.Unix(),
		Balance:    vault.GetBalance(), // Uses the entity's formatting logic
		Unlocked:   unlocked,
	}

	fields := map[string]any{
		"vaultId":  vaultID,
		"balance":  response.Balance,
		"unlocked": unlocked,
	}
	if !unlocked {
		fields["remaining"] = u.timeProvider.Until(vault.UnlockTime).Std().String()
	}
	u.logger.Info("Vault status retrieved", fields)

	return response, nil
}

// VaultExists checks if a vault exists with the given reference
func (u *VaultUseCase) VaultExists(ctx context.Context, vaultID string) (bool, error) {
	if strings.TrimSpace(vaultID) == "" {
		return false, errs.ErrInvalidVaultID
	}

	exists, err := u.vaultRepo.Exists(ctx, vaultID)
	if err != nil {
		// Treat an explicit not-found as a clean negative
		if errors.Is(err, errs.ErrVaultNotFound) {
			return false, nil
		}
		return false, err
	}

	return exists, nil
}
