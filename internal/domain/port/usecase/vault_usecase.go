package usecase

import (
	"context"

	"github.com/timelocked/vault-service/internal/domain/entity"
)

// VaultStatusResponse represents the standardized vault read response
type VaultStatusResponse struct {
	VaultID    string `json:"vaultId"`
	Owner      string `json:"owner"`
	UnlockTime int64  `json:"unlockTime"` // Unix seconds
	Balance    string `json:"balance"`    // Formatted with 2 decimal places
	Unlocked   bool   `json:"unlocked"`
}

// VaultUseCase defines methods for vault-related business operations
type VaultUseCase interface {
	// DeployVault creates a new vault owned by the calling identity.
	// The unlock time is Unix seconds and must be strictly in the future;
	// the initial amount may be "0.00" for an unfunded vault.
	// Returns the created vault, whose ID is the reference for all
	// subsequent calls.
	DeployVault(ctx context.Context, owner string, unlockTime int64, initialAmount string) (*entity.Vault, error)

	// GetVaultStatus retrieves vault details with a formatted balance
	// This is the main method used by the GET /vault/{vaultId} endpoint
	GetVaultStatus(ctx context.Context, vaultID string) (*VaultStatusResponse, error)

	// VaultExists checks if a vault exists with the given reference
	VaultExists(ctx context.Context, vaultID string) (bool, error)
}
