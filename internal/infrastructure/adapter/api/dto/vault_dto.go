package dto

// DeployVaultRequest represents the API request for deploying a new vault.
// The owner is taken from the X-Caller-Address header, not the body.
type DeployVaultRequest struct {
	UnlockTime    int64  `json:"unlockTime" binding:"required"`
	InitialAmount string `json:"initialAmount"`
}

// DeployVaultResponse represents the API response for a deployed vault
type DeployVaultResponse struct {
	VaultID    string `json:"vaultId"`
	Owner      string `json:"owner"`
	UnlockTime int64  `json:"unlockTime"`
	Balance    string `json:"balance"`
}

// VaultStatusResponse represents the API response for a vault's status
type VaultStatusResponse struct {
	VaultID    string `json:"vaultId"`
	Owner      string `json:"owner"`
	UnlockTime int64  `json:"unlockTime"`
	Balance    string `json:"balance"`
	Unlocked   bool   `json:"unlocked"`
}
