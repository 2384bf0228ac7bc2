package dto

// WithdrawResponse represents the API response for a processed withdrawal
type WithdrawResponse struct {
	WithdrawalID  string `json:"withdrawalId"`
	VaultID       string `json:"vaultId"`
	Success       bool   `json:"success"`
	Amount        string `json:"amount,omitempty"`
	ResultBalance string `json:"resultBalance,omitempty"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

// WithdrawalReceiptResponse represents a single recorded withdrawal receipt
type WithdrawalReceiptResponse struct {
	WithdrawalID  string `json:"withdrawalId"`
	VaultID       string `json:"vaultId"`
	Recipient     string `json:"recipient"`
	Amount        string `json:"amount"`
	ResultBalance string `json:"resultBalance"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"createdAt"`
	ProcessedAt   *int64 `json:"processedAt,omitempty"`
}

// WithdrawalListResponse represents the API response for a vault's withdrawal history
type WithdrawalListResponse struct {
	VaultID     string                      `json:"vaultId"`
	Withdrawals []WithdrawalReceiptResponse `json:"withdrawals"`
}
