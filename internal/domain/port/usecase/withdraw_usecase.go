package usecase

import (
	"context"

	"github.com/timelocked/vault-service/internal/domain/entity"
)

// WithdrawResult contains info about a processed withdrawal
type WithdrawResult struct {
	Success       bool
	WithdrawalID  string
	Amount        string // Amount transferred to the owner, 2 decimal places
	ResultBalance string
	ErrorMessage  string
	StatusCode    int // HTTP status code
}

// WithdrawRequest represents an incoming withdrawal request. The caller is
// whatever identity invoked the endpoint; ownership is checked in the
// domain, not here.
type WithdrawRequest struct {
	Caller string
}

// WithdrawUseCase defines methods for withdrawal-related business operations
type WithdrawUseCase interface {
	// Withdraw releases the vault's entire balance to its owner.
	// Calls on the same vault are processed strictly one at a time.
	// Returns detailed information about the withdrawal result.
	Withdraw(ctx context.Context, vaultID string, req WithdrawRequest) (*WithdrawResult, error)

	// ListWithdrawals returns the receipts recorded for a vault, newest first
	ListWithdrawals(ctx context.Context, vaultID string) ([]*entity.Withdrawal, error)

	// ValidateWithdrawRequest validates an incoming withdrawal request
	ValidateWithdrawRequest(vaultID string, req WithdrawRequest) error
}
