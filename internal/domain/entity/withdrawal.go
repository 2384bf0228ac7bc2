package entity

import (
	"time"

	errs "github.com/timelocked/vault-service/internal/domain/error"
	tport "github.com/timelocked/vault-service/internal/domain/port/core"
)

// WithdrawalStatus defines possible status values for a withdrawal receipt
type WithdrawalStatus string

// WithdrawalStatus constants
const (
	StatusPending   WithdrawalStatus = "pending"
	StatusCompleted WithdrawalStatus = "completed"
)

// Withdrawal is the receipt of a successful release of vault funds. Receipts
// are written in the same transaction as the balance change, so only
// completed withdrawals are ever visible. A vacuous repeat withdrawal
// produces a zero-amount receipt.
type Withdrawal struct {
	ID            uint64           // Surrogate identifier assigned by storage
	WithdrawalID  string           // Unique withdrawal reference
	VaultID       string           // Vault the funds were released from
	Recipient     string           // Identity the funds were released to (the vault owner)
	Amount        string           // Amount as a string with 2 decimal places
	AmountInCents int64            // Amount in cents for precise calculations
	CreatedAt     time.Time        // When the withdrawal was started
	ProcessedAt   *time.Time       // When the withdrawal was completed (nullable)
	ResultBalance string           // Vault balance after this withdrawal
	Status        WithdrawalStatus // Status of the withdrawal
}

// NewWithdrawal creates a pending withdrawal receipt with basic validation.
// The amount comes straight from the vault in cents; zero is valid.
func NewWithdrawal(
	withdrawalID string,
	vaultID string,
	recipient string,
	amountInCents int64,
	timeProvider tport.TimeProvider,
) (*Withdrawal, error) {
	if withdrawalID == "" {
		return nil, errs.ErrInvalidWithdrawalID
	}
	if vaultID == "" {
		return nil, errs.ErrInvalidVaultID
	}

	normalizedRecipient, err := NormalizeAddress(recipient)
	if err != nil {
		return nil, err
	}

	if amountInCents < 0 {
		return nil, errs.ErrNegativeAmount
	}

	return &Withdrawal{
		WithdrawalID:  withdrawalID,
		VaultID:       vaultID,
		Recipient:     normalizedRecipient,
		Amount:        AmountInCentsToString(amountInCents),
		AmountInCents: amountInCents,
		CreatedAt:     timeProvider.Now(),
		Status:        StatusPending,
	}, nil
}

// MarkAsProcessed marks the withdrawal as completed and records the
// resulting vault balance
func (w *Withdrawal) MarkAsProcessed(timeProvider tport.TimeProvider, resultBalance string) {
	now := timeProvider.Now()
	w.ProcessedAt = &now
	w.ResultBalance = EnsureTwoDecimalPlaces(resultBalance)
	w.Status = StatusCompleted
}

// IsCompleted returns true if the withdrawal has been processed
func (w *Withdrawal) IsCompleted() bool {
	return w.Status == StatusCompleted
}
