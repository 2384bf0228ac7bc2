package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/timelocked/vault-service/internal/domain/error"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
)

// MaxAddressLength bounds owner and caller identity strings
const MaxAddressLength = 128

// Vault represents a time-locked vault holding funds for a single owner.
// The owner and unlock time are fixed at deployment. The balance only ever
// decreases, in a single step, when the owner withdraws after the unlock
// time. There is no terminal "withdrawn" state: a repeat withdrawal after
// unlock succeeds and transfers nothing.
type Vault struct {
	ID              string    // Unique reference for the vault, assigned at deployment
	Owner           string    // Identity of the deploying caller, never reassigned
	UnlockTime      time.Time // Timestamp before which withdrawal is impossible
	balance         int64     // Held funds in cents to avoid floating point precision issues (private)
	CreatedAt       time.Time // When the vault was deployed
	UpdatedAt       time.Time // When the vault was last updated
	WithdrawalCount uint64    // Count of executed withdrawals for this vault
}

// NormalizeAddress trims and validates a caller or owner identity
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("%w: empty value", errs.ErrInvalidAddress)
	}
	if len(address) > MaxAddressLength {
		return "", fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidAddress, MaxAddressLength)
	}
	return address, nil
}

// NewVault creates a new vault owned by the deploying caller. The unlock
// time must be strictly in the future; the attached amount may be zero.
func NewVault(id, owner string, unlockTime time.Time, initialAmount string, timeProvider coreport.TimeProvider) (*Vault, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidVaultID
	}

	normalizedOwner, err := NormalizeAddress(owner)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	if !unlockTime.After(now) {
		return nil, errs.ErrInvalidUnlockTime
	}

	balanceInCents, err := ValidateAndConvertAmount(initialAmount)
	if err != nil {
		return nil, err
	}

	return &Vault{
		ID:              id,
		Owner:           normalizedOwner,
		UnlockTime:      unlockTime,
		balance:         balanceInCents,
		CreatedAt:       now,
		UpdatedAt:       now,
		WithdrawalCount: 0,
	}, nil
}

// RestoreVault rebuilds a vault from persisted state without running
// deployment validation (for internal use, like repositories)
func RestoreVault(id, owner string, unlockTime time.Time, balanceInCents int64, createdAt, updatedAt time.Time, withdrawalCount uint64) *Vault {
	return &Vault{
		ID:              id,
		Owner:           owner,
		UnlockTime:      unlockTime,
		balance:         balanceInCents,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		WithdrawalCount: withdrawalCount,
	}
}

// Balance returns the current balance in cents (for internal use)
func (v *Vault) Balance() int64 {
	return v.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (v *Vault) GetBalance() string {
	return EnsureTwoDecimalPlaces(AmountInCentsToString(v.balance))
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (v *Vault) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	v.balance = balanceInCents
	v.UpdatedAt = timeProvider.Now()
}

// IsUnlocked reports whether the unlock time has been reached
func (v *Vault) IsUnlocked(timeProvider coreport.TimeProvider) bool {
	return !timeProvider.Now().Before(v.UnlockTime)
}

// Withdraw releases the entire remaining balance to the owner and returns
// the amount transferred in cents. Preconditions are checked in order:
// the unlock time gate first, then caller identity. A failed check leaves
// the vault untouched. Withdrawing an already emptied vault succeeds and
// transfers zero.
func (v *Vault) Withdraw(caller string, timeProvider coreport.TimeProvider) (int64, error) {
	now := timeProvider.Now()
	if now.Before(v.UnlockTime) {
		return 0, errs.ErrTooEarly
	}
	if caller != v.Owner {
		return 0, errs.ErrNotOwner
	}

	amount := v.balance
	v.balance = 0
	v.UpdatedAt = now
	v.WithdrawalCount++
	return amount, nil
}
