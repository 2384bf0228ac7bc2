package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidUnlockTime   = 4001
	CodeTooEarly            = 4002
	CodeNotOwner            = 4003
	CodeInvalidAmount       = 4004
	CodeInvalidAddress      = 4005
	CodeAmountOverflow      = 4006
	CodeInvalidVaultID      = 4007
	CodeDuplicateVault      = 4008
	CodeConstraintViolation = 4009
	CodeVaultNotFound       = 4040
	CodeWithdrawalNotFound  = 4041
	CodeVaultBusy           = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidUnlockTime is returned when a vault is created with an unlock time
	// that is not strictly in the future
	ErrInvalidUnlockTime = errors.New("unlock time must be in the future")

	// ErrTooEarly is returned when withdrawal is attempted before the unlock time
	ErrTooEarly = errors.New("unlock time has not been reached yet")

	// ErrNotOwner is returned when withdrawal is attempted by anyone but the vault owner
	ErrNotOwner = errors.New("caller is not the vault owner")

	// ErrInvalidAmount is returned when the amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNegativeBalance is returned when an operation would result in negative balance
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidVaultID is returned when the vault reference is empty or malformed
	ErrInvalidVaultID = errors.New("vault ID cannot be empty")

	// ErrInvalidWithdrawalID is returned when the withdrawal reference is empty
	ErrInvalidWithdrawalID = errors.New("withdrawal ID cannot be empty")

	// ErrInvalidAddress is returned when a caller or owner address is empty or too long
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidStatus is returned when the withdrawal status is not one of the allowed values
	ErrInvalidStatus = errors.New("invalid withdrawal status")

	// ErrDuplicateVault is returned when a vault with the same reference already exists
	ErrDuplicateVault = errors.New("vault with this ID already exists")

	// ErrVaultNotFound is returned when the requested vault doesn't exist
	ErrVaultNotFound = errors.New("vault not found")

	// ErrWithdrawalNotFound is returned when the requested withdrawal doesn't exist
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrVaultBusy is returned when a vault is locked by another in-flight call
	ErrVaultBusy = errors.New("vault is busy with another operation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUnlockTime):
		return CodeInvalidUnlockTime
	case errors.Is(err, ErrTooEarly):
		return CodeTooEarly
	case errors.Is(err, ErrNotOwner):
		return CodeNotOwner
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidAddress):
		return CodeInvalidAddress
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidVaultID):
		return CodeInvalidVaultID
	case errors.Is(err, ErrDuplicateVault):
		return CodeDuplicateVault
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrVaultNotFound):
		return CodeVaultNotFound
	case errors.Is(err, ErrWithdrawalNotFound):
		return CodeWithdrawalNotFound
	case errors.Is(err, ErrVaultBusy):
		return CodeVaultBusy
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// DeployError represents an error that occurred while creating a vault
type DeployError struct {
	Owner      string
	UnlockTime time.Time
	Amount     string
	Err        error
}

// Error implements the error interface for DeployError
func (e *DeployError) Error() string {
	return fmt.Sprintf("vault deployment failed for owner %s (unlock time: %s, amount: %s): %v",
		e.Owner, e.UnlockTime.UTC().Format(time.RFC3339), e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *DeployError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DeployError) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"error_type":  "deploy_error",
		"owner":       e.Owner,
		"unlock_time": e.UnlockTime.UTC().Format(time.RFC3339),
		"amount":      e.Amount,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewDeployError creates a detailed vault deployment error
func NewDeployError(owner string, unlockTime time.Time, amount string, err error) error {
	return &DeployError{
		Owner:      owner,
		UnlockTime: unlockTime,
		Amount:     amount,
		Err:        err,
	}
}

// WithdrawError represents an error related to withdrawal processing
type WithdrawError struct {
	VaultID string
	Caller  string
	Amount  string
	Reason  string
	Err     error
}

// Error implements the error interface for WithdrawError
func (e *WithdrawError) Error() string {
	return fmt.Sprintf("withdrawal error for vault %s (caller: %s, amount: %s): %s - %v",
		e.VaultID, e.Caller, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *WithdrawError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *WithdrawError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "withdraw_error",
		"vault_id":   e.VaultID,
		"caller":     e.Caller,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewWithdrawError creates a detailed withdrawal error
func NewWithdrawError(vaultID, caller, amount, reason string, err error) error {
	return &WithdrawError{
		VaultID: vaultID,
		Caller:  caller,
		Amount:  amount,
		Reason:  reason,
		Err:     err,
	}
}

// TooEarlyError provides detailed information about a withdrawal attempted
// before the vault's unlock time
type TooEarlyError struct {
	VaultID    string
	UnlockTime time.Time
	Now        time.Time
}

// Error implements the error interface
func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("withdrawal too early for vault %s: unlocks at %s, current time %s",
		e.VaultID, e.UnlockTime.UTC().Format(time.RFC3339), e.Now.UTC().Format(time.RFC3339))
}

// Is checks if the target error is an ErrTooEarly
func (e *TooEarlyError) Is(target error) bool {
	return target == ErrTooEarly
}

// LogFields returns a map of fields for structured logging
func (e *TooEarlyError) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"error_type":        "too_early",
		"vault_id":          e.VaultID,
		"unlock_time":       e.UnlockTime.UTC().Format(time.RFC3339),
		"now":               e.Now.UTC().Format(time.RFC3339),
		"remaining_seconds": int64(e.UnlockTime.Sub(e.Now).Seconds()),
		"error_code":        CodeTooEarly,
	}
}

// NewTooEarlyError creates a new detailed too-early withdrawal error
func NewTooEarlyError(vaultID string, unlockTime, now time.Time) error {
	return &TooEarlyError{
		VaultID:    vaultID,
		UnlockTime: unlockTime,
		Now:        now,
	}
}

// NotOwnerError provides detailed information about a withdrawal attempted
// by an identity other than the vault owner
type NotOwnerError struct {
	VaultID string
	Caller  string
	Owner   string
}

// Error implements the error interface
func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("withdrawal denied for vault %s: caller %s is not the owner",
		e.VaultID, e.Caller)
}

// Is checks if the target error is an ErrNotOwner
func (e *NotOwnerError) Is(target error) bool {
	return target == ErrNotOwner
}

// LogFields returns a map of fields for structured logging
func (e *NotOwnerError) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"error_type": "not_owner",
		"vault_id":   e.VaultID,
		"caller":     e.Caller,
		"owner":      e.Owner,
		"error_code": CodeNotOwner,
	}
}

// NewNotOwnerError creates a new detailed not-owner withdrawal error
func NewNotOwnerError(vaultID, caller, owner string) error {
	return &NotOwnerError{
		VaultID: vaultID,
		Caller:  caller,
		Owner:   owner,
	}
}

// IsTooEarlyError checks if the error is a too-early withdrawal error
func IsTooEarlyError(err error) bool {
	return errors.Is(err, ErrTooEarly)
}

// IsNotOwnerError checks if the error is a not-owner withdrawal error
func IsNotOwnerError(err error) bool {
	return errors.Is(err, ErrNotOwner)
}

// IsVaultNotFoundError checks if the error is a vault not found error
func IsVaultNotFoundError(err error) bool {
	return errors.Is(err, ErrVaultNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrVaultNotFound) ||
		errors.Is(err, ErrWithdrawalNotFound)
}

// IsVaultBusyError checks if the error is related to a busy vault
func IsVaultBusyError(err error) bool {
	return errors.Is(err, ErrVaultBusy)
}
