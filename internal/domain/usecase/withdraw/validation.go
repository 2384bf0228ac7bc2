package withdraw

import (
	"fmt"
	"strings"

	"github.com/timelocked/vault-service/internal/domain/entity"
	errs "github.com/timelocked/vault-service/internal/domain/error"
)

// WithdrawValidator provides validation for withdrawal requests
type WithdrawValidator struct{}

// NewWithdrawValidator creates a new WithdrawValidator
func NewWithdrawValidator() *WithdrawValidator {
	return &WithdrawValidator{}
}

// ValidateWithdraw validates the withdrawal input. Note that ownership is
// deliberately not checked here: any identity may invoke a withdrawal, and
// the vault itself decides whether the caller gets the funds.
func (v *WithdrawValidator) ValidateWithdraw(vaultID string, caller string) error {
	if err := v.validateVaultID(vaultID); err != nil {
		return err
	}

	if err := v.validateCaller(caller); err != nil {
		return err
	}

	return nil
}

// validateVaultID checks if the vault reference is usable
func (v *WithdrawValidator) validateVaultID(vaultID string) error {
	if strings.TrimSpace(vaultID) == "" {
		return errs.ErrInvalidVaultID
	}

	return nil
}

// validateCaller checks if the caller identity is well formed
func (v *WithdrawValidator) validateCaller(caller string) error {
	if _, err := entity.NormalizeAddress(caller); err != nil {
		return fmt.Errorf("caller: %w", err)
	}

	return nil
}
