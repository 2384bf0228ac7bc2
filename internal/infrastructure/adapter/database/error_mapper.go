package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/timelocked/vault-service/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeVault represents the vault entity
	EntityTypeVault EntityType = "vault"
	// EntityTypeWithdrawal represents the withdrawal entity
	EntityTypeWithdrawal EntityType = "withdrawal"
	// EntityTypeVaultLock represents the vault lock entity
	EntityTypeVaultLock EntityType = "vault_lock"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Check for common GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrVaultNotFound
	}

	// Check for PostgreSQL specific errors
	errMsg := strings.ToLower(err.Error())

	switch {
	// Transaction and locking errors
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock timeout"):
		return domainErr.ErrVaultBusy

	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrDuplicateVault

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	// Default error
	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeVault:
			return domainErr.ErrVaultNotFound
		case EntityTypeWithdrawal:
			return domainErr.ErrWithdrawalNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// MapVaultNotFoundError maps database errors to vault not found errors
func (m *ErrorMapper) MapVaultNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeVault)
}

// MapWithdrawalNotFoundError maps database errors to withdrawal not found errors
func (m *ErrorMapper) MapWithdrawalNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeWithdrawal)
}
