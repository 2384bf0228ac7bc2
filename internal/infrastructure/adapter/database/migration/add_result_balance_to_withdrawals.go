package migration

import (
	"context"

	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"gorm.io/gorm"
)

// AddResultBalanceToWithdrawals is a migration to add the result_balance column to the withdrawals table
type AddResultBalanceToWithdrawals struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddResultBalanceToWithdrawals creates a new migration instance
func NewAddResultBalanceToWithdrawals(db *gorm.DB, logger coreport.Logger) *AddResultBalanceToWithdrawals {
	return &AddResultBalanceToWithdrawals{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddResultBalanceToWithdrawals) Run(ctx context.Context) error {
	m.logger.Info("Adding result_balance column to withdrawals table", nil)

	// Check if column already exists
	var hasResultBalance bool
	if err := m.checkColumnExists(&hasResultBalance); err != nil {
		return err
	}

	// Add result_balance column if it doesn't exist
	if !hasResultBalance {
		if err := m.db.Exec(`ALTER TABLE withdrawals ADD COLUMN result_balance VARCHAR(50) NOT NULL DEFAULT ''`).Error; err != nil {
			m.logger.Error("Failed to add result_balance column", map[string]any{"error": err.Error()})
			return err
		}
	}

	m.logger.Info("Successfully added result_balance column to withdrawals table", nil)
	return nil
}

// checkColumnExists checks if the column already exists in the table
func (m *AddResultBalanceToWithdrawals) checkColumnExists(hasResultBalance *bool) error {
	// For PostgreSQL
	var columns []struct {
		ColumnName string `gorm:"column:column_name"`
	}

	err := m.db.Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'withdrawals' AND column_name = 'result_balance'
	`).Scan(&columns).Error

	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{"error": err.Error()})
		return err
	}

	for _, column := range columns {
		if column.ColumnName == "result_balance" {
			*hasResultBalance = true
		}
	}

	return nil
}
