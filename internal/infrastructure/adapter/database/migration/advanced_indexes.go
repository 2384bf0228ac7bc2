package migration

import (
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Create unique index on withdrawal_id so a receipt reference is never recorded twice
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_withdrawals_withdrawal_id
		ON withdrawals (withdrawal_id)
	`).Error; err != nil {
		m.logger.Error("Failed to create unique index on withdrawal_id", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create index on vault_locks to improve locking performance
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_vault_locks_vault_id
		ON vault_locks (vault_id)
	`).Error; err != nil {
		m.logger.Error("Failed to create unique index on vault_locks.vault_id", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create index on vault_locks expiration time for cleanup
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_vault_locks_expires_at
		ON vault_locks (expires_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on vault_locks.expires_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create composite index for vault_id and status to speed up filtered queries
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_withdrawals_vault_status
		ON withdrawals (vault_id, status)
	`).Error; err != nil {
		m.logger.Error("Failed to create vault_status composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create partial index for completed withdrawals
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_withdrawals_completed
		ON withdrawals (vault_id, created_at)
		WHERE status = 'completed'
	`).Error; err != nil {
		m.logger.Error("Failed to create completed withdrawals partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create BRIN index for created_at (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_withdrawals_created_at_brin
		ON withdrawals USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Create index on vault owner for ownership lookups
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_vaults_owner
		ON vaults (owner)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on owner", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Set fillfactor for withdrawal table to reduce page splits
	if err := m.db.Exec(`
		ALTER TABLE withdrawals SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for withdrawals table", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	// Set statistics target for better query planning
	if err := m.db.Exec(`
		ALTER TABLE withdrawals ALTER COLUMN vault_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for vault_id", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
