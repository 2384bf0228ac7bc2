package model

import (
	"time"
)

// VaultLock represents a lock on a vault record for withdrawal processing
type VaultLock struct {
	VaultID   string    `gorm:"primaryKey;not null;size:255"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"` // Standard GORM timestamp
	UpdatedAt time.Time `gorm:"not null"` // Standard GORM timestamp
}

// TableName specifies the table name for VaultLock
func (VaultLock) TableName() string {
	return "vault_locks"
}
