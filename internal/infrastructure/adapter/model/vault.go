package model

import (
	"time"
)

// Vault represents the database model for time-locked vaults
type Vault struct {
	ID              string    `gorm:"primaryKey;size:255"`
	Owner           string    `gorm:"not null;size:128;index"`
	UnlockTime      time.Time `gorm:"not null"`
	Balance         int64     `gorm:"not null"` // Balance in cents
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
	WithdrawalCount uint64    `gorm:"default:0"`
}

// TableName specifies the table name for Vault
func (Vault) TableName() string {
	return "vaults"
}
