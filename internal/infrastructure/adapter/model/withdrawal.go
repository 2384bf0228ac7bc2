package model

import (
	"time"
)

// Withdrawal represents the database model for withdrawal receipts
type Withdrawal struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	VaultID       string    `gorm:"not null;index;size:255"`
	WithdrawalID  string    `gorm:"uniqueIndex;not null;size:255"`
	Recipient     string    `gorm:"not null;size:128"`
	Amount        string    `gorm:"not null;size:50"`
	AmountInCents int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	ProcessedAt   *time.Time
	ResultBalance string `gorm:"size:50"`
	Status        string `gorm:"not null;size:50"`

	// Define relationships
	Vault Vault `gorm:"foreignKey:VaultID;references:ID"`
}

// TableName specifies the table name for Withdrawal
func (Withdrawal) TableName() string {
	return "withdrawals"
}
