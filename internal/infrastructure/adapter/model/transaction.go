package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement"`
	GatewayRef string         `gorm:"uniqueIndex;not null;size:64"`
	Amount     int64          `gorm:"not null"` // Smallest currency unit
	Gateway    string         `gorm:"not null;size:50"`
	Status     string         `gorm:"not null;size:50;default:pending"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	CustomerID uint64         `gorm:"not null;index:idx_transactions_customer_created,priority:1"`
	CreatedAt  time.Time      `gorm:"not null;index:idx_transactions_customer_created,priority:2,sort:desc"`
	UpdatedAt  time.Time      `gorm:"not null"`

	// Define relationships
	Customer User `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
