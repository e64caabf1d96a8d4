package models

import "time"

// One entry per transaction: the unique index on transaction_id is what
// makes duplicate webhook deliveries converge on a single row.
type LedgerEntryModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	TransactionID    string    `gorm:"uniqueIndex:idx_ledger_transaction;not null"`
	ReferrerID       string    `gorm:"index:idx_ledger_referrer;not null"`
	RuleID           string    `gorm:"type:uuid"`
	CommissionAmount int64     `gorm:"not null"`
	PlatformAmount   int64     `gorm:"not null"`
	Currency         string    `gorm:"not null"`
	TransferID       *string   `gorm:"index"`
	TransferStatus   string    `gorm:"index;not null"`
	ReversalOwed     bool      `gorm:"default:false"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

func (LedgerEntryModel) TableName() string {
	return "commission_ledger_entries"
}
