package models

import "time"

type TransactionModel struct {
	ID          string    `gorm:"primaryKey"`
	Amount      int64     `gorm:"not null"`
	Currency    string    `gorm:"not null"`
	CustomerID  string    `gorm:"index"`
	ProductID   string    `gorm:"index"`
	ReferrerID  *string   `gorm:"index"`
	Status      string    `gorm:"index;not null"`
	NeedsReview bool      `gorm:"default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
