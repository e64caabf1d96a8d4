package domain

import "time"

type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "PENDING"
	TxStatusSucceeded TransactionStatus = "SUCCEEDED"
	TxStatusRefunded  TransactionStatus = "REFUNDED"
	TxStatusFailed    TransactionStatus = "FAILED"
)

// Terminal statuses freeze the transaction record.
func (s TransactionStatus) Terminal() bool {
	return s == TxStatusSucceeded || s == TxStatusRefunded || s == TxStatusFailed
}

// Transaction mirrors the payment processor's view of a purchase. Amount is
// in minor units of Currency.
type Transaction struct {
	ID          string
	Amount      int64
	Currency    string
	CustomerID  string
	ProductID   string
	ReferrerID  *string
	Status      TransactionStatus
	NeedsReview bool
	CreatedAt   time.Time
}

type TransactionRepository interface {
	// UpsertTransaction stores the processor's latest view of the
	// transaction. A record already in terminal status is only updated
	// for the SUCCEEDED -> REFUNDED transition.
	UpsertTransaction(tx *Transaction) error
	GetTransactionByID(transactionID string) (*Transaction, error)
	MarkNeedsReview(transactionID string) error
}
