package domain

import "time"

type TransferStatus string

const (
	TransferPending TransferStatus = "PENDING"
	TransferPaid    TransferStatus = "PAID"
	TransferFailed  TransferStatus = "FAILED"
	TransferVoided  TransferStatus = "VOIDED"
)

// CommissionLedgerEntry is the at-most-once record of a computed commission
// for one transaction. TransactionID is unique across the ledger; duplicate
// webhook deliveries land on the existing entry.
//
// Transfer state machine:
//
//	PENDING -> PAID | FAILED
//	FAILED  -> PENDING        (manual retry)
//	PENDING | FAILED -> VOIDED
//	PAID    -> VOIDED         (ReversalOwed is set)
type CommissionLedgerEntry struct {
	TransactionID    string
	ReferrerID       string
	RuleID           string
	CommissionAmount int64
	PlatformAmount   int64
	Currency         string
	TransferID       *string
	TransferStatus   TransferStatus
	ReversalOwed     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type LedgerUsecase interface {
	RecordCommission(tx *Transaction, rule *CommissionRule, split Split) (*CommissionLedgerEntry, error)
	MarkTransferred(transactionID, transferID string) error
	MarkTransferFailed(transactionID string) error
	RetryTransfer(transactionID string) error
	VoidOnRefund(transactionID string) error
	GetEntryByTransactionID(transactionID string) (*CommissionLedgerEntry, error)
	HandleTransactionEvent(event *TransactionEvent) error
}

// TransactionEvent is the payload contract required from the payment
// processor's status webhook.
type TransactionEvent struct {
	TransactionID string
	Amount        int64
	Currency      string
	ProductID     string
	CustomerID    string
	ReferrerID    *string
	Status        TransactionStatus
	CreatedAt     time.Time
}

type LedgerRepository interface {
	// CreateEntry inserts the entry unless one already exists for the
	// transaction. Returns the stored entry and whether this call
	// created it.
	CreateEntry(entry *CommissionLedgerEntry) (*CommissionLedgerEntry, bool, error)
	GetEntryByTransactionID(transactionID string) (*CommissionLedgerEntry, error)
	// UpdateTransferStatus applies the transition only when the entry is
	// currently in fromStatus; reports ErrInvalidTransferState otherwise.
	UpdateTransferStatus(transactionID string, from, to TransferStatus, transferID *string, reversalOwed bool) error
	SumCommission(referrerID string, from, to time.Time) (int64, error)
}
