package usecase

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func newLedgerUsecaseForTest() (*DefaultLedgerUsecase, *fakeLedgerRepo, *fakeTransactionRepo, *fakeRuleRepo) {
	ledgerRepo := newFakeLedgerRepo()
	txRepo := newFakeTransactionRepo()
	ruleRepo := newFakeRuleRepo()
	uc := NewDefaultLedgerUsecase(ledgerRepo, txRepo, NewDefaultCommissionUsecase(ruleRepo), nil, nil)
	return uc, ledgerRepo, txRepo, ruleRepo
}

func testTransaction(id string, amount int64, referrerID string) *domain.Transaction {
	ref := referrerID
	return &domain.Transaction{
		ID:         id,
		Amount:     amount,
		Currency:   "USD",
		CustomerID: "cust-1",
		ProductID:  "P1",
		ReferrerID: &ref,
		Status:     domain.TxStatusSucceeded,
		CreatedAt:  time.Now(),
	}
}

func testRule(id, referrerID string, percent float64) *domain.CommissionRule {
	return &domain.CommissionRule{
		ID:                id,
		ReferrerID:        referrerID,
		CommissionPercent: percent,
		StartDate:         date(2024, 1, 1),
		CreatedAt:         date(2024, 1, 1),
	}
}

func TestRecordCommissionIdempotent(t *testing.T) {
	uc, _, _, _ := newLedgerUsecaseForTest()

	tx := testTransaction("tx-1", 10000, "r1")
	first, err := uc.RecordCommission(tx, testRule("rule-1", "r1", 85), domain.Split{CommissionAmount: 8500, PlatformAmount: 1500})
	require.NoError(t, err)
	require.Equal(t, int64(8500), first.CommissionAmount)
	require.Equal(t, domain.TransferPending, first.TransferStatus)

	// Second call with different rule and split returns the first entry
	second, err := uc.RecordCommission(tx, testRule("rule-2", "r1", 10), domain.Split{CommissionAmount: 1000, PlatformAmount: 9000})
	require.NoError(t, err)
	require.Equal(t, first.RuleID, second.RuleID)
	require.Equal(t, first.CommissionAmount, second.CommissionAmount)
	require.Equal(t, first.PlatformAmount, second.PlatformAmount)
}

func TestMarkTransferredLifecycle(t *testing.T) {
	uc, _, _, _ := newLedgerUsecaseForTest()

	tx := testTransaction("tx-1", 10000, "r1")
	_, err := uc.RecordCommission(tx, testRule("rule-1", "r1", 85), domain.Split{CommissionAmount: 8500, PlatformAmount: 1500})
	require.NoError(t, err)

	require.NoError(t, uc.MarkTransferred("tx-1", "tr_123"))

	entry, err := uc.GetEntryByTransactionID("tx-1")
	require.NoError(t, err)
	require.Equal(t, domain.TransferPaid, entry.TransferStatus)
	require.NotNil(t, entry.TransferID)
	require.Equal(t, "tr_123", *entry.TransferID)

	// PAID -> PAID is not a valid transition
	require.ErrorIs(t, uc.MarkTransferred("tx-1", "tr_456"), domain.ErrInvalidTransferState)
}

func TestMarkTransferredUnknownTransaction(t *testing.T) {
	uc, _, _, _ := newLedgerUsecaseForTest()
	require.ErrorIs(t, uc.MarkTransferred("missing", "tr_123"), domain.ErrNotFound)
}

func TestRetryAfterFailure(t *testing.T) {
	uc, _, _, _ := newLedgerUsecaseForTest()

	tx := testTransaction("tx-1", 10000, "r1")
	_, err := uc.RecordCommission(tx, testRule("rule-1", "r1", 85), domain.Split{CommissionAmount: 8500, PlatformAmount: 1500})
	require.NoError(t, err)

	require.NoError(t, uc.MarkTransferFailed("tx-1"))
	entry, err := uc.GetEntryByTransactionID("tx-1")
	require.NoError(t, err)
	require.Equal(t, domain.TransferFailed, entry.TransferStatus)

	// FAILED -> PENDING is the manual retry path
	require.NoError(t, uc.RetryTransfer("tx-1"))
	entry, err = uc.GetEntryByTransactionID("tx-1")
	require.NoError(t, err)
	require.Equal(t, domain.TransferPending, entry.TransferStatus)

	// PAID never goes back to PENDING
	require.NoError(t, uc.MarkTransferred("tx-1", "tr_123"))
	require.ErrorIs(t, uc.RetryTransfer("tx-1"), domain.ErrInvalidTransferState)
}

func TestVoidOnRefundBeforeTransfer(t *testing.T) {
	uc, _, _, _ := newLedgerUsecaseForTest()

	tx := testTransaction("tx-1", 10000, "r1")
	_, err := uc.RecordCommission(tx, testRule("rule-1", "r1", 85), domain.Split{CommissionAmount: 8500, PlatformAmount: 1500})
	require.NoError(t, err)

	require.NoError(t, uc.VoidOnRefund("tx-1"))

	entry, err := uc.GetEntryByTransactionID("tx-1")
	require.NoError(t, err)
	require.Equal(t, domain.TransferVoided, entry.TransferStatus)
	require.False(t, entry.ReversalOwed)

	// Voiding twice is a no-op
	require.NoError(t, uc.VoidOnRefund("tx-1"))

	// A voided entry refuses transfer transitions
	require.ErrorIs(t, uc.MarkTransferred("tx-1", "tr_123"), domain.ErrEntryVoided)
	require.ErrorIs(t, uc.RetryTransfer("tx-1"), domain.ErrEntryVoided)
}

func TestVoidOnRefundAfterTransferOwesReversal(t *testing.T) {
	uc, _, _, _ := newLedgerUsecaseForTest()

	tx := testTransaction("tx-1", 10000, "r1")
	_, err := uc.RecordCommission(tx, testRule("rule-1", "r1", 85), domain.Split{CommissionAmount: 8500, PlatformAmount: 1500})
	require.NoError(t, err)
	require.NoError(t, uc.MarkTransferred("tx-1", "tr_123"))

	require.NoError(t, uc.VoidOnRefund("tx-1"))

	entry, err := uc.GetEntryByTransactionID("tx-1")
	require.NoError(t, err)
	require.Equal(t, domain.TransferVoided, entry.TransferStatus)
	require.True(t, entry.ReversalOwed)
}

func TestVoidOnRefundWithoutEntry(t *testing.T) {
	uc, _, _, _ := newLedgerUsecaseForTest()
	// Refund of an unattributed transaction: nothing recorded, nothing to void
	require.NoError(t, uc.VoidOnRefund("tx-without-entry"))
}
