package usecase

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestAggregateByReferrer(t *testing.T) {
	clickRepo := newFakeClickRepo()
	attributionRepo := newFakeAttributionRepo()
	ledgerRepo := newFakeLedgerRepo()
	statsUc := NewDefaultStatsUsecase(clickRepo, attributionRepo, ledgerRepo)

	clickUc := NewDefaultClickUsecase(clickRepo, nil)
	now := time.Now()
	require.NoError(t, clickUc.RecordClick("post-1", "r1", "partnerhub", now))
	require.NoError(t, clickUc.RecordClick("post-1", "r1", "partnerhub", now))
	require.NoError(t, clickUc.RecordClick("post-2", "r1", "socialx", now))
	require.NoError(t, clickUc.RecordClick("post-1", "r2", "partnerhub", now))

	attributionUc := NewDefaultAttributionUsecase(attributionRepo, 90*24*time.Hour, nil)
	require.NoError(t, attributionUc.Capture("visitor-1", "r1"))
	require.NoError(t, attributionUc.Capture("visitor-2", "r1"))
	require.NoError(t, attributionUc.Capture("visitor-3", "r2"))

	ledgerUc := NewDefaultLedgerUsecase(ledgerRepo, newFakeTransactionRepo(), NewDefaultCommissionUsecase(newFakeRuleRepo()), nil, nil)
	_, err := ledgerUc.RecordCommission(testTransaction("tx-1", 10000, "r1"), testRule("rule-1", "r1", 70), domain.Split{CommissionAmount: 7000, PlatformAmount: 3000})
	require.NoError(t, err)
	_, err = ledgerUc.RecordCommission(testTransaction("tx-2", 4000, "r1"), testRule("rule-1", "r1", 70), domain.Split{CommissionAmount: 2800, PlatformAmount: 1200})
	require.NoError(t, err)

	from := now.Add(-time.Hour)
	to := now.Add(time.Hour)

	stats, err := statsUc.AggregateByReferrer("r1", from, to)
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.Clicks)
	require.Equal(t, int64(2), stats.Signups)
	require.Equal(t, int64(9800), stats.CommissionEarned)
}

func TestAggregateExcludesVoidedEntries(t *testing.T) {
	clickRepo := newFakeClickRepo()
	attributionRepo := newFakeAttributionRepo()
	ledgerRepo := newFakeLedgerRepo()
	statsUc := NewDefaultStatsUsecase(clickRepo, attributionRepo, ledgerRepo)

	ledgerUc := NewDefaultLedgerUsecase(ledgerRepo, newFakeTransactionRepo(), NewDefaultCommissionUsecase(newFakeRuleRepo()), nil, nil)
	_, err := ledgerUc.RecordCommission(testTransaction("tx-1", 10000, "r1"), testRule("rule-1", "r1", 70), domain.Split{CommissionAmount: 7000, PlatformAmount: 3000})
	require.NoError(t, err)
	_, err = ledgerUc.RecordCommission(testTransaction("tx-2", 4000, "r1"), testRule("rule-1", "r1", 70), domain.Split{CommissionAmount: 2800, PlatformAmount: 1200})
	require.NoError(t, err)

	// Refund tx-1 after payout: the entry stays in history but drops out
	// of earned totals
	require.NoError(t, ledgerUc.MarkTransferred("tx-1", "tr_1"))
	require.NoError(t, ledgerUc.VoidOnRefund("tx-1"))

	now := time.Now()
	stats, err := statsUc.AggregateByReferrer("r1", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(2800), stats.CommissionEarned)

	entry, err := ledgerUc.GetEntryByTransactionID("tx-1")
	require.NoError(t, err)
	require.Equal(t, domain.TransferVoided, entry.TransferStatus)
	require.True(t, entry.ReversalOwed)
}

func TestAggregateByPlatform(t *testing.T) {
	clickRepo := newFakeClickRepo()
	statsUc := NewDefaultStatsUsecase(clickRepo, newFakeAttributionRepo(), newFakeLedgerRepo())

	clickUc := NewDefaultClickUsecase(clickRepo, nil)
	now := time.Now()
	require.NoError(t, clickUc.RecordClick("post-1", "r1", "partnerhub", now))
	require.NoError(t, clickUc.RecordClick("post-2", "r1", "partnerhub", now))
	require.NoError(t, clickUc.RecordClick("post-3", "r1", "socialx", now))

	stats, err := statsUc.AggregateByPlatform("r1", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byPlatform := make(map[string]int64)
	for _, s := range stats {
		byPlatform[s.PlatformKey] = s.Clicks
	}
	require.Equal(t, int64(2), byPlatform["partnerhub"])
	require.Equal(t, int64(1), byPlatform["socialx"])
}

func TestRecordClickValidation(t *testing.T) {
	clickUc := NewDefaultClickUsecase(newFakeClickRepo(), nil)
	require.ErrorIs(t, clickUc.RecordClick("post-1", "", "partnerhub", time.Now()), domain.ErrValidation)
}
