package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReferralMetrics holds every metric of the referral engine.
type ReferralMetrics struct {
	AttributionsCapturedTotal prometheus.CounterVec
	ClicksRecordedTotal       prometheus.CounterVec

	CommissionsRecordedTotal       prometheus.CounterVec
	CommissionsRecordedAmountTotal prometheus.CounterVec
	CommissionsVoidedTotal         prometheus.CounterVec
	CommissionsVoidedAmountTotal   prometheus.CounterVec
	ReversalsOwedTotal             prometheus.CounterVec

	TransferStatusTotal         prometheus.CounterVec
	UnresolvedTransactionsTotal prometheus.CounterVec
	WebhookErrorsTotal          prometheus.CounterVec
}

func NewReferralMetrics() *ReferralMetrics {
	return &ReferralMetrics{
		AttributionsCapturedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "attributions_captured_total",
				Help: "First-touch attributions captured",
			},
			[]string{"referrer_code"},
		),

		ClicksRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clicks_recorded_total",
				Help: "Attributed clicks recorded",
			},
			[]string{"platform_key"},
		),

		CommissionsRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commissions_recorded_total",
				Help: "Ledger entries created",
			},
			[]string{"referrer_id", "currency"},
		),

		CommissionsRecordedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commissions_recorded_amount_total",
				Help: "Commission amount recorded, in minor units",
			},
			[]string{"referrer_id", "currency"},
		),

		CommissionsVoidedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commissions_voided_total",
				Help: "Ledger entries voided on refund",
			},
			[]string{"referrer_id", "currency"},
		),

		CommissionsVoidedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commissions_voided_amount_total",
				Help: "Commission amount voided, in minor units",
			},
			[]string{"referrer_id", "currency"},
		),

		ReversalsOwedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reversals_owed_total",
				Help: "Voided entries whose payout was already transferred",
			},
			[]string{"referrer_id"},
		),

		TransferStatusTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_status_transitions_total",
				Help: "Ledger transfer status transitions",
			},
			[]string{"status"},
		),

		UnresolvedTransactionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unresolved_transactions_total",
				Help: "Attributed transactions with no matching commission rule",
			},
			[]string{"referrer_id"},
		),

		WebhookErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_errors_total",
				Help: "Payment webhook processing errors",
			},
			[]string{"error_type"},
		),
	}
}

func (m *ReferralMetrics) RecordAttributionCaptured(referrerCode string) {
	m.AttributionsCapturedTotal.WithLabelValues(referrerCode).Inc()
}

func (m *ReferralMetrics) RecordClick(platformKey string) {
	m.ClicksRecordedTotal.WithLabelValues(platformKey).Inc()
}

func (m *ReferralMetrics) RecordCommissionRecorded(referrerID, currency string, amount float64) {
	m.CommissionsRecordedTotal.WithLabelValues(referrerID, currency).Inc()
	m.CommissionsRecordedAmountTotal.WithLabelValues(referrerID, currency).Add(amount)
}

func (m *ReferralMetrics) RecordCommissionVoided(referrerID, currency string, amount float64, reversalOwed bool) {
	m.CommissionsVoidedTotal.WithLabelValues(referrerID, currency).Inc()
	m.CommissionsVoidedAmountTotal.WithLabelValues(referrerID, currency).Add(amount)
	if reversalOwed {
		m.ReversalsOwedTotal.WithLabelValues(referrerID).Inc()
	}
}

func (m *ReferralMetrics) RecordTransferStatus(status string) {
	m.TransferStatusTotal.WithLabelValues(status).Inc()
}

func (m *ReferralMetrics) RecordUnresolvedTransaction(referrerID string) {
	m.UnresolvedTransactionsTotal.WithLabelValues(referrerID).Inc()
}

func (m *ReferralMetrics) RecordWebhookError(errorType string) {
	m.WebhookErrorsTotal.WithLabelValues(errorType).Inc()
}
