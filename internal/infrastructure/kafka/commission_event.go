package kafka

const (
	CommissionRecorded = "COMMISSION_RECORDED"
	CommissionPaid     = "COMMISSION_PAID"
	CommissionVoided   = "COMMISSION_VOIDED"
)

type CommissionEvent struct {
	TransactionID    string `json:"transaction_id"`
	ReferrerID       string `json:"referrer_id"`
	RuleID           string `json:"rule_id"`
	CommissionAmount int64  `json:"commission_amount"`
	PlatformAmount   int64  `json:"platform_amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	ReversalOwed     bool   `json:"reversal_owed,omitempty"`
}
