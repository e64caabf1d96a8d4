package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	ledgerUsecase domain.LedgerUsecase
	metrics       *metrics.ReferralMetrics
}

func NewWebhookHandler(ledgerUsecase domain.LedgerUsecase, referralMetrics *metrics.ReferralMetrics) *WebhookHandler {
	return &WebhookHandler{
		ledgerUsecase: ledgerUsecase,
		metrics:       referralMetrics,
	}
}

// transactionEventRequest is the payment processor's payload contract.
type transactionEventRequest struct {
	TransactionID string    `json:"transactionId" binding:"required"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	ProductID     string    `json:"productId"`
	CustomerID    string    `json:"customerId"`
	ReferrerID    *string   `json:"referrerId"`
	Status        string    `json:"status" binding:"required"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HandleTransactionEvent processes the processor's status webhook.
// Redelivered events return 200 like the first delivery; a retryable
// failure returns 5xx so the processor redelivers.
func (h *WebhookHandler) HandleTransactionEvent(c *gin.Context) {
	var req transactionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.metrics != nil {
			h.metrics.RecordWebhookError("bad_payload")
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := &domain.TransactionEvent{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		ProductID:     req.ProductID,
		CustomerID:    req.CustomerID,
		ReferrerID:    req.ReferrerID,
		Status:        domain.TransactionStatus(strings.ToUpper(req.Status)),
		CreatedAt:     req.CreatedAt,
	}

	if err := h.ledgerUsecase.HandleTransactionEvent(event); err != nil {
		if h.metrics != nil {
			h.metrics.RecordWebhookError("processing")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

type markTransferredRequest struct {
	TransferID string `json:"transfer_id" binding:"required"`
}

func (h *WebhookHandler) MarkTransferred(c *gin.Context) {
	var req markTransferredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ledgerUsecase.MarkTransferred(c.Param("transactionID"), req.TransferID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WebhookHandler) MarkTransferFailed(c *gin.Context) {
	if err := h.ledgerUsecase.MarkTransferFailed(c.Param("transactionID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WebhookHandler) RetryTransfer(c *gin.Context) {
	if err := h.ledgerUsecase.RetryTransfer(c.Param("transactionID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WebhookHandler) GetLedgerEntry(c *gin.Context) {
	entry, err := h.ledgerUsecase.GetEntryByTransactionID(c.Param("transactionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
