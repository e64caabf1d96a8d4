package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type RuleHandler struct {
	commissionUsecase domain.CommissionUsecase
}

func NewRuleHandler(commissionUsecase domain.CommissionUsecase) *RuleHandler {
	return &RuleHandler{commissionUsecase: commissionUsecase}
}

type ruleRequest struct {
	ReferrerID        string     `json:"referrer_id" binding:"required"`
	ProductID         *string    `json:"product_id"`
	CommissionPercent float64    `json:"commission_percent"`
	StartDate         time.Time  `json:"start_date" binding:"required"`
	EndDate           *time.Time `json:"end_date"`
	Priority          int32      `json:"priority"`
	CreatedBy         string     `json:"created_by"`
}

func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req ruleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule := &domain.CommissionRule{
		ReferrerID:        req.ReferrerID,
		ProductID:         req.ProductID,
		CommissionPercent: req.CommissionPercent,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Priority:          req.Priority,
		CreatedBy:         req.CreatedBy,
	}
	if err := h.commissionUsecase.CreateRule(rule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *RuleHandler) UpdateRule(c *gin.Context) {
	var req ruleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule := &domain.CommissionRule{
		ID:                c.Param("ruleID"),
		ReferrerID:        req.ReferrerID,
		ProductID:         req.ProductID,
		CommissionPercent: req.CommissionPercent,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Priority:          req.Priority,
	}
	if err := h.commissionUsecase.UpdateRule(rule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *RuleHandler) DeleteRule(c *gin.Context) {
	if err := h.commissionUsecase.DeleteRule(c.Param("ruleID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RuleHandler) GetRule(c *gin.Context) {
	rule, err := h.commissionUsecase.GetRuleByID(c.Param("ruleID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *RuleHandler) GetRulesByReferrer(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 32)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 32)

	rules, total, err := h.commissionUsecase.GetRulesByReferrerID(c.Param("referrerID"), int32(page), int32(limit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rules": rules,
		"total": total,
	})
}
