package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type AttributionHandler struct {
	attributionUsecase domain.AttributionUsecase
}

func NewAttributionHandler(attributionUsecase domain.AttributionUsecase) *AttributionHandler {
	return &AttributionHandler{attributionUsecase: attributionUsecase}
}

type captureRequest struct {
	VisitorID    string `json:"visitor_id" binding:"required"`
	ReferrerCode string `json:"referrer_code"`
}

// Capture records first-touch attribution. A missing referrer code and a
// duplicate capture both succeed silently; the visitor never sees an
// attribution error.
func (h *AttributionHandler) Capture(c *gin.Context) {
	var req captureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.attributionUsecase.Capture(req.VisitorID, req.ReferrerCode); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AttributionHandler) CurrentReferrer(c *gin.Context) {
	visitorID := c.Param("visitorID")

	referrerCode, err := h.attributionUsecase.CurrentReferrer(visitorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"visitor_id":    visitorID,
		"referrer_code": referrerCode,
		"attributed":    referrerCode != "",
	})
}
