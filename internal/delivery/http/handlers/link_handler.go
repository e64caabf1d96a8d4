package handlers

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	linkUsecase  domain.LinkUsecase
	clickUsecase domain.ClickUsecase
}

func NewLinkHandler(linkUsecase domain.LinkUsecase, clickUsecase domain.ClickUsecase) *LinkHandler {
	return &LinkHandler{
		linkUsecase:  linkUsecase,
		clickUsecase: clickUsecase,
	}
}

type resolveLinkRequest struct {
	UserID         string `json:"user_id"`
	DestinationURL string `json:"destination_url" binding:"required"`
	PlatformKey    string `json:"platform_key"`
	ReferrerCode   string `json:"referrer_code" binding:"required"`
}

func (h *LinkHandler) Resolve(c *gin.Context) {
	var req resolveLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved, err := h.linkUsecase.Resolve(req.UserID, req.DestinationURL, req.PlatformKey, req.ReferrerCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": resolved})
}

type setLinkRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	PlatformKey string `json:"platform_key" binding:"required"`
	URL         string `json:"url"`
}

func (h *LinkHandler) SetLink(c *gin.Context) {
	var req setLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.linkUsecase.SetLink(&domain.ReferralLink{
		UserID:      req.UserID,
		PlatformKey: req.PlatformKey,
		URL:         req.URL,
	}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LinkHandler) GetLinks(c *gin.Context) {
	links, err := h.linkUsecase.GetLinksByUserID(c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}

type recordClickRequest struct {
	ContentID    string    `json:"content_id"`
	ReferrerCode string    `json:"referrer_code" binding:"required"`
	PlatformKey  string    `json:"platform_key"`
	Timestamp    time.Time `json:"timestamp"`
}

func (h *LinkHandler) RecordClick(c *gin.Context) {
	var req recordClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.clickUsecase.RecordClick(req.ContentID, req.ReferrerCode, req.PlatformKey, req.Timestamp); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
