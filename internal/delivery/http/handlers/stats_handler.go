package handlers

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUsecase domain.StatsUsecase
}

func NewStatsHandler(statsUsecase domain.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

func parseDateRange(c *gin.Context) (time.Time, time.Time) {
	from := time.Time{}
	to := time.Now()

	if v := c.Query("from"); v != "" {
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			from = parsed
		}
	}
	if v := c.Query("to"); v != "" {
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			to = parsed
		}
	}
	return from, to
}

func (h *StatsHandler) GetReferrerStats(c *gin.Context) {
	from, to := parseDateRange(c)

	stats, err := h.statsUsecase.AggregateByReferrer(c.Param("referrerID"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetPlatformStats(c *gin.Context) {
	from, to := parseDateRange(c)

	stats, err := h.statsUsecase.AggregateByPlatform(c.Param("referrerID"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"platforms": stats})
}
