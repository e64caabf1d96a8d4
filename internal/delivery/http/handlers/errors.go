package handlers

import (
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Integrity violations
// stay 500 on purpose: they indicate a bug upstream, not caller input.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEntryVoided),
		errors.Is(err, domain.ErrInvalidTransferState),
		errors.Is(err, domain.ErrTerminalTransaction):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
