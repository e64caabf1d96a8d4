package handlers

import (
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	programUsecase domain.ProgramUsecase
}

func NewProgramHandler(programUsecase domain.ProgramUsecase) *ProgramHandler {
	return &ProgramHandler{programUsecase: programUsecase}
}

type programRequest struct {
	PlatformKey  string `json:"platform_key" binding:"required"`
	Name         string `json:"name"`
	LinkTemplate string `json:"link_template"`
	IsActive     bool   `json:"is_active"`
}

func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program := &domain.ReferralProgram{
		PlatformKey:  req.PlatformKey,
		Name:         req.Name,
		LinkTemplate: req.LinkTemplate,
		IsActive:     req.IsActive,
	}
	if err := h.programUsecase.CreateProgram(program); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program := &domain.ReferralProgram{
		PlatformKey:  c.Param("platformKey"),
		Name:         req.Name,
		LinkTemplate: req.LinkTemplate,
		IsActive:     req.IsActive,
	}
	if err := h.programUsecase.UpdateProgram(program); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) GetProgram(c *gin.Context) {
	program, err := h.programUsecase.GetProgramByPlatformKey(c.Param("platformKey"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) GetPrograms(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 32)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 32)

	programs, total, err := h.programUsecase.GetPrograms(int32(page), int32(limit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"programs": programs,
		"total":    total,
	})
}

func (h *ProgramHandler) DeactivateProgram(c *gin.Context) {
	if err := h.programUsecase.DeactivateProgram(c.Param("platformKey")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProgramHandler) GenerateReferrerCode(c *gin.Context) {
	code, err := h.programUsecase.GenerateReferrerCode()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referrer_code": code})
}
