package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/services"
)

// TargetHandler handles allocation target requests.
type TargetHandler struct {
	targetService services.TargetServicer
	auditService  services.AuditServicer
}

// NewTargetHandler creates a new TargetHandler.
func NewTargetHandler(targetService services.TargetServicer, auditService services.AuditServicer) *TargetHandler {
	return &TargetHandler{targetService: targetService, auditService: auditService}
}

// ReplaceTargetsRequest represents the request payload for replacing the
// target allocation. The full configuration is submitted at once so it can
// be validated as a whole.
type ReplaceTargetsRequest struct {
	Targets []services.TargetRow `json:"targets" binding:"required,dive"`
}

// GetTargets returns the user's target allocation rows.
// @Summary     Get targets
// @Description Get the authenticated user's target allocation
// @Tags        targets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.AllocationTarget "Target rows"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /targets [get]
func (h *TargetHandler) GetTargets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.targetService.GetTargetRows(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"targets": rows})
}

// ReplaceTargets replaces the user's full target allocation.
// @Summary     Replace targets
// @Description Validate and replace the full target allocation configuration
// @Tags        targets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReplaceTargetsRequest true "Target rows"
// @Success     200 {object} map[string]interface{} "Saved"
// @Failure     400 {object} ErrorResponse "Invalid input or percentages"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /targets [put]
func (h *TargetHandler) ReplaceTargets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReplaceTargetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.targetService.ReplaceTargets(userID, req.Targets); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REPLACE_TARGETS", "allocation_target", 0, c.ClientIP(),
		map[string]interface{}{"rows": len(req.Targets)})

	c.JSON(http.StatusOK, gin.H{"saved": len(req.Targets)})
}

// AutoCalculate suggests equity/bond percentages from the user's age.
// @Summary     Suggest equity/bond split
// @Description Compute an age-based equity/bond split, adjusted by the risk-free rate
// @Tags        targets
// @Produce     json
// @Security    BearerAuth
// @Param       risk_free_rate query number false "Risk-free rate in percent (default 0)"
// @Success     200 {object} services.AutoTargetSuggestion "Suggested split"
// @Failure     400 {object} ErrorResponse "Invalid input or missing birth year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /targets/auto [get]
func (h *TargetHandler) AutoCalculate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	riskFreeRate := 0.0
	if v := c.Query("risk_free_rate"); v != "" {
		riskFreeRate, err = strconv.ParseFloat(v, 64)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "risk_free_rate must be a number"))
			return
		}
	}

	suggestion, err := h.targetService.AutoCalculate(userID, riskFreeRate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
