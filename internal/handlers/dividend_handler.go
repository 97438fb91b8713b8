package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
)

// DividendHandler handles dividend tracking requests.
type DividendHandler struct {
	dividendService services.DividendServicer
	auditService    services.AuditServicer
}

// NewDividendHandler creates a new DividendHandler.
func NewDividendHandler(dividendService services.DividendServicer, auditService services.AuditServicer) *DividendHandler {
	return &DividendHandler{dividendService: dividendService, auditService: auditService}
}

// CreateDividendRequest represents the request payload for recording a dividend.
type CreateDividendRequest struct {
	AssetID *uint     `json:"asset_id"`
	Symbol  string    `json:"symbol" binding:"required,min=1,max=20"`
	Amount  int64     `json:"amount" binding:"required,gt=0"`
	Type    string    `json:"type" binding:"required,dividend_type"`
	PaidAt  time.Time `json:"paid_at" binding:"required"`
	Notes   string    `json:"notes" binding:"omitempty,max=1000"`
}

// CreateDividend records a dividend payment.
// @Summary     Record a dividend
// @Description Record a dividend payment, optionally linked to an asset
// @Tags        dividends
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDividendRequest true "Dividend details"
// @Success     201 {object} models.Dividend "Dividend recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dividends [post]
func (h *DividendHandler) CreateDividend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDividendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dividend, err := h.dividendService.CreateDividend(
		userID, req.AssetID, req.Symbol, req.Amount, models.DividendType(req.Type), req.PaidAt, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_DIVIDEND", "dividend", dividend.ID, c.ClientIP(),
		map[string]interface{}{"symbol": req.Symbol, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"dividend": dividend})
}

// GetDividends lists dividends for the authenticated user.
// @Summary     Get dividends
// @Description Get a paginated list of dividends, optionally within a date range
// @Tags        dividends
// @Produce     json
// @Security    BearerAuth
// @Param       from      query string false "Start date (RFC 3339)"
// @Param       to        query string false "End date (RFC 3339)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Dividend] "Paginated dividends"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dividends [get]
func (h *DividendHandler) GetDividends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.dividendService.GetUserDividends(userID, page, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteDividend deletes a dividend record.
// @Summary     Delete a dividend
// @Description Remove a dividend record
// @Tags        dividends
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Dividend ID"
// @Success     204 "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Dividend not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dividends/{id} [delete]
func (h *DividendHandler) DeleteDividend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dividendID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.dividendService.DeleteDividend(userID, dividendID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_DIVIDEND", "dividend", dividendID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetDividendSummary returns trailing-twelve-month dividend metrics.
// @Summary     Dividend summary
// @Description Get trailing-year dividend income, yield, and a monthly calendar
// @Tags        dividends
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DividendSummary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dividends/summary [get]
func (h *DividendHandler) GetDividendSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dividendService.GetSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// parseTimeQuery parses an optional RFC 3339 time query parameter.
func parseTimeQuery(c *gin.Context, param string) (*time.Time, error) {
	v := c.Query(param)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		// Accept a plain date as well.
		t, err = time.Parse("2006-01-02", v)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, param+" must be an RFC 3339 timestamp or YYYY-MM-DD date")
		}
	}
	return &t, nil
}
