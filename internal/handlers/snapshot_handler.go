package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
)

// SnapshotHandler handles net-worth snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// GetSnapshots lists net-worth snapshots for the authenticated user.
// @Summary     Get snapshots
// @Description Get the net-worth history, optionally within a date range
// @Tags        snapshots
// @Produce     json
// @Security    BearerAuth
// @Param       from      query string false "Start date (RFC 3339 or YYYY-MM-DD)"
// @Param       to        query string false "End date (RFC 3339 or YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PortfolioSnapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
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

	var from, to time.Time
	if p, err := parseTimeQuery(c, "from"); err != nil {
		respondWithError(c, err)
		return
	} else if p != nil {
		from = *p
	}
	if p, err := parseTimeQuery(c, "to"); err != nil {
		respondWithError(c, err)
		return
	} else if p != nil {
		to = *p
	}

	resp, err := h.snapshotService.GetSnapshots(userID, from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecordSnapshot records a snapshot of the user's current net worth.
// @Summary     Record a snapshot
// @Description Record the current net worth immediately instead of waiting for the nightly job
// @Tags        snapshots
// @Produce     json
// @Security    BearerAuth
// @Success     201 {object} models.PortfolioSnapshot "Snapshot recorded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshots [post]
func (h *SnapshotHandler) RecordSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.snapshotService.RecordSnapshot(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}
