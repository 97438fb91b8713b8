package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nestegg/internal/allocation"
	apperrors "nestegg/internal/errors"
	"nestegg/internal/pagination"
	"nestegg/internal/services"
)

// AssetHandler handles asset inventory requests.
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// CreateAssetRequest represents the request payload for creating an asset.
type CreateAssetRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=200"`
	Class         string  `json:"class" binding:"required,asset_class"`
	SubCategory   string  `json:"sub_category" binding:"omitempty,max=100"`
	SpecificAsset string  `json:"specific_asset" binding:"omitempty,max=100"`
	Value         int64   `json:"value" binding:"min=0"`
	CostBasis     int64   `json:"cost_basis" binding:"omitempty,min=0"`
	Currency      string  `json:"currency" binding:"omitempty,iso4217"`
	Notes         string  `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateAssetRequest represents the request payload for updating an asset.
type UpdateAssetRequest struct {
	Name          string  `json:"name" binding:"omitempty,min=1,max=200"`
	Value         *int64  `json:"value" binding:"omitempty,min=0"`
	CostBasis     *int64  `json:"cost_basis" binding:"omitempty,min=0"`
	SubCategory   *string `json:"sub_category" binding:"omitempty,max=100"`
	SpecificAsset *string `json:"specific_asset" binding:"omitempty,max=100"`
	Notes         *string `json:"notes" binding:"omitempty,max=1000"`
}

// CreateAsset handles the creation of a new asset.
// @Summary     Create an asset
// @Description Add a holding to the authenticated user's inventory
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(
		userID, req.Name, allocation.AssetClass(req.Class), req.SubCategory, req.SpecificAsset,
		req.Value, req.CostBasis, req.Currency, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_ASSET", "asset", asset.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "class": req.Class, "value": req.Value})

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// GetAssets handles listing assets for the authenticated user.
// @Summary     Get assets
// @Description Get a paginated list of assets, optionally filtered by class
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       class     query string false "Filter by asset class"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
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

	var class *allocation.AssetClass
	if v := c.Query("class"); v != "" {
		ac := allocation.AssetClass(v)
		if !ac.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset class: "+v))
			return
		}
		class = &ac
	}

	resp, err := h.assetService.GetUserAssets(userID, page, class)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAsset handles retrieving a single asset.
// @Summary     Get an asset
// @Description Get a single asset by ID
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} models.Asset "Asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(userID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset handles updating an asset.
// @Summary     Update an asset
// @Description Update fields on an existing asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Asset ID"
// @Param       request body UpdateAssetRequest true "Fields to update"
// @Success     200 {object} models.Asset "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(userID, assetID, req.Name, req.Value, req.CostBasis,
		req.SubCategory, req.SpecificAsset, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_ASSET", "asset", assetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// DeleteAsset handles deleting an asset.
// @Summary     Delete an asset
// @Description Remove an asset from the inventory
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     204 "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.DeleteAsset(userID, assetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ASSET", "asset", assetID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// ExportAssets streams the inventory as a CSV download.
// @Summary     Export assets
// @Description Download the full inventory as CSV
// @Tags        assets
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/export [get]
func (h *AssetHandler) ExportAssets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.assetService.ExportCSV(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("assets-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
