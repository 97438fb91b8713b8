package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestegg/internal/allocation"
	"nestegg/internal/services"
)

// AllocationHandler handles allocation comparison requests.
type AllocationHandler struct {
	allocationService services.AllocationServicer
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocationService services.AllocationServicer) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

// AllocationResponse is the JSON shape of the comparison result. The
// comparator's struct-keyed maps are flattened to "class:sub" and
// "class:sub:asset" string keys here, at the presentation boundary.
type AllocationResponse struct {
	TotalValue    int64                       `json:"total_value"`
	ByClass       map[string]allocation.Entry `json:"by_class"`
	BySubCategory map[string]allocation.Entry `json:"by_sub_category"`
	BySpecific    map[string]allocation.Entry `json:"by_specific"`
}

func toAllocationResponse(result *allocation.Result) AllocationResponse {
	resp := AllocationResponse{
		TotalValue:    result.TotalValue,
		ByClass:       make(map[string]allocation.Entry, len(result.ByClass)),
		BySubCategory: make(map[string]allocation.Entry, len(result.BySubCategory)),
		BySpecific:    make(map[string]allocation.Entry, len(result.BySpecific)),
	}
	for class, entry := range result.ByClass {
		resp.ByClass[string(class)] = entry
	}
	for key, entry := range result.BySubCategory {
		resp.BySubCategory[key.String()] = entry
	}
	for key, entry := range result.BySpecific {
		resp.BySpecific[key.String()] = entry
	}
	return resp
}

// GetAllocation runs the allocation comparison for the authenticated user.
// @Summary     Compare allocation
// @Description Compare the current inventory against the target allocation and derive buy/sell/hold actions
// @Tags        allocation
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} AllocationResponse "Comparison result"
// @Failure     400 {object} ErrorResponse "Invalid holding data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocation [get]
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.allocationService.GetAllocation(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAllocationResponse(result))
}
