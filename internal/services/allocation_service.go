package services

import (
	"nestegg/internal/allocation"
)

type allocationService struct {
	assets  AssetServicer
	targets TargetServicer
}

// NewAllocationService creates a new allocation comparison service.
func NewAllocationService(assets AssetServicer, targets TargetServicer) AllocationServicer {
	return &allocationService{assets: assets, targets: targets}
}

// GetAllocation loads the user's inventory and targets and runs the
// comparator. Nothing is cached; the result always reflects current data.
func (s *allocationService) GetAllocation(userID uint) (*allocation.Result, error) {
	holdings, err := s.assets.GetInventory(userID)
	if err != nil {
		return nil, err
	}
	targets, err := s.targets.GetTargets(userID)
	if err != nil {
		return nil, err
	}
	return allocation.Compare(holdings, targets)
}
