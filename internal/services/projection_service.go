package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/fire"
	"nestegg/internal/models"
)

type projectionService struct {
	db *gorm.DB
}

// NewProjectionService creates a new FIRE projection service.
func NewProjectionService(db *gorm.DB) ProjectionServicer {
	return &projectionService{db: db}
}

// GetProjection runs a FIRE projection. NetWorth defaults to the user's
// current asset total and AnnualExpenses to their trailing-year spending,
// so a request with only savings and rates already produces a useful plan.
func (s *projectionService) GetProjection(userID uint, req ProjectionRequest) (*ProjectionResult, error) {
	if req.WithdrawalRatePct <= 0 {
		req.WithdrawalRatePct = 4
	}
	if req.Years <= 0 {
		req.Years = 30
	}
	if req.Years > 100 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "projection horizon cannot exceed 100 years")
	}

	if req.NetWorth == 0 {
		var total int64
		err := s.db.Model(&models.Asset{}).
			Select("COALESCE(SUM(value), 0)").
			Where("user_id = ?", userID).
			Scan(&total).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		req.NetWorth = total
	}
	if req.AnnualExpenses == 0 {
		since := time.Now().AddDate(-1, 0, 0)
		var total int64
		err := s.db.Model(&models.Expense{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND date >= ?", userID, since).
			Scan(&total).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		req.AnnualExpenses = total
	}

	in := fire.Input{
		NetWorth:          req.NetWorth,
		AnnualExpenses:    req.AnnualExpenses,
		AnnualSavings:     req.AnnualSavings,
		ExpectedReturnPct: req.ExpectedReturnPct,
		WithdrawalRatePct: req.WithdrawalRatePct,
	}
	years := fire.YearsToTarget(in)
	reachable := !math.IsInf(years, 1)
	if !reachable {
		// +Inf is not representable in JSON.
		years = 0
	}

	return &ProjectionResult{
		Input:         in,
		TargetValue:   fire.Number(in.AnnualExpenses, in.WithdrawalRatePct),
		YearsToTarget: years,
		Reachable:     reachable,
		Series:        fire.Project(in, req.Years),
	}, nil
}
