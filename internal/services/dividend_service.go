package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
)

type dividendService struct {
	db *gorm.DB
}

// NewDividendService creates a new dividend service.
func NewDividendService(db *gorm.DB) DividendServicer {
	return &dividendService{db: db}
}

func (s *dividendService) CreateDividend(userID uint, assetID *uint, symbol string, amount int64, dividendType models.DividendType, paidAt time.Time, notes string) (*models.Dividend, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "dividend amount must be positive")
	}
	if assetID != nil {
		var count int64
		if err := s.db.Model(&models.Asset{}).Where("id = ? AND user_id = ?", *assetID, userID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return nil, apperrors.ErrAssetNotFound
		}
	}

	dividend := &models.Dividend{
		UserID:  userID,
		AssetID: assetID,
		Symbol:  symbol,
		Amount:  amount,
		Type:    dividendType,
		PaidAt:  paidAt,
		Notes:   notes,
	}
	if err := s.db.Create(dividend).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return dividend, nil
}

func (s *dividendService) GetUserDividends(userID uint, page pagination.PageRequest, from, to *time.Time) (*pagination.PageResponse[models.Dividend], error) {
	page.Defaults()

	query := s.db.Model(&models.Dividend{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("paid_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("paid_at <= ?", *to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var dividends []models.Dividend
	if err := query.Scopes(pagination.Paginate(page)).Order("paid_at DESC").Find(&dividends).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(dividends, page.Page, page.PageSize, total)
	return &resp, nil
}

func (s *dividendService) GetDividendByID(userID, dividendID uint) (*models.Dividend, error) {
	var dividend models.Dividend
	if err := s.db.Where("id = ? AND user_id = ?", dividendID, userID).First(&dividend).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDividendNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &dividend, nil
}

func (s *dividendService) DeleteDividend(userID, dividendID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", dividendID, userID).Delete(&models.Dividend{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDividendNotFound
	}
	return nil
}

// GetSummary computes trailing-twelve-month dividend metrics. Yield is
// income over current portfolio value; yield on cost uses the recorded
// cost basis instead. Both are 0 when the denominator is 0.
func (s *dividendService) GetSummary(userID uint) (*DividendSummary, error) {
	since := time.Now().AddDate(-1, 0, 0)

	var dividends []models.Dividend
	if err := s.db.Where("user_id = ? AND paid_at >= ?", userID, since).Find(&dividends).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &DividendSummary{}
	for i := range dividends {
		d := &dividends[i]
		summary.TotalTrailingYear += d.Amount
		summary.Calendar[int(d.PaidAt.Month())-1] += d.Amount
	}
	summary.MonthlyAverage = summary.TotalTrailingYear / 12

	var totals struct {
		Value     int64
		CostBasis int64
	}
	err := s.db.Model(&models.Asset{}).
		Select("COALESCE(SUM(value), 0) AS value, COALESCE(SUM(cost_basis), 0) AS cost_basis").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if totals.Value > 0 {
		summary.YieldPct = float64(summary.TotalTrailingYear) / float64(totals.Value) * 100
	}
	if totals.CostBasis > 0 {
		summary.YieldOnCostPct = float64(summary.TotalTrailingYear) / float64(totals.CostBasis) * 100
	}
	return summary, nil
}
