package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"nestegg/internal/allocation"
	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
)

type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new asset service.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

func (s *assetService) CreateAsset(userID uint, name string, class allocation.AssetClass, subCategory, specificAsset string, value, costBasis int64, currency, notes string) (*models.Asset, error) {
	if !class.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset class: "+string(class))
	}
	if value < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidHoldingData, "asset value cannot be negative")
	}
	if currency == "" {
		currency = "USD"
	}

	asset := &models.Asset{
		UserID:        userID,
		Name:          name,
		Class:         class,
		SubCategory:   subCategory,
		SpecificAsset: specificAsset,
		Value:         value,
		CostBasis:     costBasis,
		Currency:      currency,
		Notes:         notes,
	}
	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

func (s *assetService) GetUserAssets(userID uint, page pagination.PageRequest, class *allocation.AssetClass) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	query := s.db.Model(&models.Asset{}).Where("user_id = ?", userID)
	if class != nil {
		query = query.Where("class = ?", *class)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := query.Scopes(pagination.Paginate(page)).Order("value DESC").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(assets, page.Page, page.PageSize, total)
	return &resp, nil
}

func (s *assetService) GetAssetByID(userID, assetID uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("id = ? AND user_id = ?", assetID, userID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

func (s *assetService) UpdateAsset(userID, assetID uint, name string, value, costBasis *int64, subCategory, specificAsset, notes *string) (*models.Asset, error) {
	asset, err := s.GetAssetByID(userID, assetID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if value != nil {
		if *value < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidHoldingData, "asset value cannot be negative")
		}
		updates["value"] = *value
	}
	if costBasis != nil {
		updates["cost_basis"] = *costBasis
	}
	if subCategory != nil {
		updates["sub_category"] = *subCategory
	}
	if specificAsset != nil {
		updates["specific_asset"] = *specificAsset
	}
	if notes != nil {
		updates["notes"] = *notes
	}
	if len(updates) == 0 {
		return asset, nil
	}

	if err := s.db.Model(asset).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

func (s *assetService) DeleteAsset(userID, assetID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", assetID, userID).Delete(&models.Asset{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

func (s *assetService) GetInventory(userID uint) ([]allocation.Holding, error) {
	var assets []models.Asset
	if err := s.db.Where("user_id = ?", userID).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	holdings := make([]allocation.Holding, 0, len(assets))
	for i := range assets {
		holdings = append(holdings, assets[i].Holding())
	}
	return holdings, nil
}

// ExportCSV renders the user's full inventory as CSV. Monetary columns are
// decimal currency units, not cents.
func (s *assetService) ExportCSV(userID uint) ([]byte, error) {
	var assets []models.Asset
	if err := s.db.Where("user_id = ?", userID).Order("class, name").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"name", "class", "sub_category", "specific_asset", "value", "cost_basis", "currency", "notes"}
	if err := w.Write(header); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range assets {
		a := &assets[i]
		record := []string{
			a.Name,
			string(a.Class),
			a.SubCategory,
			a.SpecificAsset,
			centsToDecimal(a.Value),
			centsToDecimal(a.CostBasis),
			a.Currency,
			a.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

func centsToDecimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
