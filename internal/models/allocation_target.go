package models

import "nestegg/internal/allocation"

// AllocationTarget is one row of a user's target allocation. Rows form a
// three-level hierarchy addressed by (class, sub_category, specific_asset):
//   - class row:          sub_category = "" and specific_asset = ""
//   - sub-category row:   specific_asset = ""
//   - specific-asset row: all three set
//
// Percent is the share of the parent level (class rows: share of the
// portfolio; sub rows: share of the class; specific rows: share of the
// sub-category). The cash class may instead carry a fixed currency amount,
// in which case UseFixedAmount is set and Percent is ignored.
type AllocationTarget struct {
	Base
	UserID         uint                  `gorm:"not null;index:idx_targets_user" json:"user_id"`
	Class          allocation.AssetClass `gorm:"not null" json:"class"`
	SubCategory    string                `gorm:"not null;default:''" json:"sub_category,omitempty"`
	SpecificAsset  string                `gorm:"not null;default:''" json:"specific_asset,omitempty"`
	Percent        float64               `gorm:"not null;default:0" json:"percent"`
	UseFixedAmount bool                  `gorm:"not null;default:false" json:"use_fixed_amount"`
	FixedAmount    int64                 `gorm:"type:bigint;not null;default:0" json:"fixed_amount"`
}

// IsClassRow reports whether the row targets a whole asset class.
func (t *AllocationTarget) IsClassRow() bool {
	return t.SubCategory == "" && t.SpecificAsset == ""
}

// IsSubCategoryRow reports whether the row targets a sub-category.
func (t *AllocationTarget) IsSubCategoryRow() bool {
	return t.SubCategory != "" && t.SpecificAsset == ""
}

// IsSpecificRow reports whether the row targets a specific asset.
func (t *AllocationTarget) IsSpecificRow() bool {
	return t.SubCategory != "" && t.SpecificAsset != ""
}
