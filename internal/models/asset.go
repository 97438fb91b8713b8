package models

import "nestegg/internal/allocation"

// Asset represents a single holding in a user's inventory: a position in
// an asset class with its current market value. Sub-category and specific
// asset labels are free-form and feed the allocation comparison hierarchy.
// Monetary amounts are stored in cents.
type Asset struct {
	Base
	UserID        uint                  `gorm:"not null;index" json:"user_id"`
	Name          string                `gorm:"not null" json:"name"`
	Class         allocation.AssetClass `gorm:"not null" json:"class"`
	SubCategory   string                `json:"sub_category,omitempty"`
	SpecificAsset string                `json:"specific_asset,omitempty"`
	Value         int64                 `gorm:"type:bigint;not null" json:"value"`
	CostBasis     int64                 `gorm:"type:bigint;not null;default:0" json:"cost_basis"`
	Currency      string                `gorm:"not null;default:'USD'" json:"currency"`
	Notes         string                `json:"notes,omitempty"`
}

// Holding converts the asset into the comparator's input record.
func (a *Asset) Holding() allocation.Holding {
	return allocation.Holding{
		ID:            a.ID,
		Class:         a.Class,
		SubCategory:   a.SubCategory,
		SpecificAsset: a.SpecificAsset,
		Value:         a.Value,
	}
}
