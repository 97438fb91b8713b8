package models

import "time"

// DividendType classifies a dividend payment.
type DividendType string

const (
	DividendTypeCash    DividendType = "cash"
	DividendTypeStock   DividendType = "stock"
	DividendTypeSpecial DividendType = "special"
)

// Dividend represents a single dividend payment received by the user.
// Amount is in cents.
type Dividend struct {
	Base
	UserID  uint         `gorm:"not null;index" json:"user_id"`
	AssetID *uint        `json:"asset_id,omitempty"`
	Symbol  string       `gorm:"not null" json:"symbol"`
	Amount  int64        `gorm:"type:bigint;not null" json:"amount"`
	Type    DividendType `gorm:"not null;default:'cash'" json:"type"`
	PaidAt  time.Time    `gorm:"not null" json:"paid_at"`
	Notes   string       `json:"notes,omitempty"`

	Asset *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}
