package models

import "time"

// PortfolioSnapshot represents a point-in-time snapshot of a user's net worth.
// This is immutable time-series data — no Base embed, no soft deletes.
type PortfolioSnapshot struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_snapshots_user_time,unique" json:"user_id"`
	RecordedAt time.Time `gorm:"not null;index:idx_snapshots_user_time,unique" json:"recorded_at"`
	TotalValue int64     `gorm:"type:bigint;not null" json:"total_value"`
	CashValue  int64     `gorm:"type:bigint;not null" json:"cash_value"`
	AssetValue int64     `gorm:"type:bigint;not null" json:"asset_value"`
}
