package models

import "time"

// Expense represents a single spending entry. Amount is in cents.
type Expense struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	Date        time.Time `gorm:"not null" json:"date"`
	Recurring   bool      `gorm:"not null;default:false" json:"recurring"`
}
