package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	BirthYear   int        `json:"birth_year,omitempty"` // Used by the equity/bond glide-path suggestion
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	Assets    []Asset            `gorm:"foreignKey:UserID" json:"assets,omitempty"`
	Targets   []AllocationTarget `gorm:"foreignKey:UserID" json:"targets,omitempty"`
	Dividends []Dividend         `gorm:"foreignKey:UserID" json:"dividends,omitempty"`
	Expenses  []Expense          `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
