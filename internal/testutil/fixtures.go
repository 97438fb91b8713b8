package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nestegg/internal/allocation"
	"nestegg/internal/models"
)

var counter int64

// next returns a process-unique sequence number for fixture data.
func next() int64 {
	return atomic.AddInt64(&counter, 1)
}

// CreateTestUser creates a user with a unique email and the password "password123".
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	n := next()
	user := &models.User{
		Email:     fmt.Sprintf("user%d@example.com", n),
		Password:  string(hashed),
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%d", n),
		IsActive:  true,
		BirthYear: 1990,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAsset creates an asset for the user. Value is in cents.
func CreateTestAsset(t *testing.T, db *gorm.DB, userID uint, class allocation.AssetClass, value int64) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		UserID:   userID,
		Name:     fmt.Sprintf("Asset %d", next()),
		Class:    class,
		Value:    value,
		Currency: "USD",
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestTarget creates a class-level target row for the user.
func CreateTestTarget(t *testing.T, db *gorm.DB, userID uint, class allocation.AssetClass, percent float64) *models.AllocationTarget {
	t.Helper()

	target := &models.AllocationTarget{
		UserID:  userID,
		Class:   class,
		Percent: percent,
	}
	if err := db.Create(target).Error; err != nil {
		t.Fatalf("failed to create test target: %v", err)
	}
	return target
}

// CreateTestDividend creates a cash dividend paid at the given time. Amount is in cents.
func CreateTestDividend(t *testing.T, db *gorm.DB, userID uint, amount int64, paidAt time.Time) *models.Dividend {
	t.Helper()

	dividend := &models.Dividend{
		UserID: userID,
		Symbol: fmt.Sprintf("SYM%d", next()),
		Amount: amount,
		Type:   models.DividendTypeCash,
		PaidAt: paidAt,
	}
	if err := db.Create(dividend).Error; err != nil {
		t.Fatalf("failed to create test dividend: %v", err)
	}
	return dividend
}

// CreateTestExpense creates an expense on the given date. Amount is in cents.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, category string, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
