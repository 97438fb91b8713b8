package services

import (
	"testing"
	"time"

	"nestegg/internal/pagination"
	"nestegg/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "groceries", "weekly shop", 8500, time.Now(), false)
		testutil.AssertNoError(t, err)

		if expense.ID == 0 {
			t.Fatal("expected non-zero expense ID")
		}
		if expense.Category != "groceries" {
			t.Errorf("expected category groceries, got %s", expense.Category)
		}
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "", "", 100, time.Now(), false)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "rent", "", -100, time.Now(), false)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserExpenses(t *testing.T) {
	t.Run("category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		now := time.Now()
		testutil.CreateTestExpense(t, db, user.ID, "rent", 150000, now)
		testutil.CreateTestExpense(t, db, user.ID, "groceries", 8500, now)

		category := "rent"
		resp, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, nil, nil, &category)
		testutil.AssertNoError(t, err)

		if resp.TotalItems != 1 {
			t.Fatalf("expected 1 expense, got %d", resp.TotalItems)
		}
		if resp.Data[0].Amount != 150000 {
			t.Errorf("expected amount 150000, got %d", resp.Data[0].Amount)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("updates_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user.ID, "rent", 150000, time.Now())

		amount := int64(160000)
		updated, err := svc.UpdateExpense(user.ID, expense.ID, nil, nil, &amount, nil)
		testutil.AssertNoError(t, err)

		if updated.Amount != 160000 {
			t.Errorf("expected amount 160000, got %d", updated.Amount)
		}
	})
}

func TestGetMonthlySummary(t *testing.T) {
	t.Run("totals_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		inMonth := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpense(t, db, user.ID, "rent", 150000, inMonth)
		testutil.CreateTestExpense(t, db, user.ID, "groceries", 8500, inMonth.AddDate(0, 0, 5))
		testutil.CreateTestExpense(t, db, user.ID, "groceries", 9500, inMonth.AddDate(0, 0, 10))
		// Next month, must be excluded.
		testutil.CreateTestExpense(t, db, user.ID, "rent", 150000, inMonth.AddDate(0, 1, 0))

		summary, err := svc.GetMonthlySummary(user.ID, 2026, time.March)
		testutil.AssertNoError(t, err)

		if summary.Total != 168000 {
			t.Errorf("expected total 168000, got %d", summary.Total)
		}
		if summary.ByCategory["groceries"] != 18000 {
			t.Errorf("expected groceries 18000, got %d", summary.ByCategory["groceries"])
		}
		if summary.ByCategory["rent"] != 150000 {
			t.Errorf("expected rent 150000, got %d", summary.ByCategory["rent"])
		}
	})
}
