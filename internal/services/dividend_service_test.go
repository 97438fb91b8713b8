package services

import (
	"testing"
	"time"

	"nestegg/internal/allocation"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
	"nestegg/internal/testutil"
)

func TestCreateDividend(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDividendService(db)
		user := testutil.CreateTestUser(t, db)

		dividend, err := svc.CreateDividend(user.ID, nil, "VWCE", 12500, models.DividendTypeCash, time.Now(), "")
		testutil.AssertNoError(t, err)

		if dividend.ID == 0 {
			t.Fatal("expected non-zero dividend ID")
		}
		if dividend.Amount != 12500 {
			t.Errorf("expected amount 12500, got %d", dividend.Amount)
		}
	})

	t.Run("linked_to_asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDividendService(db)
		user := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 500000)

		dividend, err := svc.CreateDividend(user.ID, &asset.ID, "VWCE", 5000, models.DividendTypeCash, time.Now(), "")
		testutil.AssertNoError(t, err)
		if dividend.AssetID == nil || *dividend.AssetID != asset.ID {
			t.Error("expected dividend linked to asset")
		}
	})

	t.Run("foreign_asset_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDividendService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestAsset(t, db, user2.ID, allocation.ClassEquity, 500000)

		_, err := svc.CreateDividend(user1.ID, &asset.ID, "VWCE", 5000, models.DividendTypeCash, time.Now(), "")
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDividendService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateDividend(user.ID, nil, "VWCE", 0, models.DividendTypeCash, time.Now(), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserDividends(t *testing.T) {
	t.Run("date_range_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDividendService(db)
		user := testutil.CreateTestUser(t, db)

		now := time.Now()
		testutil.CreateTestDividend(t, db, user.ID, 1000, now.AddDate(0, -1, 0))
		testutil.CreateTestDividend(t, db, user.ID, 2000, now.AddDate(0, -8, 0))

		from := now.AddDate(0, -3, 0)
		resp, err := svc.GetUserDividends(user.ID, pagination.PageRequest{}, &from, nil)
		testutil.AssertNoError(t, err)

		if resp.TotalItems != 1 {
			t.Fatalf("expected 1 dividend in range, got %d", resp.TotalItems)
		}
		if resp.Data[0].Amount != 1000 {
			t.Errorf("expected amount 1000, got %d", resp.Data[0].Amount)
		}
	})
}

func TestDeleteDividend(t *testing.T) {
	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDividendService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		dividend := testutil.CreateTestDividend(t, db, user1.ID, 1000, time.Now())

		err := svc.DeleteDividend(user2.ID, dividend.ID)
		testutil.AssertAppError(t, err, "DIVIDEND_NOT_FOUND")
	})
}

func TestGetDividendSummary(t *testing.T) {
	t.Run("trailing_year_metrics", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDividendService(db)
		user := testutil.CreateTestUser(t, db)

		now := time.Now()
		testutil.CreateTestDividend(t, db, user.ID, 60000, now.AddDate(0, -2, 0))
		testutil.CreateTestDividend(t, db, user.ID, 60000, now.AddDate(0, -5, 0))
		// Outside the trailing year, must be ignored.
		testutil.CreateTestDividend(t, db, user.ID, 99999, now.AddDate(-2, 0, 0))

		asset := testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 6000000)
		testutil.AssertNoError(t, db.Model(asset).Update("cost_basis", 4000000).Error)

		summary, err := svc.GetSummary(user.ID)
		testutil.AssertNoError(t, err)

		if summary.TotalTrailingYear != 120000 {
			t.Errorf("expected trailing total 120000, got %d", summary.TotalTrailingYear)
		}
		if summary.MonthlyAverage != 10000 {
			t.Errorf("expected monthly average 10000, got %d", summary.MonthlyAverage)
		}
		if summary.YieldPct != 2.0 {
			t.Errorf("expected yield 2.0, got %v", summary.YieldPct)
		}
		if summary.YieldOnCostPct != 3.0 {
			t.Errorf("expected yield on cost 3.0, got %v", summary.YieldOnCostPct)
		}

		var bucketed int64
		for _, v := range summary.Calendar {
			bucketed += v
		}
		if bucketed != 120000 {
			t.Errorf("expected calendar buckets to sum to 120000, got %d", bucketed)
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDividendService(db)
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetSummary(user.ID)
		testutil.AssertNoError(t, err)

		if summary.TotalTrailingYear != 0 || summary.YieldPct != 0 || summary.YieldOnCostPct != 0 {
			t.Errorf("expected zero summary, got %+v", summary)
		}
	})
}
