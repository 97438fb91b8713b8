package services

import (
	"strings"
	"testing"

	"nestegg/internal/allocation"
	"nestegg/internal/pagination"
	"nestegg/internal/testutil"
)

func TestCreateAsset(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		asset, err := svc.CreateAsset(user.ID, "World ETF", allocation.ClassEquity, "etf", "VWCE", 500000, 450000, "EUR", "")
		testutil.AssertNoError(t, err)

		if asset.ID == 0 {
			t.Fatal("expected non-zero asset ID")
		}
		if asset.Class != allocation.ClassEquity {
			t.Errorf("expected class equity, got %s", asset.Class)
		}
		if asset.Value != 500000 {
			t.Errorf("expected value 500000, got %d", asset.Value)
		}
	})

	t.Run("unknown_class", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateAsset(user.ID, "Bad", allocation.AssetClass("tulips"), "", "", 100, 0, "USD", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateAsset(user.ID, "Bad", allocation.ClassEquity, "", "", -100, 0, "USD", "")
		testutil.AssertAppError(t, err, "INVALID_HOLDING_DATA")
	})

	t.Run("default_currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		asset, err := svc.CreateAsset(user.ID, "Savings", allocation.ClassCash, "", "", 100000, 0, "", "")
		testutil.AssertNoError(t, err)
		if asset.Currency != "USD" {
			t.Errorf("expected default currency USD, got %s", asset.Currency)
		}
	})
}

func TestGetUserAssets(t *testing.T) {
	t.Run("returns_user_assets_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestAsset(t, db, user1.ID, allocation.ClassEquity, 100000)
		testutil.CreateTestAsset(t, db, user1.ID, allocation.ClassBonds, 50000)
		testutil.CreateTestAsset(t, db, user2.ID, allocation.ClassCash, 25000)

		resp, err := svc.GetUserAssets(user1.ID, pagination.PageRequest{}, nil)
		testutil.AssertNoError(t, err)

		if resp.TotalItems != 2 {
			t.Errorf("expected 2 assets, got %d", resp.TotalItems)
		}
		for _, a := range resp.Data {
			if a.UserID != user1.ID {
				t.Errorf("got asset belonging to user %d", a.UserID)
			}
		}
	})

	t.Run("filter_by_class", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 100000)
		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassBonds, 50000)

		class := allocation.ClassBonds
		resp, err := svc.GetUserAssets(user.ID, pagination.PageRequest{}, &class)
		testutil.AssertNoError(t, err)

		if resp.TotalItems != 1 {
			t.Fatalf("expected 1 asset, got %d", resp.TotalItems)
		}
		if resp.Data[0].Class != allocation.ClassBonds {
			t.Errorf("expected bonds, got %s", resp.Data[0].Class)
		}
	})
}

func TestUpdateAsset(t *testing.T) {
	t.Run("update_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 100000)

		newValue := int64(120000)
		updated, err := svc.UpdateAsset(user.ID, asset.ID, "", &newValue, nil, nil, nil, nil)
		testutil.AssertNoError(t, err)

		if updated.Value != 120000 {
			t.Errorf("expected value 120000, got %d", updated.Value)
		}
	})

	t.Run("negative_value_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 100000)

		bad := int64(-1)
		_, err := svc.UpdateAsset(user.ID, asset.ID, "", &bad, nil, nil, nil, nil)
		testutil.AssertAppError(t, err, "INVALID_HOLDING_DATA")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestAsset(t, db, user1.ID, allocation.ClassEquity, 100000)

		_, err := svc.UpdateAsset(user2.ID, asset.ID, "Hijacked", nil, nil, nil, nil, nil)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestDeleteAsset(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 100000)

		testutil.AssertNoError(t, svc.DeleteAsset(user.ID, asset.ID))

		_, err := svc.GetAssetByID(user.ID, asset.ID)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteAsset(user.ID, 999999)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestExportCSV(t *testing.T) {
	t.Run("renders_decimal_amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 123456)

		data, err := svc.ExportCSV(user.ID)
		testutil.AssertNoError(t, err)

		out := string(data)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected header plus one row, got %d lines", len(lines))
		}
		if !strings.HasPrefix(lines[0], "name,class,") {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if !strings.Contains(lines[1], "1234.56") {
			t.Errorf("expected decimal value 1234.56 in row: %s", lines[1])
		}
	})
}
