package services

import (
	"testing"
	"time"

	"nestegg/internal/allocation"
	"nestegg/internal/pagination"
	"nestegg/internal/testutil"
)

func TestRecordSnapshot(t *testing.T) {
	t.Run("splits_cash_and_invested", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 600000)
		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassCash, 200000)

		snapshot, err := svc.RecordSnapshot(user.ID, time.Now())
		testutil.AssertNoError(t, err)

		if snapshot.TotalValue != 800000 {
			t.Errorf("expected total 800000, got %d", snapshot.TotalValue)
		}
		if snapshot.CashValue != 200000 {
			t.Errorf("expected cash 200000, got %d", snapshot.CashValue)
		}
		if snapshot.AssetValue != 600000 {
			t.Errorf("expected invested 600000, got %d", snapshot.AssetValue)
		}
	})

	t.Run("same_day_upserts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db)
		user := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 100000)

		now := time.Now()
		_, err := svc.RecordSnapshot(user.ID, now)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, db.Model(asset).Update("value", 150000).Error)
		_, err = svc.RecordSnapshot(user.ID, now.Add(2*time.Hour))
		testutil.AssertNoError(t, err)

		resp, err := svc.GetSnapshots(user.ID, time.Time{}, time.Time{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if resp.TotalItems != 1 {
			t.Fatalf("expected 1 snapshot after upsert, got %d", resp.TotalItems)
		}
		if resp.Data[0].TotalValue != 150000 {
			t.Errorf("expected updated total 150000, got %d", resp.Data[0].TotalValue)
		}
	})
}

func TestComputeAndRecordSnapshots(t *testing.T) {
	t.Run("covers_active_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db)

		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		inactive := testutil.CreateTestUser(t, db)
		testutil.AssertNoError(t, db.Model(inactive).Update("is_active", false).Error)

		testutil.CreateTestAsset(t, db, user1.ID, allocation.ClassEquity, 100000)
		testutil.CreateTestAsset(t, db, user2.ID, allocation.ClassBonds, 50000)

		recorded, err := svc.ComputeAndRecordSnapshots(time.Now())
		testutil.AssertNoError(t, err)

		// At least the two active users from this test; the shared test
		// database may contain active users from other tests.
		if recorded < 2 {
			t.Errorf("expected at least 2 snapshots, got %d", recorded)
		}

		resp, err := svc.GetSnapshots(inactive.ID, time.Time{}, time.Time{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 0 {
			t.Errorf("expected no snapshots for inactive user, got %d", resp.TotalItems)
		}
	})
}

func TestGetSnapshots(t *testing.T) {
	t.Run("date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 100000)

		now := time.Now()
		_, err := svc.RecordSnapshot(user.ID, now.AddDate(0, 0, -10))
		testutil.AssertNoError(t, err)
		_, err = svc.RecordSnapshot(user.ID, now)
		testutil.AssertNoError(t, err)

		from := now.AddDate(0, 0, -5)
		resp, err := svc.GetSnapshots(user.ID, from, time.Time{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if resp.TotalItems != 1 {
			t.Errorf("expected 1 snapshot in range, got %d", resp.TotalItems)
		}
	})
}
