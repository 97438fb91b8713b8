package services

import (
	"testing"

	"nestegg/internal/allocation"
	"nestegg/internal/testutil"
)

func TestGetAllocation(t *testing.T) {
	t.Run("compares_inventory_against_targets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		assets := NewAssetService(db)
		targets := NewTargetService(db)
		svc := NewAllocationService(assets, targets)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 600000)
		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassBonds, 400000)
		testutil.AssertNoError(t, targets.ReplaceTargets(user.ID, []TargetRow{
			{Class: allocation.ClassEquity, Percent: 50},
			{Class: allocation.ClassBonds, Percent: 50},
		}))

		result, err := svc.GetAllocation(user.ID)
		testutil.AssertNoError(t, err)

		if result.TotalValue != 1000000 {
			t.Fatalf("expected total 1000000, got %d", result.TotalValue)
		}
		equity := result.ByClass[allocation.ClassEquity]
		if equity.Action != allocation.ActionSell {
			t.Errorf("expected sell for equity, got %s", equity.Action)
		}
		bonds := result.ByClass[allocation.ClassBonds]
		if bonds.Action != allocation.ActionBuy {
			t.Errorf("expected buy for bonds, got %s", bonds.Action)
		}
	})

	t.Run("no_targets_configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		assets := NewAssetService(db)
		targets := NewTargetService(db)
		svc := NewAllocationService(assets, targets)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestAsset(t, db, user.ID, allocation.ClassEquity, 100000)

		result, err := svc.GetAllocation(user.ID)
		testutil.AssertNoError(t, err)

		equity := result.ByClass[allocation.ClassEquity]
		if equity.TargetPercent != 0 {
			t.Errorf("expected zero target, got %v", equity.TargetPercent)
		}
		if equity.Action != allocation.ActionSell {
			t.Errorf("expected sell against a zero target, got %s", equity.Action)
		}
	})

	t.Run("empty_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		assets := NewAssetService(db)
		targets := NewTargetService(db)
		svc := NewAllocationService(assets, targets)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, targets.ReplaceTargets(user.ID, []TargetRow{
			{Class: allocation.ClassEquity, Percent: 100},
		}))

		result, err := svc.GetAllocation(user.ID)
		testutil.AssertNoError(t, err)

		if result.TotalValue != 0 {
			t.Fatalf("expected zero total, got %d", result.TotalValue)
		}
		equity := result.ByClass[allocation.ClassEquity]
		if equity.Action != allocation.ActionHold {
			t.Errorf("expected hold on empty portfolio, got %s", equity.Action)
		}
	})
}
