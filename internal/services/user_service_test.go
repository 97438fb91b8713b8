package services

import (
	"testing"

	"nestegg/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("new-user@example.com", "secret123", "Ada", "Lovelace")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Password == "secret123" {
			t.Error("expected password to be hashed")
		}
		if !svc.VerifyPassword(user, "secret123") {
			t.Error("expected password to verify")
		}
		if svc.VerifyPassword(user, "wrong") {
			t.Error("expected wrong password to fail")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		existing := testutil.CreateTestUser(t, db)

		_, err := svc.CreateUser(existing.Email, "secret123", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("sets_birth_year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		birthYear := 1985
		updated, err := svc.UpdateProfile(user.ID, "", "", &birthYear)
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetUserByID(updated.ID)
		testutil.AssertNoError(t, err)
		if fetched.BirthYear != 1985 {
			t.Errorf("expected birth year 1985, got %d", fetched.BirthYear)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.UpdateProfile(999999, "Nobody", "", nil)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		fetched, err := svc.GetUserByEmail(user.Email)
		testutil.AssertNoError(t, err)
		if fetched.ID != user.ID {
			t.Errorf("expected user %d, got %d", user.ID, fetched.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("missing@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
