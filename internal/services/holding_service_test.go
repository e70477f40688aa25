package services

import (
	"os"
	"testing"
	"time"

	"metalfolio/internal/logger"
	"metalfolio/internal/models"
	"metalfolio/internal/pagination"
	"metalfolio/internal/testutil"
	"metalfolio/internal/units"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

func validInput() HoldingInput {
	return HoldingInput{
		Metal:         models.MetalGold,
		Purity:        models.Purity22K,
		Quantity:      2,
		Unit:          units.Tola,
		PurchasePrice: 250000,
		Currency:      models.CurrencyPKR,
		PurchaseDate:  testutil.Date(2024, 1, 15),
	}
}

func TestCreateHolding(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		userID := testutil.NewUserID()

		h, err := svc.CreateHolding(userID, validInput())
		testutil.AssertNoError(t, err)

		if h.ID == "" {
			t.Error("expected holding ID to be set")
		}
		if h.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, h.UserID)
		}
		if h.Unit != units.Tola || h.Quantity != 2 {
			t.Errorf("unexpected quantity %v %s", h.Quantity, h.Unit)
		}
	})

	invalid := []struct {
		name   string
		mutate func(*HoldingInput)
	}{
		{"zero_quantity", func(in *HoldingInput) { in.Quantity = 0 }},
		{"negative_quantity", func(in *HoldingInput) { in.Quantity = -1 }},
		{"zero_price", func(in *HoldingInput) { in.PurchasePrice = 0 }},
		{"unknown_metal", func(in *HoldingInput) { in.Metal = "platinum" }},
		{"unknown_unit", func(in *HoldingInput) { in.Unit = "pound" }},
		{"unknown_currency", func(in *HoldingInput) { in.Currency = "EUR" }},
		{"unknown_purity", func(in *HoldingInput) { in.Purity = "99K" }},
		{"missing_date", func(in *HoldingInput) { in.PurchaseDate = time.Time{} }},
		{"future_date", func(in *HoldingInput) { in.PurchaseDate = time.Now().AddDate(0, 0, 2) }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			svc := NewHoldingService(db)

			in := validInput()
			tt.mutate(&in)
			_, err := svc.CreateHolding(testutil.NewUserID(), in)
			testutil.AssertAppError(t, err, "INVALID_INPUT")

			var count int64
			db.Model(&models.Holding{}).Count(&count)
			if count != 0 {
				t.Errorf("expected no holdings stored, got %d", count)
			}
		})
	}
}

func TestCreateHolding_PurchaseDateAheadOfUTC(t *testing.T) {
	// 20:00 UTC is already the next day in Karachi (UTC+5).
	now := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{"utc_today", testutil.Date(2024, 3, 1), false},
		{"local_today", testutil.Date(2024, 3, 2), false},
		{"day_after", testutil.Date(2024, 3, 3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			svc := NewHoldingService(db).(*holdingService)
			svc.now = func() time.Time { return now }

			in := validInput()
			in.PurchaseDate = tt.date
			_, err := svc.CreateHolding(testutil.NewUserID(), in)
			if tt.wantErr {
				testutil.AssertAppError(t, err, "INVALID_INPUT")
				return
			}
			testutil.AssertNoError(t, err)
		})
	}
}

func TestGetUserHoldings(t *testing.T) {
	t.Run("scoped_paginated_and_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		userID := testutil.NewUserID()
		other := testutil.NewUserID()
		testutil.CreateTestHoldingOn(t, db, userID, models.MetalGold, 1, units.Gram, 60, models.CurrencyUSD, testutil.Date(2023, 1, 1))
		newest := testutil.CreateTestHoldingOn(t, db, userID, models.MetalSilver, 1, units.Kilogram, 800, models.CurrencyUSD, testutil.Date(2024, 6, 1))
		testutil.CreateTestHoldingOn(t, db, userID, models.MetalGold, 2, units.Gram, 60, models.CurrencyUSD, testutil.Date(2023, 6, 1))
		testutil.CreateTestHolding(t, db, other, models.MetalGold, 5, units.Gram, 60, models.CurrencyUSD)

		page, err := svc.GetUserHoldings(userID, pagination.PageRequest{Page: 1, PageSize: 2}, nil)
		testutil.AssertNoError(t, err)

		if page.TotalItems != 3 {
			t.Errorf("expected 3 total items, got %d", page.TotalItems)
		}
		if page.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", page.TotalPages)
		}
		if len(page.Data) != 2 {
			t.Fatalf("expected 2 items on first page, got %d", len(page.Data))
		}
		if page.Data[0].ID != newest.ID {
			t.Errorf("expected newest holding first, got %s", page.Data[0].ID)
		}
	})

	t.Run("filter_by_metal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		userID := testutil.NewUserID()
		testutil.CreateTestHolding(t, db, userID, models.MetalGold, 1, units.Gram, 60, models.CurrencyUSD)
		testutil.CreateTestHolding(t, db, userID, models.MetalSilver, 1, units.Gram, 1, models.CurrencyUSD)

		silver := models.MetalSilver
		page, err := svc.GetUserHoldings(userID, pagination.PageRequest{}, &silver)
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 || page.Data[0].Metal != models.MetalSilver {
			t.Errorf("expected only the silver holding, got %+v", page.Data)
		}
	})
}

func TestGetHoldingByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHoldingService(db)

	userID := testutil.NewUserID()
	h := testutil.CreateTestHolding(t, db, userID, models.MetalGold, 1, units.Gram, 60, models.CurrencyUSD)

	t.Run("owner", func(t *testing.T) {
		got, err := svc.GetHoldingByID(userID, h.ID)
		testutil.AssertNoError(t, err)
		if got.ID != h.ID {
			t.Errorf("expected %s, got %s", h.ID, got.ID)
		}
	})

	t.Run("other_user", func(t *testing.T) {
		_, err := svc.GetHoldingByID(testutil.NewUserID(), h.ID)
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.GetHoldingByID(userID, testutil.NewUserID())
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})
}

func TestUpdateHolding(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		userID := testutil.NewUserID()
		h := testutil.CreateTestHolding(t, db, userID, models.MetalGold, 1, units.Gram, 60, models.CurrencyUSD)

		qty := 3.5
		unit := units.Ounce
		got, err := svc.UpdateHolding(userID, h.ID, HoldingUpdate{Quantity: &qty, Unit: &unit})
		testutil.AssertNoError(t, err)

		if got.Quantity != 3.5 || got.Unit != units.Ounce {
			t.Errorf("expected 3.5 ounce, got %v %s", got.Quantity, got.Unit)
		}
		if got.PurchasePrice != 60 {
			t.Errorf("expected price unchanged, got %v", got.PurchasePrice)
		}

		var stored models.Holding
		db.First(&stored, "id = ?", h.ID)
		if stored.Quantity != 3.5 {
			t.Errorf("expected stored quantity 3.5, got %v", stored.Quantity)
		}
	})

	t.Run("rejects_invalid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		userID := testutil.NewUserID()
		h := testutil.CreateTestHolding(t, db, userID, models.MetalGold, 1, units.Gram, 60, models.CurrencyUSD)

		zero := 0.0
		_, err := svc.UpdateHolding(userID, h.ID, HoldingUpdate{PurchasePrice: &zero})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		h := testutil.CreateTestHolding(t, db, testutil.NewUserID(), models.MetalGold, 1, units.Gram, 60, models.CurrencyUSD)
		qty := 2.0
		_, err := svc.UpdateHolding(testutil.NewUserID(), h.ID, HoldingUpdate{Quantity: &qty})
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})
}

func TestDeleteHolding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHoldingService(db)

	userID := testutil.NewUserID()
	h := testutil.CreateTestHolding(t, db, userID, models.MetalGold, 1, units.Gram, 60, models.CurrencyUSD)

	testutil.AssertAppError(t, svc.DeleteHolding(testutil.NewUserID(), h.ID), "HOLDING_NOT_FOUND")
	testutil.AssertNoError(t, svc.DeleteHolding(userID, h.ID))
	testutil.AssertAppError(t, svc.DeleteHolding(userID, h.ID), "HOLDING_NOT_FOUND")

	all, err := svc.GetAllUserHoldings(userID)
	testutil.AssertNoError(t, err)
	if len(all) != 0 {
		t.Errorf("expected no holdings after delete, got %d", len(all))
	}
}
