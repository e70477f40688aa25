package services

import (
	"testing"

	"metalfolio/internal/models"
	"metalfolio/internal/testutil"
	"metalfolio/internal/units"
)

func TestGetPreferences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPreferencesService(db)
	userID := testutil.NewUserID()

	prefs, err := svc.GetPreferences(userID)
	testutil.AssertNoError(t, err)

	if prefs.Currency != models.DisplayPKR {
		t.Errorf("expected default currency PKR, got %s", prefs.Currency)
	}
	if prefs.Unit != units.Tola {
		t.Errorf("expected default unit tola, got %s", prefs.Unit)
	}
	if prefs.PriceAlertThreshold != 5 || !prefs.PushNotifications || prefs.NotificationFrequency != models.NotifyDaily {
		t.Errorf("unexpected defaults: %+v", prefs)
	}

	again, err := svc.GetPreferences(userID)
	testutil.AssertNoError(t, err)
	if again.ID != prefs.ID {
		t.Error("expected the same preferences row on second access")
	}

	var count int64
	db.Model(&models.UserPreferences{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 preferences row, got %d", count)
	}
}

func TestUpdatePreferences(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPreferencesService(db)
		userID := testutil.NewUserID()

		currency := models.DisplayBoth
		push := false
		prefs, err := svc.UpdatePreferences(userID, PreferencesUpdate{Currency: &currency, PushNotifications: &push})
		testutil.AssertNoError(t, err)

		if prefs.Currency != models.DisplayBoth || prefs.PushNotifications {
			t.Errorf("update not applied: %+v", prefs)
		}
		if prefs.Unit != units.Tola {
			t.Errorf("expected unit to keep its default, got %s", prefs.Unit)
		}

		stored, err := svc.GetPreferences(userID)
		testutil.AssertNoError(t, err)
		if stored.PushNotifications {
			t.Error("expected push notifications to stay disabled")
		}
	})

	invalid := []struct {
		name string
		upd  func() PreferencesUpdate
	}{
		{"currency", func() PreferencesUpdate { c := models.DisplayCurrency("EUR"); return PreferencesUpdate{Currency: &c} }},
		{"unit", func() PreferencesUpdate { u := units.Unit("pound"); return PreferencesUpdate{Unit: &u} }},
		{"frequency", func() PreferencesUpdate {
			f := models.NotificationFrequency("hourly")
			return PreferencesUpdate{NotificationFrequency: &f}
		}},
		{"threshold", func() PreferencesUpdate { v := 150.0; return PreferencesUpdate{PriceAlertThreshold: &v} }},
	}
	for _, tt := range invalid {
		t.Run("invalid_"+tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			svc := NewPreferencesService(db)

			_, err := svc.UpdatePreferences(testutil.NewUserID(), tt.upd())
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}
}
