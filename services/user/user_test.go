package user

import (
	"testing"

	"travelagent/utils"
)

func TestPreferences(t *testing.T) {
	svc := NewUserService()

	if p := svc.GetProfile(); p.ID != 1 || p.Email != "user@example.com" {
		t.Errorf("profile %+v", p)
	}

	prefs := svc.GetPreferences()
	if prefs["currency"] != "USD" || prefs["notifications"] != true {
		t.Errorf("defaults %v", prefs)
	}
	prefs["currency"] = "EUR"
	if svc.GetPreferences()["currency"] != "USD" {
		t.Error("GetPreferences leaked internal map")
	}

	applied, err := svc.UpdatePreferences(map[string]interface{}{"currency": "INR"})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if applied["currency"] != "INR" || len(applied) != 1 {
		t.Errorf("applied %v", applied)
	}
	after := svc.GetPreferences()
	if after["currency"] != "INR" || after["language"] != "en" {
		t.Errorf("merged %v", after)
	}

	if _, err := svc.UpdatePreferences(nil); utils.StatusFor(err, 500) != 400 {
		t.Errorf("empty update: %v", err)
	}
}
