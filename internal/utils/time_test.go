package utils

import "testing"

func TestValidDate(t *testing.T) {
	if !ValidDate("2026-08-29") {
		t.Error("ValidDate rejected a well-formed date")
	}
	for _, s := range []string{"29-08-2026", "2026/08/29", "2026-13-01", "today", ""} {
		if ValidDate(s) {
			t.Errorf("ValidDate(%q) = true, want false", s)
		}
	}
}

func TestValidTime(t *testing.T) {
	if !ValidTime("09:30") {
		t.Error("ValidTime rejected a well-formed time")
	}
	for _, s := range []string{"9:30pm", "25:00", ""} {
		if ValidTime(s) {
			t.Errorf("ValidTime(%q) = true, want false", s)
		}
	}
}

func TestResolveDate(t *testing.T) {
	if got, err := ResolveDate("today"); err != nil || got != Today() {
		t.Errorf("ResolveDate(today) = (%q, %v)", got, err)
	}
	if got, err := ResolveDate(""); err != nil || got != Today() {
		t.Errorf("ResolveDate(empty) = (%q, %v)", got, err)
	}
	if got, err := ResolveDate("2026-08-15"); err != nil || got != "2026-08-15" {
		t.Errorf("ResolveDate(date) = (%q, %v)", got, err)
	}
	if _, err := ResolveDate("tomorrow"); err == nil {
		t.Error("ResolveDate accepted an unknown literal")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-08-29", -7)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2026-08-22" {
		t.Errorf("AddDays() = %q, want 2026-08-22", got)
	}

	got, err = AddDays("2026-08-30", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2026-09-02" {
		t.Errorf("AddDays() = %q, want month rollover to 2026-09-02", got)
	}

	if _, err := AddDays("bad", 1); err == nil {
		t.Error("AddDays accepted a malformed date")
	}
}
