package validation

import (
	"testing"

	"github.com/lininnin/mindtrack/internal/models"
)

func TestRequireName(t *testing.T) {
	if err := RequireName("task name", "Write report"); err != nil {
		t.Errorf("RequireName() rejected a valid name: %v", err)
	}
	if err := RequireName("task name", "   "); err == nil {
		t.Error("RequireName() accepted a whitespace-only name")
	}
}

func TestRequireDateOrder(t *testing.T) {
	cases := []struct {
		name       string
		begin, due string
		wantErr    bool
	}{
		{"ordered", "2026-08-01", "2026-08-31", false},
		{"same day", "2026-08-01", "2026-08-01", false},
		{"reversed", "2026-08-31", "2026-08-01", true},
		{"bad begin", "08/01/2026", "2026-08-31", true},
		{"bad due", "2026-08-01", "soon", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := RequireDateOrder(tc.begin, tc.due)
			if (err != nil) != tc.wantErr {
				t.Errorf("RequireDateOrder(%q, %q) error = %v, wantErr %v", tc.begin, tc.due, err, tc.wantErr)
			}
		})
	}
}

func TestRequireRating(t *testing.T) {
	for _, v := range []int{1, 5, 10} {
		if err := RequireRating("stress", v); err != nil {
			t.Errorf("RequireRating(%d) returned error: %v", v, err)
		}
	}
	for _, v := range []int{0, 11, -3} {
		if err := RequireRating("stress", v); err == nil {
			t.Errorf("RequireRating(%d) accepted an out-of-range value", v)
		}
	}
}

func TestValidateGoal(t *testing.T) {
	valid := models.Goal{
		Name:      "Run",
		Frequency: 3,
		BeginDate: "2026-08-01",
		DueDate:   "2026-08-31",
	}
	if err := ValidateGoal(valid); err != nil {
		t.Errorf("ValidateGoal() rejected a valid goal: %v", err)
	}

	weekly := valid
	weekly.TimePeriod = models.PeriodWeek
	if err := ValidateGoal(weekly); err != nil {
		t.Errorf("ValidateGoal() rejected WEEK period: %v", err)
	}

	bad := valid
	bad.TimePeriod = "FORTNIGHT"
	if err := ValidateGoal(bad); err == nil {
		t.Error("ValidateGoal() accepted an unknown time period")
	}

	bad = valid
	bad.Frequency = -1
	if err := ValidateGoal(bad); err == nil {
		t.Error("ValidateGoal() accepted a negative frequency")
	}
}

func TestValidateWellnessEntry(t *testing.T) {
	valid := models.WellnessEntry{Mood: models.MoodCalm, Stress: 3, Energy: 7, Fatigue: 2}
	if err := ValidateWellnessEntry(valid); err != nil {
		t.Errorf("ValidateWellnessEntry() rejected a valid entry: %v", err)
	}

	bad := valid
	bad.Mood = ""
	if err := ValidateWellnessEntry(bad); err == nil {
		t.Error("ValidateWellnessEntry() accepted a blank mood")
	}

	bad = valid
	bad.Energy = 0
	if err := ValidateWellnessEntry(bad); err == nil {
		t.Error("ValidateWellnessEntry() accepted an out-of-range energy")
	}
}
