// Package validation holds input checks shared by the CLI commands and the
// repositories. Not-found conditions are never validation failures; these
// functions only reject malformed input before it reaches a store.
package validation

import (
	"fmt"
	"strings"

	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/utils"
)

// RequireName rejects empty or whitespace-only names.
func RequireName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s cannot be blank", field)
	}
	return nil
}

// RequireDateOrder rejects ranges where the begin date falls after the due
// date. Both must be well-formed YYYY-MM-DD strings.
func RequireDateOrder(begin, due string) error {
	if !utils.ValidDate(begin) {
		return fmt.Errorf("invalid begin date %q (expected YYYY-MM-DD)", begin)
	}
	if !utils.ValidDate(due) {
		return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", due)
	}
	if begin > due {
		return fmt.Errorf("begin date %s is after due date %s", begin, due)
	}
	return nil
}

// RequireRating rejects wellness ratings outside 1-10.
func RequireRating(field string, value int) error {
	if value < 1 || value > 10 {
		return fmt.Errorf("%s must be between 1 and 10, got %d", field, value)
	}
	return nil
}

// ValidateGoal checks the fields of a goal before it is saved.
func ValidateGoal(g models.Goal) error {
	if err := RequireName("goal name", g.Name); err != nil {
		return err
	}
	if g.Frequency < 0 {
		return fmt.Errorf("frequency cannot be negative, got %d", g.Frequency)
	}
	if g.CurrentProgress < 0 {
		return fmt.Errorf("progress cannot be negative, got %d", g.CurrentProgress)
	}
	if err := RequireDateOrder(g.BeginDate, g.DueDate); err != nil {
		return err
	}
	switch g.TimePeriod {
	case models.PeriodWeek, models.PeriodMonth, "":
	default:
		return fmt.Errorf("invalid time period %q (expected WEEK or MONTH)", g.TimePeriod)
	}
	return nil
}

// ValidateWellnessEntry checks the fields of a wellness entry.
func ValidateWellnessEntry(e models.WellnessEntry) error {
	if e.Mood == "" {
		return fmt.Errorf("mood cannot be blank")
	}
	if err := RequireRating("stress", e.Stress); err != nil {
		return err
	}
	if err := RequireRating("energy", e.Energy); err != nil {
		return err
	}
	return RequireRating("fatigue", e.Fatigue)
}
