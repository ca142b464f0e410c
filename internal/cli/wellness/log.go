package wellness

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/models"
	"github.com/lininnin/mindtrack/internal/validation"
)

var moodOptions = []string{
	string(models.MoodCalm),
	string(models.MoodHappy),
	string(models.MoodNeutral),
	string(models.MoodAnxious),
	string(models.MoodStressed),
	string(models.MoodSad),
}

type LogCmd struct {
	Mood    string `short:"m" help:"Mood (calm|happy|neutral|anxious|stressed|sad)."`
	Stress  int    `short:"s" help:"Stress level (1-10)."`
	Energy  int    `short:"e" help:"Energy level (1-10)."`
	Fatigue int    `short:"f" help:"Fatigue level (1-10)."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	// With no flags given, collect the check-in interactively.
	if c.Mood == "" && c.Stress == 0 && c.Energy == 0 && c.Fatigue == 0 {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	entry := models.WellnessEntry{
		ID:      uuid.New().String(),
		Mood:    models.MoodLabel(c.Mood),
		Stress:  c.Stress,
		Energy:  c.Energy,
		Fatigue: c.Fatigue,
		Time:    time.Now(),
	}
	if err := validation.ValidateWellnessEntry(entry); err != nil {
		return err
	}
	if err := ctx.Store.AddWellnessEntry(entry); err != nil {
		return fmt.Errorf("failed to log wellness entry: %w", err)
	}

	fmt.Printf("Logged wellness entry: mood=%s stress=%d energy=%d fatigue=%d\n",
		entry.Mood, entry.Stress, entry.Energy, entry.Fatigue)
	return nil
}

func (c *LogCmd) prompt() error {
	stress, energy, fatigue := "5", "5", "5"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(huh.NewOptions(moodOptions...)...).
				Value(&c.Mood),
			huh.NewInput().Title("Stress (1-10)").Value(&stress).Validate(validateRating),
			huh.NewInput().Title("Energy (1-10)").Value(&energy).Validate(validateRating),
			huh.NewInput().Title("Fatigue (1-10)").Value(&fatigue).Validate(validateRating),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("wellness check-in cancelled: %w", err)
	}

	c.Stress, _ = strconv.Atoi(stress)
	c.Energy, _ = strconv.Atoi(energy)
	c.Fatigue, _ = strconv.Atoi(fatigue)
	return nil
}

func validateRating(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number between 1 and 10")
	}
	return validation.RequireRating("rating", n)
}
