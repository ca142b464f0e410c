package models

import "time"

// MoodLabel is the qualitative mood attached to a wellness entry.
type MoodLabel string

const (
	MoodCalm     MoodLabel = "calm"
	MoodHappy    MoodLabel = "happy"
	MoodNeutral  MoodLabel = "neutral"
	MoodAnxious  MoodLabel = "anxious"
	MoodStressed MoodLabel = "stressed"
	MoodSad      MoodLabel = "sad"
)

// WellnessEntry is a single check-in: a mood plus 1-10 ratings for stress,
// energy and fatigue. Time may be zero for entries imported without an
// explicit timestamp; the aggregator substitutes the current time when
// displaying such entries.
type WellnessEntry struct {
	ID      string    `json:"id"`
	Mood    MoodLabel `json:"mood"`
	Stress  int       `json:"stress"`
	Energy  int       `json:"energy"`
	Fatigue int       `json:"fatigue"`
	Time    time.Time `json:"time"`
}
