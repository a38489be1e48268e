// Package stats holds the writer's aggregate counters and preferences.
package stats

import (
	"slices"
	"time"

	"github.com/abhisek/watcrack/internal/evaluator"
)

// UserStats are the cumulative counters across all submitted responses.
// The zero value is a fresh profile.
type UserStats struct {
	Points         int      `json:"points"`
	TotalWords     int      `json:"totalWords"`
	CompletedTests int      `json:"completedTests"`
	HighestScore   int      `json:"highestScore"`
	Badges         []string `json:"badges"`
}

// Apply folds one scored response into the counters.
func (s *UserStats) Apply(fb *evaluator.Feedback) {
	if fb == nil {
		return
	}
	s.Points += fb.Score
	s.TotalWords += fb.WordCount
	s.CompletedTests++
	s.HighestScore = max(s.HighestScore, fb.Score)
}

// HasBadge reports whether the badge with id has been earned.
func (s *UserStats) HasBadge(id string) bool {
	return slices.Contains(s.Badges, id)
}

// AddBadge records id as earned. It reports false if it was already present.
func (s *UserStats) AddBadge(id string) bool {
	if s.HasBadge(id) {
		return false
	}
	s.Badges = append(s.Badges, id)
	return true
}

// AverageScore returns Points divided by CompletedTests, or 0 before the
// first test.
func (s *UserStats) AverageScore() float64 {
	if s.CompletedTests == 0 {
		return 0
	}
	return float64(s.Points) / float64(s.CompletedTests)
}

// Theme is the UI colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// DefaultDuration is the session length of a fresh profile.
const DefaultDuration = 15 * time.Minute

// Preferences are the writer's UI choices.
type Preferences struct {
	Theme           Theme         `json:"theme"`
	DefaultDuration time.Duration `json:"defaultDuration"`
}

// Profile is everything persisted about the writer. It is passed explicitly
// to whoever needs it.
type Profile struct {
	Stats       UserStats   `json:"stats"`
	Preferences Preferences `json:"preferences"`
}

// NewProfile returns an all-zero profile with light theme and the default
// session length.
func NewProfile() Profile {
	return Profile{
		Stats: UserStats{Badges: []string{}},
		Preferences: Preferences{
			Theme:           ThemeLight,
			DefaultDuration: DefaultDuration,
		},
	}
}
