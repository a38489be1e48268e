// Package badges awards achievement badges for submitted responses.
package badges

import (
	"time"

	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/stats"
)

// Badge identifiers.
const (
	FirstDraft = "first-draft"
	GradeA     = "grade-a"
	Century    = "century"
	Wordsmith  = "wordsmith"
	Marathon   = "marathon"
	Concise    = "concise"
	Sprinter   = "sprinter"
)

// Thresholds used by the catalog.
const (
	WordsmithWords = 1000
	MarathonTests  = 10
	SprinterWPM    = 35
)

// Badge is one entry of the catalog.
type Badge struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity

	// earned reports whether the updated stats and the latest feedback
	// qualify for the badge.
	earned func(s *stats.UserStats, fb *evaluator.Feedback) bool
}

// Icon returns the display icon for the badge's rarity.
func (b Badge) Icon() string {
	return b.Rarity.Icon()
}

// Award is a badge earned by a specific response.
type Award struct {
	Badge     Badge
	SessionID string
	AwardedAt time.Time
}

var catalog = []Badge{
	{
		ID:          FirstDraft,
		Name:        "First Draft",
		Description: "Submit your first response",
		Rarity:      RarityCommon,
		earned: func(s *stats.UserStats, _ *evaluator.Feedback) bool {
			return s.CompletedTests >= 1
		},
	},
	{
		ID:          Concise,
		Name:        "Concise",
		Description: "Stay within 120-250 words and score a B or better",
		Rarity:      RarityRare,
		earned: func(_ *stats.UserStats, fb *evaluator.Feedback) bool {
			return fb.WordCount >= evaluator.MinWords && fb.WordCount <= evaluator.MaxWords &&
				fb.Grade.AtLeast(evaluator.GradeB)
		},
	},
	{
		ID:          Sprinter,
		Name:        "Sprinter",
		Description: "Write at least 120 words at 35 words per minute or faster",
		Rarity:      RarityRare,
		earned: func(_ *stats.UserStats, fb *evaluator.Feedback) bool {
			return fb.WPM >= SprinterWPM && fb.WordCount >= evaluator.MinWords
		},
	},
	{
		ID:          Wordsmith,
		Name:        "Wordsmith",
		Description: "Write 1000 words in total",
		Rarity:      RarityRare,
		earned: func(s *stats.UserStats, _ *evaluator.Feedback) bool {
			return s.TotalWords >= WordsmithWords
		},
	},
	{
		ID:          GradeA,
		Name:        "Top Marks",
		Description: "Earn an A",
		Rarity:      RarityEpic,
		earned: func(_ *stats.UserStats, fb *evaluator.Feedback) bool {
			return fb.Grade == evaluator.GradeA
		},
	},
	{
		ID:          Marathon,
		Name:        "Marathon",
		Description: "Complete 10 tests",
		Rarity:      RarityEpic,
		earned: func(s *stats.UserStats, _ *evaluator.Feedback) bool {
			return s.CompletedTests >= MarathonTests
		},
	},
	{
		ID:          Century,
		Name:        "Century",
		Description: "Score a perfect 100",
		Rarity:      RarityLegendary,
		earned: func(_ *stats.UserStats, fb *evaluator.Feedback) bool {
			return fb.Score == 100
		},
	},
}

// Catalog returns every badge in display order.
func Catalog() []Badge {
	return append([]Badge(nil), catalog...)
}

// Lookup returns the badge with id.
func Lookup(id string) (Badge, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Evaluate returns the badges that s and fb qualify for and that s does not
// already hold, in catalog order. s must already include fb.
func Evaluate(s *stats.UserStats, fb *evaluator.Feedback) []Badge {
	if s == nil || fb == nil {
		return nil
	}
	var out []Badge
	for _, b := range catalog {
		if s.HasBadge(b.ID) {
			continue
		}
		if b.earned(s, fb) {
			out = append(out, b)
		}
	}
	return out
}
