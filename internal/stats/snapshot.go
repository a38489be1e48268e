package stats

import (
	"time"

	"github.com/abhisek/watcrack/internal/store"
)

// FromSnapshot restores a profile from snapshot data. Missing sections fall
// back to NewProfile values.
func FromSnapshot(data *store.SnapshotData) Profile {
	p := NewProfile()
	if data == nil {
		return p
	}

	if s := data.Stats; s != nil {
		p.Stats = UserStats{
			Points:         s.Points,
			TotalWords:     s.TotalWords,
			CompletedTests: s.CompletedTests,
			HighestScore:   s.HighestScore,
			Badges:         append([]string{}, s.Badges...),
		}
	}

	if pr := data.Preferences; pr != nil {
		if t := Theme(pr.Theme); t.Valid() {
			p.Preferences.Theme = t
		}
		if pr.DefaultDurationSecs > 0 {
			p.Preferences.DefaultDuration = time.Duration(pr.DefaultDurationSecs) * time.Second
		}
	}
	return p
}

// SnapshotData converts the profile for snapshot persistence.
func (p Profile) SnapshotData() store.SnapshotData {
	return store.SnapshotData{
		Version: store.SnapshotVersion,
		Stats: &store.StatsSnapshotData{
			Points:         p.Stats.Points,
			TotalWords:     p.Stats.TotalWords,
			CompletedTests: p.Stats.CompletedTests,
			HighestScore:   p.Stats.HighestScore,
			Badges:         append([]string{}, p.Stats.Badges...),
		},
		Preferences: &store.PreferencesSnapshotData{
			Theme:               string(p.Preferences.Theme),
			DefaultDurationSecs: int(p.Preferences.DefaultDuration / time.Second),
		},
	}
}
