package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/store"
)

func TestUserStats_Apply(t *testing.T) {
	var s UserStats
	s.Apply(&evaluator.Feedback{Score: 72, WordCount: 180})
	s.Apply(&evaluator.Feedback{Score: 55, WordCount: 90})
	s.Apply(nil)

	want := UserStats{Points: 127, TotalWords: 270, CompletedTests: 2, HighestScore: 72}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 63.5, s.AverageScore(), 1e-9)
}

func TestUserStats_Badges(t *testing.T) {
	var s UserStats
	assert.True(t, s.AddBadge("first-draft"))
	assert.False(t, s.AddBadge("first-draft"))
	assert.True(t, s.HasBadge("first-draft"))
	assert.False(t, s.HasBadge("grade-a"))
	assert.Equal(t, []string{"first-draft"}, s.Badges)
}

func TestNewProfile(t *testing.T) {
	p := NewProfile()
	assert.Equal(t, ThemeLight, p.Preferences.Theme)
	assert.Equal(t, 15*time.Minute, p.Preferences.DefaultDuration)
	assert.Zero(t, p.Stats.Points)
	assert.Zero(t, p.Stats.AverageScore())
	assert.NotNil(t, p.Stats.Badges)
}

func TestTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.False(t, Theme("sepia").Valid())
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := NewProfile()
	p.Stats = UserStats{Points: 300, TotalWords: 900, CompletedTests: 4, HighestScore: 88, Badges: []string{"first-draft", "grade-a"}}
	p.Preferences = Preferences{Theme: ThemeDark, DefaultDuration: 30 * time.Minute}

	data := p.SnapshotData()
	got := FromSnapshot(&data)
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSnapshot_Defaults(t *testing.T) {
	assert.Equal(t, NewProfile(), FromSnapshot(nil))

	p := FromSnapshot(&store.SnapshotData{
		Preferences: &store.PreferencesSnapshotData{Theme: "neon"},
	})
	assert.Equal(t, ThemeLight, p.Preferences.Theme)
	assert.Equal(t, DefaultDuration, p.Preferences.DefaultDuration)
}
