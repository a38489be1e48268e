package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/watcrack/internal/stats"
)

func TestLoadProfileFresh(t *testing.T) {
	st := openTestStore(t)
	rec := NewRecorder(st.EventRepo(), st.SnapshotRepo(), nil)

	p, err := rec.LoadProfile(context.Background())
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Stats.CompletedTests != 0 || p.Preferences.Theme != stats.ThemeLight {
		t.Errorf("profile = %+v, want fresh", p)
	}
}

func TestResetKeepsPreferences(t *testing.T) {
	st := openTestStore(t)
	rec := NewRecorder(st.EventRepo(), st.SnapshotRepo(), nil)
	ctx := context.Background()

	p := stats.NewProfile()
	p.Preferences.Theme = stats.ThemeDark
	p.Preferences.DefaultDuration = 30 * time.Minute
	p.Stats = stats.UserStats{Points: 300, TotalWords: 900, CompletedTests: 4, HighestScore: 90, Badges: []string{"first-draft"}}
	if err := rec.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	if err := rec.Reset(ctx, &p); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	loaded, err := rec.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if loaded.Stats.CompletedTests != 0 || loaded.Stats.Points != 0 || len(loaded.Stats.Badges) != 0 {
		t.Errorf("stats after reset = %+v", loaded.Stats)
	}
	if loaded.Preferences.Theme != stats.ThemeDark || loaded.Preferences.DefaultDuration != 30*time.Minute {
		t.Errorf("preferences after reset = %+v", loaded.Preferences)
	}
}

func TestSaveProfilePrunes(t *testing.T) {
	st := openTestStore(t)
	rec := NewRecorder(st.EventRepo(), st.SnapshotRepo(), nil)
	ctx := context.Background()

	base := t0
	for i := 0; i < SnapshotsKept+3; i++ {
		i := i
		rec.now = func() time.Time { return base.Add(time.Duration(i) * time.Second) }
		if err := rec.SaveProfile(ctx, stats.NewProfile()); err != nil {
			t.Fatalf("SaveProfile %d: %v", i, err)
		}
	}
	n, err := st.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != SnapshotsKept {
		t.Errorf("snapshots = %d, want %d", n, SnapshotsKept)
	}
}

func TestBadgesBySession(t *testing.T) {
	st := openTestStore(t)
	rec := NewRecorder(st.EventRepo(), st.SnapshotRepo(), nil)
	ctx := context.Background()
	p := stats.NewProfile()

	s := New(Config{Topic: testTopic(), Duration: 15 * time.Minute, Profile: &p, Recorder: rec}, t0)
	s.Edit(essay(), t0.Add(5*time.Second))
	res, err := s.Submit(ctx, t0.Add(10*time.Second), false)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	grouped, err := rec.BadgesBySession(ctx)
	if err != nil {
		t.Fatalf("BadgesBySession: %v", err)
	}
	if got := len(grouped[res.SessionID]); got != len(res.Awards) {
		t.Errorf("badges for session = %d, want %d", got, len(res.Awards))
	}
	if len(res.Awards) == 0 {
		t.Error("first submission should award at least first-draft")
	}
}
