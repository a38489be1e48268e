package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/watcrack/internal/badges"
	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/store"
	"github.com/abhisek/watcrack/internal/timing"
	"github.com/abhisek/watcrack/internal/topics"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testTopic() topics.Topic {
	tp, _ := topics.Lookup("20")
	return tp
}

func essay() string {
	return strings.Repeat("Cities grow quickly because jobs move there. ", 20)
}

func TestEditTracksActiveTime(t *testing.T) {
	s := New(Config{Topic: testTopic()}, t0)

	s.Edit("C", t0)
	s.Edit("Ci", t0.Add(5*time.Second))
	s.Edit("Cit", t0.Add(10*time.Second))
	s.Edit("City", t0.Add(40*time.Second)) // idle gap, not counted
	s.Edit("City ", t0.Add(45*time.Second))

	if got := s.ActiveSeconds(); got != 15 {
		t.Errorf("ActiveSeconds() = %v, want 15", got)
	}
	if got := s.Text(); got != "City " {
		t.Errorf("Text() = %q", got)
	}
	if s.Phase() != PhaseWriting {
		t.Errorf("Phase() = %s, want writing", s.Phase())
	}
}

func TestTick(t *testing.T) {
	s := New(Config{Topic: testTopic(), Duration: timing.ShortSession}, t0)

	rem, expired := s.Tick(t0.Add(14 * time.Minute))
	if expired || rem != time.Minute {
		t.Errorf("Tick(14m) = %v, %v; want 1m, false", rem, expired)
	}
	if _, expired := s.Tick(t0.Add(15 * time.Minute)); !expired {
		t.Error("Tick(15m) not expired")
	}

	if _, err := s.Submit(context.Background(), t0.Add(15*time.Minute), true); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, expired := s.Tick(t0.Add(16 * time.Minute)); expired {
		t.Error("Tick after submit reported expiry")
	}
}

func TestDefaultDuration(t *testing.T) {
	s := New(Config{Topic: testTopic()}, t0)
	if got := s.Countdown().Duration(); got != timing.ShortSession {
		t.Errorf("duration = %v, want %v", got, timing.ShortSession)
	}
}

func TestSubmitScoresWithActiveTime(t *testing.T) {
	s := New(Config{Topic: testTopic()}, t0)
	s.Edit("draft", t0)
	s.Edit(essay(), t0.Add(12*time.Second))

	res, err := s.Submit(context.Background(), t0.Add(time.Minute), false)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	want := evaluator.Evaluate(essay(), testTopic().Title, 12)
	if diff := cmp.Diff(want, res.Feedback); diff != "" {
		t.Errorf("feedback mismatch (-want +got):\n%s", diff)
	}
	if res.ActiveSeconds != 12 {
		t.Errorf("ActiveSeconds = %v, want 12", res.ActiveSeconds)
	}
	if res.AutoSubmitted {
		t.Error("AutoSubmitted = true, want false")
	}
	if s.Result() != res {
		t.Error("Result() does not return the submitted result")
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	st := openTestStore(t)
	rec := NewRecorder(st.EventRepo(), st.SnapshotRepo(), nil)
	profile := stats.NewProfile()

	s := New(Config{Topic: testTopic(), Profile: &profile, Recorder: rec}, t0)
	s.Edit(essay(), t0)

	ctx := context.Background()
	first, err := s.Submit(ctx, t0.Add(time.Minute), false)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := s.Submit(ctx, t0.Add(2*time.Minute), true)
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}

	if first != second {
		t.Error("second Submit returned a different result")
	}
	if second.AutoSubmitted {
		t.Error("second Submit changed AutoSubmitted")
	}
	if profile.Stats.CompletedTests != 1 {
		t.Errorf("CompletedTests = %d, want 1", profile.Stats.CompletedTests)
	}
	if profile.Stats.TotalWords != first.Feedback.WordCount {
		t.Errorf("TotalWords = %d, want %d", profile.Stats.TotalWords, first.Feedback.WordCount)
	}

	attempts, err := rec.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(attempts))
	}
	a := attempts[0]
	if a.SessionID != s.ID || a.TopicID != "20" || a.Score != first.Feedback.Score || a.DurationSecs != 900 {
		t.Errorf("attempt = %+v", a.AttemptEventData)
	}

	if !profile.Stats.HasBadge(badges.FirstDraft) {
		t.Error("first-draft badge not awarded")
	}
	if len(first.Awards) == 0 || first.Stats.CompletedTests != 1 {
		t.Errorf("result awards/stats = %d/%+v", len(first.Awards), first.Stats)
	}

	loaded, err := rec.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if diff := cmp.Diff(profile, loaded); diff != "" {
		t.Errorf("saved profile mismatch (-want +got):\n%s", diff)
	}
}

func TestEditAfterSubmitIgnored(t *testing.T) {
	s := New(Config{Topic: testTopic()}, t0)
	s.Edit("before", t0)
	if _, err := s.Submit(context.Background(), t0.Add(time.Second), false); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	s.Edit("after", t0.Add(2*time.Second))
	if got := s.Text(); got != "before" {
		t.Errorf("Text() = %q, want before", got)
	}
	if s.Phase() != PhaseSubmitted {
		t.Errorf("Phase() = %s, want submitted", s.Phase())
	}
}

func TestSubmitEmptyAutoSubmit(t *testing.T) {
	profile := stats.NewProfile()
	s := New(Config{Topic: testTopic(), Profile: &profile}, t0)

	res, err := s.Submit(context.Background(), t0.Add(15*time.Minute), true)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Feedback.WordCount != 0 || res.Feedback.WPM != 0 {
		t.Errorf("feedback = %+v", res.Feedback)
	}
	if !res.AutoSubmitted {
		t.Error("AutoSubmitted = false, want true")
	}
	if profile.Stats.CompletedTests != 1 {
		t.Errorf("CompletedTests = %d, want 1", profile.Stats.CompletedTests)
	}
}

// failingEvents rejects attempt writes.
type failingEvents struct {
	store.EventRepo
}

func (failingEvents) AppendAttempt(context.Context, store.AttemptEventData) error {
	return errors.New("read-only database")
}

func TestSubmitReportsPersistenceError(t *testing.T) {
	st := openTestStore(t)
	rec := NewRecorder(failingEvents{st.EventRepo()}, st.SnapshotRepo(), nil)
	profile := stats.NewProfile()

	s := New(Config{Topic: testTopic(), Profile: &profile, Recorder: rec}, t0)
	s.Edit(essay(), t0)

	res, err := s.Submit(context.Background(), t0.Add(time.Minute), false)
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if res == nil || res.Feedback == nil {
		t.Fatal("result missing despite persistence error")
	}
	if profile.Stats.CompletedTests != 1 {
		t.Errorf("CompletedTests = %d, want 1", profile.Stats.CompletedTests)
	}
}

func TestSubmitRepeatsPersistenceError(t *testing.T) {
	st := openTestStore(t)
	rec := NewRecorder(failingEvents{st.EventRepo()}, st.SnapshotRepo(), nil)
	profile := stats.NewProfile()

	s := New(Config{Topic: testTopic(), Profile: &profile, Recorder: rec}, t0)
	s.Edit(essay(), t0)

	first, firstErr := s.Submit(context.Background(), t0.Add(time.Minute), false)
	if firstErr == nil {
		t.Fatal("expected persistence error")
	}
	again, err := s.Submit(context.Background(), t0.Add(2*time.Minute), true)
	if err != firstErr {
		t.Errorf("second Submit error = %v, want %v", err, firstErr)
	}
	if again != first {
		t.Error("second Submit returned a different result")
	}
	if profile.Stats.CompletedTests != 1 {
		t.Errorf("CompletedTests = %d, want 1 (no second write)", profile.Stats.CompletedTests)
	}
}
