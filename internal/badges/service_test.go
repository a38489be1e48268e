package badges

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/store"
)

// mockEventRepo implements store.EventRepo for badge tests.
type mockEventRepo struct {
	badges []store.BadgeEventData
	err    error
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, _ store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendBadge(_ context.Context, data store.BadgeEventData) error {
	if m.err != nil {
		return m.err
	}
	m.badges = append(m.badges, data)
	return nil
}
func (m *mockEventRepo) QueryBadges(_ context.Context, _ store.QueryOpts) ([]store.BadgeRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestSequence(_ context.Context) (int64, error) {
	return 0, nil
}

func TestService_Award(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo, nil)
	fixed := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	s := &stats.UserStats{}
	fb := &evaluator.Feedback{Score: 90, Grade: evaluator.GradeA, WordCount: 180, WPM: 12}
	s.Apply(fb)

	awards := svc.Award(context.Background(), s, fb, "sess-1")
	if len(awards) != 3 {
		t.Fatalf("len(awards) = %d, want 3", len(awards))
	}
	if awards[0].Badge.ID != FirstDraft || awards[1].Badge.ID != Concise || awards[2].Badge.ID != GradeA {
		t.Errorf("award order = %s, %s, %s", awards[0].Badge.ID, awards[1].Badge.ID, awards[2].Badge.ID)
	}
	if !awards[0].AwardedAt.Equal(fixed) || awards[0].SessionID != "sess-1" {
		t.Errorf("award metadata = %+v", awards[0])
	}
	if len(s.Badges) != 3 {
		t.Errorf("stats badges = %v, want 3", s.Badges)
	}
	if len(repo.badges) != 3 || repo.badges[2].BadgeID != GradeA || repo.badges[2].SessionID != "sess-1" {
		t.Errorf("persisted = %+v", repo.badges)
	}

	// A second identical submission earns nothing new.
	s.Apply(fb)
	if again := svc.Award(context.Background(), s, fb, "sess-2"); len(again) != 0 {
		t.Errorf("second award = %d badges, want 0", len(again))
	}
}

func TestService_AwardLogsPersistFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := &mockEventRepo{err: errors.New("disk full")}
	svc := NewService(repo, zap.New(core))

	s := &stats.UserStats{}
	fb := &evaluator.Feedback{Score: 10, Grade: evaluator.GradeF, WordCount: 5}
	s.Apply(fb)

	awards := svc.Award(context.Background(), s, fb, "sess-1")
	if len(awards) != 1 {
		t.Fatalf("len(awards) = %d, want 1", len(awards))
	}
	if logs.FilterMessage("failed to record badge event").Len() != 1 {
		t.Errorf("expected one warning, got %d entries", logs.Len())
	}
}

func TestService_NilRepo(t *testing.T) {
	svc := NewService(nil, nil)
	s := &stats.UserStats{}
	fb := &evaluator.Feedback{Score: 10, Grade: evaluator.GradeF}
	s.Apply(fb)
	if got := svc.Award(context.Background(), s, fb, "x"); len(got) != 1 {
		t.Errorf("len(awards) = %d, want 1", len(got))
	}
}
