// Package session runs one timed writing attempt from first keystroke to
// scored result.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/watcrack/internal/badges"
	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/timing"
	"github.com/abhisek/watcrack/internal/topics"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseWriting   Phase = iota // Accepting edits
	PhaseSubmitted              // Scored; edits are ignored
)

func (p Phase) String() string {
	if p == PhaseSubmitted {
		return "submitted"
	}
	return "writing"
}

// Config describes a session to start.
type Config struct {
	Topic         topics.Topic
	Duration      time.Duration
	IdleThreshold time.Duration

	// Profile receives the scored attempt. It may be nil for a throwaway
	// session.
	Profile *stats.Profile

	// Recorder persists results. It may be nil.
	Recorder *Recorder
}

// Result is the outcome of a submitted session.
type Result struct {
	SessionID     string
	Topic         topics.Topic
	Feedback      *evaluator.Feedback
	Awards        []badges.Award
	Stats         stats.UserStats
	ActiveSeconds float64
	Duration      time.Duration
	AutoSubmitted bool
	SubmittedAt   time.Time
}

// Session is a single timed response to one topic. It is safe for
// concurrent use.
type Session struct {
	ID        string
	Topic     topics.Topic
	StartedAt time.Time

	mu        sync.Mutex
	countdown timing.Countdown
	tracker   *timing.ActivityTracker
	text      string
	phase     Phase
	result    *Result
	saveErr   error
	profile   *stats.Profile
	recorder  *Recorder
}

// New starts a session at now. A non-positive duration uses
// timing.ShortSession.
func New(cfg Config, now time.Time) *Session {
	d := cfg.Duration
	if d <= 0 {
		d = timing.ShortSession
	}
	return &Session{
		ID:        uuid.NewString(),
		Topic:     cfg.Topic,
		StartedAt: now,
		countdown: timing.NewCountdown(now, d),
		tracker:   timing.NewActivityTracker(cfg.IdleThreshold),
		phase:     PhaseWriting,
		profile:   cfg.Profile,
		recorder:  cfg.Recorder,
	}
}

// Edit replaces the response text and records typing activity. It is a
// no-op once the session is submitted.
func (s *Session) Edit(text string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseWriting {
		return
	}
	s.text = text
	s.tracker.RecordActivity(now, len(text))
}

// Text returns the current response.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Countdown returns the session's deadline clock.
func (s *Session) Countdown() timing.Countdown {
	return s.countdown
}

// ActiveSeconds is the typing time counted so far.
func (s *Session) ActiveSeconds() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.ElapsedActiveSeconds()
}

// Tick reports the time left at now and whether the deadline has passed
// while still writing.
func (s *Session) Tick(now time.Time) (remaining time.Duration, expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countdown.Remaining(now), s.phase == PhaseWriting && s.countdown.Expired(now)
}

// Submit scores the current text and records it. Later calls return the
// first result and the first persistence error unchanged, without retrying
// the write. The error reports persistence failures only; the result is
// always valid.
func (s *Session) Submit(ctx context.Context, now time.Time, auto bool) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return s.result, s.saveErr
	}

	s.tracker.Freeze()
	active := s.tracker.ElapsedActiveSeconds()
	fb := evaluator.Evaluate(s.text, s.Topic.Title, active)

	s.phase = PhaseSubmitted
	s.result = &Result{
		SessionID:     s.ID,
		Topic:         s.Topic,
		Feedback:      fb,
		ActiveSeconds: active,
		Duration:      s.countdown.Duration(),
		AutoSubmitted: auto,
		SubmittedAt:   now,
	}

	if s.profile == nil {
		return s.result, nil
	}
	if s.recorder == nil {
		s.profile.Stats.Apply(fb)
		s.result.Stats = s.profile.Stats
		return s.result, nil
	}

	awards, err := s.recorder.Record(ctx, s.profile, s.result)
	s.result.Awards = awards
	s.result.Stats = s.profile.Stats
	s.saveErr = err
	return s.result, err
}

// Result returns the submitted result, or nil while writing.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
