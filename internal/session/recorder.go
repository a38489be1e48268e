package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/badges"
	"github.com/abhisek/watcrack/internal/stats"
	"github.com/abhisek/watcrack/internal/store"
)

// SnapshotsKept is how many profile snapshots survive pruning.
const SnapshotsKept = 10

// Recorder applies scored attempts to a profile and persists them.
type Recorder struct {
	events store.EventRepo
	snaps  store.SnapshotRepo
	badges *badges.Service
	logger *zap.Logger
	now    func() time.Time
}

// NewRecorder creates a Recorder over the given repositories.
func NewRecorder(events store.EventRepo, snaps store.SnapshotRepo, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		events: events,
		snaps:  snaps,
		badges: badges.NewService(events, logger),
		logger: logger.Named("session"),
		now:    time.Now,
	}
}

// LoadProfile restores the latest saved profile, or a fresh one.
func (r *Recorder) LoadProfile(ctx context.Context) (stats.Profile, error) {
	snap, err := r.snaps.Latest(ctx)
	if err != nil {
		return stats.NewProfile(), fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil {
		return stats.NewProfile(), nil
	}
	return stats.FromSnapshot(&snap.Data), nil
}

// SaveProfile writes a snapshot of p and prunes old ones.
func (r *Recorder) SaveProfile(ctx context.Context, p stats.Profile) error {
	seq, err := r.events.LatestSequence(ctx)
	if err != nil {
		return fmt.Errorf("read sequence: %w", err)
	}
	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: r.now(),
		Data:      p.SnapshotData(),
	}
	if err := r.snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := r.snaps.Prune(ctx, SnapshotsKept); err != nil {
		r.logger.Warn("failed to prune snapshots", zap.Error(err))
	}
	return nil
}

// Reset zeroes the stats in p while keeping preferences, and saves it.
func (r *Recorder) Reset(ctx context.Context, p *stats.Profile) error {
	p.Stats = stats.NewProfile().Stats
	return r.SaveProfile(ctx, *p)
}

// Record applies res to p, awards badges, appends the attempt event and
// saves a snapshot. The essay text is never stored.
func (r *Recorder) Record(ctx context.Context, p *stats.Profile, res *Result) ([]badges.Award, error) {
	fb := res.Feedback
	p.Stats.Apply(fb)
	awards := r.badges.Award(ctx, &p.Stats, fb, res.SessionID)

	var errs []error
	err := r.events.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:     res.SessionID,
		TopicID:       res.Topic.ID,
		TopicTitle:    res.Topic.Title,
		WordCount:     fb.WordCount,
		WPM:           fb.WPM,
		Score:         fb.Score,
		Grade:         string(fb.Grade),
		ActiveSecs:    res.ActiveSeconds,
		DurationSecs:  int(res.Duration / time.Second),
		AutoSubmitted: res.AutoSubmitted,
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("append attempt: %w", err))
	}
	if err := r.SaveProfile(ctx, *p); err != nil {
		errs = append(errs, err)
	}

	r.logger.Info("attempt recorded",
		zap.String("session_id", res.SessionID),
		zap.String("topic", res.Topic.ID),
		zap.Int("score", fb.Score),
		zap.Int("words", fb.WordCount),
		zap.Int("badges", len(awards)),
		zap.Bool("auto", res.AutoSubmitted))

	return awards, errors.Join(errs...)
}

// History returns up to limit past attempts, newest first.
func (r *Recorder) History(ctx context.Context, limit int) ([]store.AttemptRecord, error) {
	recs, err := r.events.QueryAttempts(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return recs, nil
}

// BadgesBySession returns every badge award grouped by session ID.
func (r *Recorder) BadgesBySession(ctx context.Context) (map[string][]store.BadgeRecord, error) {
	recs, err := r.events.QueryBadges(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}
	out := make(map[string][]store.BadgeRecord)
	for _, b := range recs {
		out[b.SessionID] = append(out[b.SessionID], b)
	}
	return out, nil
}
