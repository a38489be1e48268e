package store

import (
	"context"
	"fmt"

	"github.com/abhisek/watcrack/ent"
	"github.com/abhisek/watcrack/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetTopicTitle(data.TopicTitle).
		SetWordCount(data.WordCount).
		SetWpm(data.WPM).
		SetScore(data.Score).
		SetGrade(data.Grade).
		SetActiveSecs(data.ActiveSecs).
		SetDurationSecs(data.DurationSecs).
		SetAutoSubmitted(data.AutoSubmitted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	query := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = AttemptRecord{
			AttemptEventData: AttemptEventData{
				SessionID:     e.SessionID,
				TopicID:       e.TopicID,
				TopicTitle:    e.TopicTitle,
				WordCount:     e.WordCount,
				WPM:           e.Wpm,
				Score:         e.Score,
				Grade:         e.Grade,
				ActiveSecs:    e.ActiveSecs,
				DurationSecs:  e.DurationSecs,
				AutoSubmitted: e.AutoSubmitted,
			},
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
