package store

import (
	"context"
	"fmt"

	"github.com/abhisek/watcrack/ent"
	"github.com/abhisek/watcrack/ent/badgeevent"
)

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetBadgeID(data.BadgeID).
		SetName(data.Name).
		SetSessionID(data.SessionID).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeRecord, error) {
	query := r.client.BadgeEvent.Query().
		Order(ent.Desc(badgeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(badgeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(badgeevent.SequenceLT(opts.Before))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}

	records := make([]BadgeRecord, len(events))
	for i, e := range events {
		records[i] = BadgeRecord{
			BadgeEventData: BadgeEventData{
				BadgeID:   e.BadgeID,
				Name:      e.Name,
				SessionID: e.SessionID,
				Reason:    e.Reason,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
