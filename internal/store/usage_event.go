package store

import (
	"context"
	"fmt"

	"github.com/praxisprep/praxis/ent"
	"github.com/praxisprep/praxis/ent/usageevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendUsage(ctx context.Context, data UsageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	create := r.client.UsageEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetFeature(data.Feature).
		SetCountAfter(data.CountAfter)
	if data.SessionID != "" {
		create.SetSessionID(data.SessionID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save usage event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryUsage(ctx context.Context, userID string, opts QueryOpts) ([]UsageEventRecord, error) {
	q := r.client.UsageEvent.Query().
		Where(usageevent.UserID(userID)).
		Order(ent.Desc(usageevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(usageevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(usageevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(usageevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(usageevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query usage events: %w", err)
	}

	out := make([]UsageEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, UsageEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			UsageEventData: UsageEventData{
				UserID:     e.UserID,
				Feature:    e.Feature,
				SessionID:  e.SessionID,
				CountAfter: e.CountAfter,
			},
		})
	}
	return out, nil
}
