package store

import (
	"context"
	"fmt"

	"github.com/praxisprep/praxis/ent"
	"github.com/praxisprep/praxis/ent/chatevent"
)

func (r *eventRepo) AppendChat(ctx context.Context, data ChatEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChatEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetFlow(chatevent.Flow(data.Flow)).
		SetRole(chatevent.Role(data.Role)).
		SetContent(data.Content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save chat event: %w", err)
	}
	return nil
}

func (r *eventRepo) ChatHistory(ctx context.Context, sessionID string) ([]ChatEventRecord, error) {
	rows, err := r.client.ChatEvent.Query().
		Where(chatevent.SessionID(sessionID)).
		Order(ent.Asc(chatevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}

	out := make([]ChatEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, ChatEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ChatEventData: ChatEventData{
				SessionID: e.SessionID,
				Flow:      string(e.Flow),
				Role:      string(e.Role),
				Content:   e.Content,
			},
		})
	}
	return out, nil
}
