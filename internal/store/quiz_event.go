package store

import (
	"context"
	"fmt"

	"github.com/praxisprep/praxis/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	create := r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetKind(quizevent.Kind(data.Kind))

	switch data.Kind {
	case "started":
		create.SetSubject(data.Subject).SetTopic(data.Topic)
	case "answered":
		create.SetQuestionIndex(data.QuestionIndex).SetCorrect(data.Correct)
	case "completed":
		create.SetScore(data.Score).SetTotal(data.Total)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}
