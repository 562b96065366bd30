package store

import (
	"context"
	"fmt"

	"github.com/praxisprep/praxis/ent"
	"github.com/praxisprep/praxis/ent/studyplan"
)

// planRepo implements PlanRepo backed by ent.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, rec PlanRecord) error {
	_, err := r.client.StudyPlan.Create().
		SetPlanID(rec.PlanID).
		SetUserID(rec.UserID).
		SetDocument(string(rec.Document)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *planRepo) Latest(ctx context.Context, userID string) (*PlanRecord, error) {
	e, err := r.client.StudyPlan.Query().
		Where(studyplan.UserID(userID)).
		Order(ent.Desc(studyplan.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest plan: %w", err)
	}

	return &PlanRecord{
		PlanID:    e.PlanID,
		UserID:    e.UserID,
		Document:  []byte(e.Document),
		CreatedAt: e.CreatedAt,
	}, nil
}
