package store

import (
	"context"
	"fmt"

	"github.com/praxisprep/praxis/ent"
	"github.com/praxisprep/praxis/ent/kventry"
)

// kvRepo implements KVRepo backed by ent.
type kvRepo struct {
	client *ent.Client
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, err := r.client.KVEntry.Query().
		Where(kventry.Key(key)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(e.Value), true, nil
}

func (r *kvRepo) Set(ctx context.Context, key string, value []byte) error {
	e, err := r.client.KVEntry.Query().
		Where(kventry.Key(key)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.KVEntry.Create().
			SetKey(key).
			SetValue(string(value)).
			Save(ctx)
	case err == nil:
		_, err = r.client.KVEntry.UpdateOne(e).
			SetValue(string(value)).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.KVEntry.Delete().
		Where(kventry.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
