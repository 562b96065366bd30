package store

import (
	"context"
	"fmt"

	"github.com/praxisprep/praxis/ent"
	"github.com/praxisprep/praxis/ent/contentcache"
)

// contentRepo implements ContentRepo backed by ent.
type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) Get(ctx context.Context, topicID, mode string) (string, bool, error) {
	e, err := r.client.ContentCache.Query().
		Where(
			contentcache.TopicID(topicID),
			contentcache.ModeEQ(contentcache.Mode(mode)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get content %s/%s: %w", topicID, mode, err)
	}
	return e.Content, true, nil
}

func (r *contentRepo) Put(ctx context.Context, topicID, mode, content string) error {
	e, err := r.client.ContentCache.Query().
		Where(
			contentcache.TopicID(topicID),
			contentcache.ModeEQ(contentcache.Mode(mode)),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.ContentCache.Create().
			SetTopicID(topicID).
			SetMode(contentcache.Mode(mode)).
			SetContent(content).
			Save(ctx)
	case err == nil:
		_, err = r.client.ContentCache.UpdateOne(e).
			SetContent(content).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("put content %s/%s: %w", topicID, mode, err)
	}
	return nil
}
