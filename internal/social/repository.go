package social

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

const edgePage = 200

// Repository provides persistence operations for follow edges.
type Repository struct {
	store store.Store
	log   *zap.Logger
}

func NewRepository(s store.Store, log *zap.Logger) *Repository {
	return &Repository{store: s, log: log}
}

func (r *Repository) Create(ctx context.Context, f Follow) (string, error) {
	if !f.Valid() {
		return "", fmt.Errorf("invalid follow edge %s -> %s", f.FollowerID, f.FollowingID)
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	id, err := r.store.Create(ctx, Collection, f)
	if err != nil {
		return "", fmt.Errorf("create follow edge: %w", err)
	}
	return id, nil
}

// Edges returns every edge document from follower to following. Duplicate
// edges can accumulate when a create races with another client, so callers
// delete all of them.
func (r *Repository) Edges(ctx context.Context, followerID, followingID string) ([]Follow, error) {
	docs, err := r.store.Query(ctx, Collection, store.Query{
		Filters: []store.Filter{
			store.Where("follower", followerID),
			store.Where("following", followingID),
		},
	})
	if err != nil {
		return nil, err
	}
	return r.decodeAll(docs), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Collection, id)
}

// Followers returns the ids of users following uid.
func (r *Repository) Followers(ctx context.Context, uid string) ([]string, error) {
	return r.edgeIDs(ctx, "following", uid, func(f Follow) string { return f.FollowerID })
}

// Following returns the ids of users uid follows.
func (r *Repository) Following(ctx context.Context, uid string) ([]string, error) {
	return r.edgeIDs(ctx, "follower", uid, func(f Follow) string { return f.FollowingID })
}

func (r *Repository) edgeIDs(ctx context.Context, field, uid string, pick func(Follow) string) ([]string, error) {
	out := []string{}
	for offset := 0; ; offset += edgePage {
		docs, err := r.store.Query(ctx, Collection, store.Query{
			Filters: []store.Filter{store.Where(field, uid)},
			Limit:   edgePage,
			Offset:  offset,
		})
		if err != nil {
			return nil, err
		}
		for _, f := range r.decodeAll(docs) {
			out = append(out, pick(f))
		}
		if len(docs) < edgePage {
			return out, nil
		}
	}
}

func (r *Repository) decodeAll(docs []store.Doc) []Follow {
	out := make([]Follow, 0, len(docs))
	for _, doc := range docs {
		var f Follow
		if err := doc.Decode(&f); err != nil || !f.Valid() {
			r.log.Warn("skipping undecodable follow edge", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		f.ID = doc.ID
		out = append(out, f)
	}
	return out
}
