package setups

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

// Repository provides persistence operations for user setups.
type Repository struct {
	store store.Store
	log   *zap.Logger
}

func NewRepository(s store.Store, log *zap.Logger) *Repository {
	return &Repository{store: s, log: log}
}

func (r *Repository) Create(ctx context.Context, setup UserSetup) (string, error) {
	if !setup.Valid() {
		return "", fmt.Errorf("setup requires userId and name")
	}
	now := time.Now().UTC()
	setup.CreatedAt = now
	setup.UpdatedAt = now
	return r.store.Create(ctx, Collection, setup)
}

func (r *Repository) Get(ctx context.Context, id string) (*UserSetup, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	var setup UserSetup
	if err := doc.Decode(&setup); err != nil {
		return nil, fmt.Errorf("decode setup %s: %w", id, err)
	}
	setup.ID = doc.ID
	return &setup, nil
}

// ListByUser returns a user's setups, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]UserSetup, error) {
	docs, err := r.store.Query(ctx, Collection, store.Query{
		Filters: []store.Filter{store.Where("userId", userID)},
		OrderBy: "createdAt",
		Desc:    true,
	})
	if err != nil {
		return nil, err
	}

	out := make([]UserSetup, 0, len(docs))
	for _, doc := range docs {
		var setup UserSetup
		if err := doc.Decode(&setup); err != nil || !setup.Valid() {
			r.log.Warn("skipping undecodable setup", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		setup.ID = doc.ID
		out = append(out, setup)
	}
	return out, nil
}

// Default returns the user's default setup, or store.ErrNotFound.
func (r *Repository) Default(ctx context.Context, userID string) (*UserSetup, error) {
	docs, err := r.store.Query(ctx, Collection, store.Query{
		Filters: []store.Filter{
			store.Where("userId", userID),
			store.Where("isDefault", true),
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, store.ErrNotFound
	}

	var setup UserSetup
	if err := docs[0].Decode(&setup); err != nil {
		return nil, fmt.Errorf("decode setup %s: %w", docs[0].ID, err)
	}
	setup.ID = docs[0].ID
	return &setup, nil
}

// Update merges the mutable fields of a setup. CreatedAt is never touched.
func (r *Repository) Update(ctx context.Context, setup UserSetup) error {
	if setup.ID == "" {
		return fmt.Errorf("setup id required")
	}
	return r.store.Set(ctx, Collection, setup.ID, map[string]any{
		"name":            setup.Name,
		"brewingMethodId": setup.BrewingMethodID,
		"equipmentIds":    setup.EquipmentIDs,
		"isDefault":       setup.IsDefault,
		"isPublic":        setup.IsPublic,
		"updatedAt":       time.Now().UTC(),
	}, true)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Collection, id)
}
