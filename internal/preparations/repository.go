package preparations

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

const defaultListLimit = 50

// Repository provides persistence operations for preparations.
type Repository struct {
	store store.Store
	log   *zap.Logger
}

func NewRepository(s store.Store, log *zap.Logger) *Repository {
	return &Repository{store: s, log: log}
}

func (r *Repository) Create(ctx context.Context, p *Preparation) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if p.Date.IsZero() {
		p.Date = now
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	id, err := r.store.Create(ctx, Collection, *p)
	if err != nil {
		return "", err
	}
	p.ID = id
	return id, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Preparation, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	var p Preparation
	if err := doc.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode preparation %s: %w", id, err)
	}
	p.ID = doc.ID
	return &p, nil
}

// ListByUser returns a user's preparations, newest brew first.
func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]Preparation, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	docs, err := r.store.Query(ctx, Collection, store.Query{
		Filters: []store.Filter{store.Where("userId", userID)},
		OrderBy: "date",
		Desc:    true,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	return r.decodeAll(docs), nil
}

// AllByUser returns every preparation of a user with no ordering guarantee,
// for aggregation.
func (r *Repository) AllByUser(ctx context.Context, userID string) ([]Preparation, error) {
	docs, err := r.store.Query(ctx, Collection, store.Query{
		Filters: []store.Filter{store.Where("userId", userID)},
	})
	if err != nil {
		return nil, err
	}
	return r.decodeAll(docs), nil
}

// ListPublic returns the public timeline, newest brew first.
func (r *Repository) ListPublic(ctx context.Context, limit int) ([]Preparation, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	docs, err := r.store.Query(ctx, Collection, store.Query{
		Filters: []store.Filter{store.Where("isPublic", true)},
		OrderBy: "date",
		Desc:    true,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	return r.decodeAll(docs), nil
}

// Update merges the mutable fields of a preparation. The original date and
// createdAt are preserved; updatedAt is refreshed.
func (r *Repository) Update(ctx context.Context, p Preparation) error {
	if p.ID == "" {
		return fmt.Errorf("preparation id required")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	fields := map[string]any{
		"coffeeBeanId":      p.CoffeeBeanID,
		"brewingMethodId":   p.BrewingMethodID,
		"measurements":      p.Measurements,
		"preparationRating": p.PreparationRating,
		"coffeeBeanRating":  p.CoffeeBeanRating,
		"characteristics":   p.Characteristics,
		"notes":             p.Notes,
		"isPublic":          p.IsPublic,
		"updatedAt":         time.Now().UTC(),
	}
	if p.SetupID != "" {
		fields["setupId"] = p.SetupID
	}
	if p.ImageURL != "" {
		fields["imageURL"] = p.ImageURL
	}
	return r.store.Set(ctx, Collection, p.ID, fields, true)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Collection, id)
}

func (r *Repository) decodeAll(docs []store.Doc) []Preparation {
	out := make([]Preparation, 0, len(docs))
	for _, doc := range docs {
		var p Preparation
		if err := doc.Decode(&p); err != nil || !p.Decodable() {
			r.log.Warn("skipping undecodable preparation", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		p.ID = doc.ID
		out = append(out, p)
	}
	return out
}
