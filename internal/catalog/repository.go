package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

// pageSize bounds a single page when reading a collection to completion.
const pageSize = 100

// prefixEnd is the Firestore idiom for prefix range queries: everything from
// the prefix up to prefix + the highest code point.
const prefixEnd = "\uf8ff"

// Repository provides persistence operations for the shared reference
// catalog (coffee beans, equipment, brewing methods).
type Repository struct {
	store store.Store
	log   *zap.Logger
}

func NewRepository(s store.Store, log *zap.Logger) *Repository {
	return &Repository{store: s, log: log}
}

// Coffee beans.

func (r *Repository) CreateCoffeeBean(ctx context.Context, bean CoffeeBean) (string, error) {
	if !bean.Valid() {
		return "", fmt.Errorf("coffee bean requires brand and name")
	}
	if bean.CreatedAt.IsZero() {
		bean.CreatedAt = time.Now().UTC()
	}
	return r.store.Create(ctx, CollectionCoffeeBeans, bean)
}

func (r *Repository) CoffeeBean(ctx context.Context, id string) (*CoffeeBean, error) {
	doc, err := r.store.Get(ctx, CollectionCoffeeBeans, id)
	if err != nil {
		return nil, err
	}
	var bean CoffeeBean
	if err := doc.Decode(&bean); err != nil {
		return nil, fmt.Errorf("decode coffee bean %s: %w", id, err)
	}
	bean.ID = doc.ID
	return &bean, nil
}

// TopCoffeeBeans returns the best-rated beans, most popular first.
func (r *Repository) TopCoffeeBeans(ctx context.Context, limit int) ([]CoffeeBean, error) {
	if limit <= 0 {
		limit = 50
	}
	docs, err := r.store.Query(ctx, CollectionCoffeeBeans, store.Query{
		OrderBy: "averageRating",
		Desc:    true,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	return r.decodeBeans(docs), nil
}

// SearchCoffeeBeans matches beans whose brand starts with the query string.
func (r *Repository) SearchCoffeeBeans(ctx context.Context, query string) ([]CoffeeBean, error) {
	docs, err := r.store.Query(ctx, CollectionCoffeeBeans, store.Query{
		Filters: []store.Filter{
			{Field: "brand", Op: ">=", Value: query},
			{Field: "brand", Op: "<", Value: query + prefixEnd},
		},
	})
	if err != nil {
		return nil, err
	}
	return r.decodeBeans(docs), nil
}

// AllCoffeeBeans reads the whole collection, paginating to completion so the
// seeder's existing-key set is never truncated.
func (r *Repository) AllCoffeeBeans(ctx context.Context) ([]CoffeeBean, error) {
	var out []CoffeeBean
	for offset := 0; ; offset += pageSize {
		docs, err := r.store.Query(ctx, CollectionCoffeeBeans, store.Query{
			OrderBy: "brand",
			Limit:   pageSize,
			Offset:  offset,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, r.decodeBeans(docs)...)
		if len(docs) < pageSize {
			return out, nil
		}
	}
}

func (r *Repository) decodeBeans(docs []store.Doc) []CoffeeBean {
	out := make([]CoffeeBean, 0, len(docs))
	for _, doc := range docs {
		var bean CoffeeBean
		if err := doc.Decode(&bean); err != nil || !bean.Valid() {
			r.log.Warn("skipping undecodable coffee bean", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		bean.ID = doc.ID
		out = append(out, bean)
	}
	return out
}

// Equipment.

func (r *Repository) CreateEquipment(ctx context.Context, eq Equipment) (string, error) {
	if !eq.Valid() {
		return "", fmt.Errorf("equipment requires brand and model")
	}
	if eq.CreatedAt.IsZero() {
		eq.CreatedAt = time.Now().UTC()
	}
	return r.store.Create(ctx, CollectionEquipment, eq)
}

func (r *Repository) Equipment(ctx context.Context, id string) (*Equipment, error) {
	doc, err := r.store.Get(ctx, CollectionEquipment, id)
	if err != nil {
		return nil, err
	}
	var eq Equipment
	if err := doc.Decode(&eq); err != nil {
		return nil, fmt.Errorf("decode equipment %s: %w", id, err)
	}
	eq.ID = doc.ID
	return &eq, nil
}

// TopEquipment returns the best-rated equipment, optionally restricted to one
// type.
func (r *Repository) TopEquipment(ctx context.Context, equipmentType EquipmentType, limit int) ([]Equipment, error) {
	if limit <= 0 {
		limit = 50
	}
	q := store.Query{
		OrderBy: "averageRating",
		Desc:    true,
		Limit:   limit,
	}
	if equipmentType != "" {
		q.Filters = append(q.Filters, store.Where("type", string(equipmentType)))
	}
	docs, err := r.store.Query(ctx, CollectionEquipment, q)
	if err != nil {
		return nil, err
	}
	return r.decodeEquipment(docs), nil
}

func (r *Repository) SearchEquipment(ctx context.Context, query string, equipmentType EquipmentType) ([]Equipment, error) {
	q := store.Query{
		Filters: []store.Filter{
			{Field: "brand", Op: ">=", Value: query},
			{Field: "brand", Op: "<", Value: query + prefixEnd},
		},
	}
	if equipmentType != "" {
		q.Filters = append(q.Filters, store.Where("type", string(equipmentType)))
	}
	docs, err := r.store.Query(ctx, CollectionEquipment, q)
	if err != nil {
		return nil, err
	}
	return r.decodeEquipment(docs), nil
}

func (r *Repository) AllEquipment(ctx context.Context) ([]Equipment, error) {
	var out []Equipment
	for offset := 0; ; offset += pageSize {
		docs, err := r.store.Query(ctx, CollectionEquipment, store.Query{
			OrderBy: "brand",
			Limit:   pageSize,
			Offset:  offset,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, r.decodeEquipment(docs)...)
		if len(docs) < pageSize {
			return out, nil
		}
	}
}

func (r *Repository) decodeEquipment(docs []store.Doc) []Equipment {
	out := make([]Equipment, 0, len(docs))
	for _, doc := range docs {
		var eq Equipment
		if err := doc.Decode(&eq); err != nil || !eq.Valid() {
			r.log.Warn("skipping undecodable equipment", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		eq.ID = doc.ID
		out = append(out, eq)
	}
	return out
}

// Brewing methods.

func (r *Repository) CreateBrewingMethod(ctx context.Context, method BrewingMethod) (string, error) {
	if !method.Valid() {
		return "", fmt.Errorf("brewing method requires a name")
	}
	return r.store.Create(ctx, CollectionBrewingMethods, method)
}

func (r *Repository) BrewingMethod(ctx context.Context, id string) (*BrewingMethod, error) {
	doc, err := r.store.Get(ctx, CollectionBrewingMethods, id)
	if err != nil {
		return nil, err
	}
	var method BrewingMethod
	if err := doc.Decode(&method); err != nil {
		return nil, fmt.Errorf("decode brewing method %s: %w", id, err)
	}
	method.ID = doc.ID
	return &method, nil
}

func (r *Repository) AllBrewingMethods(ctx context.Context) ([]BrewingMethod, error) {
	var out []BrewingMethod
	for offset := 0; ; offset += pageSize {
		docs, err := r.store.Query(ctx, CollectionBrewingMethods, store.Query{
			OrderBy: "name",
			Limit:   pageSize,
			Offset:  offset,
		})
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			var method BrewingMethod
			if err := doc.Decode(&method); err != nil || !method.Valid() {
				r.log.Warn("skipping undecodable brewing method", zap.String("id", doc.ID), zap.Error(err))
				continue
			}
			method.ID = doc.ID
			out = append(out, method)
		}
		if len(docs) < pageSize {
			return out, nil
		}
	}
}
