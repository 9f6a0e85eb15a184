package stash

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

// Repository provides persistence operations for a user's personal stash:
// beans on hand, beans wished for, and equipment owned. Entries reference the
// shared catalog by id but carry per-user fields (quantity, price, personal
// ratings) that never feed back into catalog documents.
type Repository struct {
	store store.Store
	log   *zap.Logger
}

func NewRepository(s store.Store, log *zap.Logger) *Repository {
	return &Repository{store: s, log: log}
}

// Coffee inventory.

func (r *Repository) AddCoffee(ctx context.Context, e *CoffeeEntry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if e.PurchaseDate.IsZero() {
		e.PurchaseDate = now
	}
	e.CreatedAt = now

	id, err := r.store.Create(ctx, CollectionCoffeeInventory, *e)
	if err != nil {
		return "", err
	}
	e.ID = id
	return id, nil
}

// CoffeeInventory returns a user's bags, most recent purchase first. Finished
// bags are hidden unless includeFinished is set.
func (r *Repository) CoffeeInventory(ctx context.Context, userID string, includeFinished bool) ([]CoffeeEntry, error) {
	filters := []store.Filter{store.Where("userId", userID)}
	if !includeFinished {
		filters = append(filters, store.Where("isFinished", false))
	}
	docs, err := r.store.Query(ctx, CollectionCoffeeInventory, store.Query{
		Filters: filters,
		OrderBy: "purchaseDate",
		Desc:    true,
	})
	if err != nil {
		return nil, err
	}

	out := make([]CoffeeEntry, 0, len(docs))
	for _, doc := range docs {
		var e CoffeeEntry
		if err := doc.Decode(&e); err != nil || e.Validate() != nil {
			r.log.Warn("skipping undecodable coffee inventory entry", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		e.ID = doc.ID
		out = append(out, e)
	}
	return out, nil
}

// UpdateCoffee merges the mutable fields of an inventory entry, including the
// isFinished flag that retires a bag from the default listing.
func (r *Repository) UpdateCoffee(ctx context.Context, e CoffeeEntry) error {
	if e.ID == "" {
		return fmt.Errorf("coffee inventory entry id required")
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if err := r.authorize(ctx, CollectionCoffeeInventory, e.UserID, e.ID); err != nil {
		return err
	}

	fields := map[string]any{
		"quantity":       e.Quantity,
		"price":          e.Price,
		"personalRating": e.PersonalRating,
		"personalNotes":  e.PersonalNotes,
		"isFinished":     e.IsFinished,
	}
	if !e.PurchaseDate.IsZero() {
		fields["purchaseDate"] = e.PurchaseDate
	}
	return r.store.Set(ctx, CollectionCoffeeInventory, e.ID, fields, true)
}

// Wishlist.

func (r *Repository) AddWish(ctx context.Context, e *WishEntry) (string, error) {
	if e.Priority == 0 {
		e.Priority = defaultWishPriority
	}
	if err := e.Validate(); err != nil {
		return "", err
	}
	e.CreatedAt = time.Now().UTC()

	id, err := r.store.Create(ctx, CollectionCoffeeWishlist, *e)
	if err != nil {
		return "", err
	}
	e.ID = id
	return id, nil
}

// Wishlist returns a user's wished-for beans, highest priority first, newest
// first within a priority.
func (r *Repository) Wishlist(ctx context.Context, userID string) ([]WishEntry, error) {
	docs, err := r.store.Query(ctx, CollectionCoffeeWishlist, store.Query{
		Filters: []store.Filter{store.Where("userId", userID)},
	})
	if err != nil {
		return nil, err
	}

	out := make([]WishEntry, 0, len(docs))
	for _, doc := range docs {
		var e WishEntry
		if err := doc.Decode(&e); err != nil || e.Validate() != nil {
			r.log.Warn("skipping undecodable wishlist entry", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		e.ID = doc.ID
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *Repository) RemoveWish(ctx context.Context, userID, id string) error {
	if err := r.authorize(ctx, CollectionCoffeeWishlist, userID, id); err != nil {
		return err
	}
	return r.store.Delete(ctx, CollectionCoffeeWishlist, id)
}

// Owned equipment.

func (r *Repository) AddEquipment(ctx context.Context, e *EquipmentEntry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	e.CreatedAt = time.Now().UTC()

	id, err := r.store.Create(ctx, CollectionEquipmentOwned, *e)
	if err != nil {
		return "", err
	}
	e.ID = id
	return id, nil
}

// OwnedEquipment returns a user's gear, in-use items first, newest first
// within each group.
func (r *Repository) OwnedEquipment(ctx context.Context, userID string) ([]EquipmentEntry, error) {
	docs, err := r.store.Query(ctx, CollectionEquipmentOwned, store.Query{
		Filters: []store.Filter{store.Where("userId", userID)},
	})
	if err != nil {
		return nil, err
	}

	out := make([]EquipmentEntry, 0, len(docs))
	for _, doc := range docs {
		var e EquipmentEntry
		if err := doc.Decode(&e); err != nil || e.Validate() != nil {
			r.log.Warn("skipping undecodable owned equipment entry", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		e.ID = doc.ID
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsCurrentlyUsing != out[j].IsCurrentlyUsing {
			return out[i].IsCurrentlyUsing
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *Repository) authorize(ctx context.Context, collection, userID, id string) error {
	doc, err := r.store.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	var owner struct {
		UserID string `firestore:"userId" json:"userId"`
	}
	if err := doc.Decode(&owner); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	if owner.UserID != userID {
		return ErrNotOwner
	}
	return nil
}
