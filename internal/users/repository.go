package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

// Repository provides persistence operations for user documents.
type Repository struct {
	store store.Store
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) Get(ctx context.Context, uid string) (*User, error) {
	doc, err := r.store.Get(ctx, Collection, uid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var u User
	if err := doc.Decode(&u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", uid, err)
	}
	if !u.Valid() {
		return nil, ErrNotFound
	}
	return &u, nil
}

// Create writes a new user document keyed by uid.
func (r *Repository) Create(ctx context.Context, u User) error {
	if !u.Valid() {
		return fmt.Errorf("user uid required")
	}
	if u.JoinDate.IsZero() {
		u.JoinDate = time.Now().UTC()
	}
	if len(u.UserTypes) == 0 {
		u.UserTypes = []UserType{TypeAmateurBarista}
	}
	return r.store.Set(ctx, Collection, u.UID, u, false)
}

// Update merges profile fields onto an existing user document.
func (r *Repository) Update(ctx context.Context, u User) error {
	if !u.Valid() {
		return fmt.Errorf("user uid required")
	}
	return r.store.Set(ctx, Collection, u.UID, map[string]any{
		"displayName":     u.DisplayName,
		"profileImageURL": u.ProfileImageURL,
		"bio":             u.Bio,
		"location":        u.Location,
		"userTypes":       u.UserTypes,
		"isPublic":        u.IsPublic,
	}, true)
}

// Increment adds delta to one of the user's counter fields.
func (r *Repository) Increment(ctx context.Context, uid, field string, delta int64) error {
	if err := r.store.Increment(ctx, Collection, uid, field, delta); err != nil {
		return fmt.Errorf("increment %s for %s: %w", field, uid, err)
	}
	return nil
}

// SetFollowCounts overwrites both follow counters, used by the drift-repair
// recount.
func (r *Repository) SetFollowCounts(ctx context.Context, uid string, followers, following int) error {
	return r.store.Set(ctx, Collection, uid, map[string]any{
		FieldFollowersCount: followers,
		FieldFollowingCount: following,
	}, true)
}

// All pages through every user document, for maintenance jobs.
func (r *Repository) All(ctx context.Context) ([]User, error) {
	const page = 200

	var out []User
	for offset := 0; ; offset += page {
		docs, err := r.store.Query(ctx, Collection, store.Query{
			OrderBy: "uid",
			Limit:   page,
			Offset:  offset,
		})
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			var u User
			if err := doc.Decode(&u); err != nil || !u.Valid() {
				continue
			}
			out = append(out, u)
		}
		if len(docs) < page {
			return out, nil
		}
	}
}
