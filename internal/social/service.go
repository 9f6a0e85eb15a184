package social

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/users"
)

// Counters maintains the follow graph and the denormalized followersCount /
// followingCount fields on user documents. The edge write and the two
// counter updates are independent remote calls, not a transaction: a failure
// after the edge write leaves the counters stale, and the scheduled recount
// repairs the drift.
type Counters struct {
	repo  *Repository
	users *users.Repository
	log   *zap.Logger
}

func NewCounters(repo *Repository, userRepo *users.Repository, log *zap.Logger) *Counters {
	return &Counters{repo: repo, users: userRepo, log: log}
}

// FollowUser creates the edge from followerID to followingID and bumps both
// counters.
func (c *Counters) FollowUser(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	existing, err := c.repo.Edges(ctx, followerID, followingID)
	if err != nil {
		return fmt.Errorf("check follow edge: %w", err)
	}
	if len(existing) > 0 {
		return ErrAlreadyFollowing
	}

	if _, err := c.repo.Create(ctx, Follow{FollowerID: followerID, FollowingID: followingID}); err != nil {
		return err
	}

	if err := c.users.Increment(ctx, followerID, users.FieldFollowingCount, 1); err != nil {
		c.log.Warn("followingCount not incremented", zap.String("uid", followerID), zap.Error(err))
	}
	if err := c.users.Increment(ctx, followingID, users.FieldFollowersCount, 1); err != nil {
		c.log.Warn("followersCount not incremented", zap.String("uid", followingID), zap.Error(err))
	}
	return nil
}

// UnfollowUser removes every edge from followerID to followingID and drops
// both counters. The decrements are unconditional once at least one edge was
// found, even when deleting some edge documents fails.
func (c *Counters) UnfollowUser(ctx context.Context, followerID, followingID string) error {
	edges, err := c.repo.Edges(ctx, followerID, followingID)
	if err != nil {
		return fmt.Errorf("find follow edge: %w", err)
	}
	if len(edges) == 0 {
		return ErrNotFollowing
	}

	var deleteErrs []error
	for _, edge := range edges {
		if err := c.repo.Delete(ctx, edge.ID); err != nil {
			deleteErrs = append(deleteErrs, fmt.Errorf("delete edge %s: %w", edge.ID, err))
		}
	}

	if err := c.users.Increment(ctx, followerID, users.FieldFollowingCount, -1); err != nil {
		c.log.Warn("followingCount not decremented", zap.String("uid", followerID), zap.Error(err))
	}
	if err := c.users.Increment(ctx, followingID, users.FieldFollowersCount, -1); err != nil {
		c.log.Warn("followersCount not decremented", zap.String("uid", followingID), zap.Error(err))
	}
	return errors.Join(deleteErrs...)
}

// IsFollowing reports whether an edge from followerID to followingID exists.
func (c *Counters) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	edges, err := c.repo.Edges(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	return len(edges) > 0, nil
}

// Followers returns the ids of users following uid.
func (c *Counters) Followers(ctx context.Context, uid string) ([]string, error) {
	return c.repo.Followers(ctx, uid)
}

// Following returns the ids of users uid follows.
func (c *Counters) Following(ctx context.Context, uid string) ([]string, error) {
	return c.repo.Following(ctx, uid)
}

// Recount recomputes both counters for one user from the edge collection and
// writes them back.
func (c *Counters) Recount(ctx context.Context, uid string) error {
	followers, err := c.repo.Followers(ctx, uid)
	if err != nil {
		return fmt.Errorf("recount followers for %s: %w", uid, err)
	}
	following, err := c.repo.Following(ctx, uid)
	if err != nil {
		return fmt.Errorf("recount following for %s: %w", uid, err)
	}
	if err := c.users.SetFollowCounts(ctx, uid, len(followers), len(following)); err != nil {
		return fmt.Errorf("write follow counts for %s: %w", uid, err)
	}
	return nil
}

// ReconcileAll recounts every user. Per-user failures are collected so one
// bad document does not stop the sweep.
func (c *Counters) ReconcileAll(ctx context.Context) error {
	all, err := c.users.All(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	var errs []error
	for _, u := range all {
		if err := c.Recount(ctx, u.UID); err != nil {
			c.log.Warn("follow recount failed", zap.String("uid", u.UID), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
