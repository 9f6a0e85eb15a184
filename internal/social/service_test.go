package social

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
	"github.com/coffeeist/go-coffeeist-backend/internal/users"
)

func newCountersFixture(t *testing.T) (*Counters, *users.Repository) {
	t.Helper()
	mem := store.NewMemory()
	userRepo := users.NewRepository(mem)
	counters := NewCounters(NewRepository(mem, zap.NewNop()), userRepo, zap.NewNop())
	return counters, userRepo
}

func mustUser(t *testing.T, repo *users.Repository, uid string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), users.User{UID: uid, DisplayName: uid}))
}

func counts(t *testing.T, repo *users.Repository, uid string) (followers, following int) {
	t.Helper()
	u, err := repo.Get(context.Background(), uid)
	require.NoError(t, err)
	return u.FollowersCount, u.FollowingCount
}

func TestFollowUser_CreatesEdgeAndBumpsBothCounters(t *testing.T) {
	counters, userRepo := newCountersFixture(t)
	ctx := context.Background()
	mustUser(t, userRepo, "alice")
	mustUser(t, userRepo, "bob")

	require.NoError(t, counters.FollowUser(ctx, "alice", "bob"))

	following, err := counters.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, following)

	reverse, err := counters.IsFollowing(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.False(t, reverse, "edges are directed")

	bobFollowers, _ := counts(t, userRepo, "bob")
	_, aliceFollowing := counts(t, userRepo, "alice")
	assert.Equal(t, 1, bobFollowers)
	assert.Equal(t, 1, aliceFollowing)
}

func TestFollowUser_SelfFollowRejected(t *testing.T) {
	counters, userRepo := newCountersFixture(t)
	mustUser(t, userRepo, "alice")

	err := counters.FollowUser(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowUser_DuplicateRejected(t *testing.T) {
	counters, userRepo := newCountersFixture(t)
	ctx := context.Background()
	mustUser(t, userRepo, "alice")
	mustUser(t, userRepo, "bob")

	require.NoError(t, counters.FollowUser(ctx, "alice", "bob"))
	assert.ErrorIs(t, counters.FollowUser(ctx, "alice", "bob"), ErrAlreadyFollowing)

	bobFollowers, _ := counts(t, userRepo, "bob")
	assert.Equal(t, 1, bobFollowers, "counter must not double-count")
}

func TestUnfollowUser_RoundTripReturnsToZero(t *testing.T) {
	counters, userRepo := newCountersFixture(t)
	ctx := context.Background()
	mustUser(t, userRepo, "alice")
	mustUser(t, userRepo, "bob")

	require.NoError(t, counters.FollowUser(ctx, "alice", "bob"))
	require.NoError(t, counters.UnfollowUser(ctx, "alice", "bob"))

	following, err := counters.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, following)

	bobFollowers, _ := counts(t, userRepo, "bob")
	_, aliceFollowing := counts(t, userRepo, "alice")
	assert.Zero(t, bobFollowers)
	assert.Zero(t, aliceFollowing)
}

func TestUnfollowUser_WithoutEdge(t *testing.T) {
	counters, userRepo := newCountersFixture(t)
	mustUser(t, userRepo, "alice")
	mustUser(t, userRepo, "bob")

	err := counters.UnfollowUser(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestFollowersAndFollowingLists(t *testing.T) {
	counters, userRepo := newCountersFixture(t)
	ctx := context.Background()
	for _, uid := range []string{"alice", "bob", "carol"} {
		mustUser(t, userRepo, uid)
	}

	require.NoError(t, counters.FollowUser(ctx, "alice", "carol"))
	require.NoError(t, counters.FollowUser(ctx, "bob", "carol"))
	require.NoError(t, counters.FollowUser(ctx, "carol", "alice"))

	followers, err := counters.Followers(ctx, "carol")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, followers)

	following, err := counters.Following(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, following)
}

func TestRecount_RepairsDriftedCounters(t *testing.T) {
	counters, userRepo := newCountersFixture(t)
	ctx := context.Background()
	mustUser(t, userRepo, "alice")
	mustUser(t, userRepo, "bob")

	require.NoError(t, counters.FollowUser(ctx, "alice", "bob"))

	// Simulate counter drift from a lost increment.
	require.NoError(t, userRepo.SetFollowCounts(ctx, "bob", 40, 2))

	require.NoError(t, counters.Recount(ctx, "bob"))

	bobFollowers, bobFollowing := counts(t, userRepo, "bob")
	assert.Equal(t, 1, bobFollowers)
	assert.Zero(t, bobFollowing)
}

func TestReconcileAll_SweepsEveryUser(t *testing.T) {
	counters, userRepo := newCountersFixture(t)
	ctx := context.Background()
	for _, uid := range []string{"alice", "bob", "carol"} {
		mustUser(t, userRepo, uid)
	}

	require.NoError(t, counters.FollowUser(ctx, "alice", "bob"))
	require.NoError(t, counters.FollowUser(ctx, "carol", "bob"))

	require.NoError(t, userRepo.SetFollowCounts(ctx, "bob", 99, 99))
	require.NoError(t, userRepo.SetFollowCounts(ctx, "alice", 5, 0))

	require.NoError(t, counters.ReconcileAll(ctx))

	bobFollowers, bobFollowing := counts(t, userRepo, "bob")
	assert.Equal(t, 2, bobFollowers)
	assert.Zero(t, bobFollowing)

	aliceFollowers, aliceFollowing := counts(t, userRepo, "alice")
	assert.Zero(t, aliceFollowers)
	assert.Equal(t, 1, aliceFollowing)
}
