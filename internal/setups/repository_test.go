package setups

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(store.NewMemory(), zap.NewNop())
}

func TestCreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, UserSetup{
		UserID: "u1",
		Name:   "morning espresso",
		EquipmentIDs: SetupEquipment{
			EspressoMachine: "eq-machine",
			Grinder:         "eq-grinder",
		},
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "morning espresso", got.Name)
	assert.Equal(t, []string{"eq-machine", "eq-grinder"}, got.EquipmentIDs.IDs())
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreate_RequiresUserAndName(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Create(context.Background(), UserSetup{UserID: "u1"})
	assert.Error(t, err)

	_, err = repo.Create(context.Background(), UserSetup{Name: "rig"})
	assert.Error(t, err)
}

func TestDefault_PicksFlaggedSetup(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, UserSetup{UserID: "u1", Name: "travel kit"})
	require.NoError(t, err)
	wantID, err := repo.Create(ctx, UserSetup{UserID: "u1", Name: "home bar", IsDefault: true})
	require.NoError(t, err)

	got, err := repo.Default(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, wantID, got.ID)
}

func TestDefault_NoneFlagged(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, UserSetup{UserID: "u1", Name: "travel kit"})
	require.NoError(t, err)

	_, err = repo.Default(ctx, "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdate_MergesAndKeepsCreatedAt(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, UserSetup{UserID: "u1", Name: "home bar"})
	require.NoError(t, err)
	before, err := repo.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, UserSetup{
		ID:           id,
		Name:         "home bar v2",
		EquipmentIDs: SetupEquipment{Kettle: "eq-kettle"},
	}))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "home bar v2", got.Name)
	assert.Equal(t, "u1", got.UserID, "merge must not clear the owner")
	assert.True(t, got.CreatedAt.Equal(before.CreatedAt))
	assert.Equal(t, []string{"eq-kettle"}, got.EquipmentIDs.IDs())
}

func TestListByUser_OnlyOwnSetups(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, UserSetup{UserID: "u1", Name: "a"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, UserSetup{UserID: "u2", Name: "b"})
	require.NoError(t, err)

	got, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
}

func TestSetupEquipment_IDsOrderAndCount(t *testing.T) {
	e := SetupEquipment{Grinder: "g", Dripper: "d", EspressoMachine: "m"}
	assert.Equal(t, []string{"m", "g", "d"}, e.IDs())
	assert.Equal(t, 3, e.Count())
	assert.Empty(t, SetupEquipment{}.IDs())
}
