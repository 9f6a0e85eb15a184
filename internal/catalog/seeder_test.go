package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

func newSeederFixture(t *testing.T) (*Seeder, *Repository) {
	t.Helper()
	repo := NewRepository(store.NewMemory(), zap.NewNop())
	return NewSeeder(repo, zap.NewNop()), repo
}

func TestSeeder_EmptyStoreInsertsEverything(t *testing.T) {
	seeder, repo := newSeederFixture(t)
	ctx := context.Background()
	seed := Defaults("system")

	inserted, err := seeder.Reconcile(ctx, seed)
	require.NoError(t, err)

	assert.Len(t, inserted.BrewingMethods, len(seed.BrewingMethods))
	assert.Len(t, inserted.CoffeeBeans, len(seed.CoffeeBeans))
	assert.Len(t, inserted.Equipment, len(seed.Equipment))

	methods, err := repo.AllBrewingMethods(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 5)
}

func TestSeeder_SecondRunInsertsNothing(t *testing.T) {
	seeder, _ := newSeederFixture(t)
	ctx := context.Background()
	seed := Defaults("system")

	_, err := seeder.Reconcile(ctx, seed)
	require.NoError(t, err)

	again, err := seeder.Reconcile(ctx, seed)
	require.NoError(t, err)
	assert.Zero(t, again.Total())
}

func TestSeeder_PartialStoreInsertsOnlyMissing(t *testing.T) {
	seeder, repo := newSeederFixture(t)
	ctx := context.Background()
	seed := Defaults("system")

	// Pre-insert one default by its natural key; the seeder must skip it.
	_, err := repo.CreateCoffeeBean(ctx, CoffeeBean{
		Brand: "Blue Bottle", Name: "Giant Steps", Origin: "Ethiopia", RoastLevel: RoastMedium,
	})
	require.NoError(t, err)

	inserted, err := seeder.ReconcileCoffeeBeans(ctx, seed.CoffeeBeans)
	require.NoError(t, err)

	assert.Len(t, inserted, len(seed.CoffeeBeans)-1)
	for _, bean := range inserted {
		assert.NotEqual(t, "Blue Bottle|Giant Steps", bean.Key())
	}
}

func TestSeeder_MatchesOnKeyNotOnOtherFields(t *testing.T) {
	seeder, repo := newSeederFixture(t)
	ctx := context.Background()

	// Same key, different payload: still counts as existing.
	_, err := repo.CreateEquipment(ctx, Equipment{
		Type: EquipmentGrinder, Brand: "Baratza", Model: "Encore", Category: "whatever",
	})
	require.NoError(t, err)

	inserted, err := seeder.ReconcileEquipment(ctx, Defaults("system").Equipment)
	require.NoError(t, err)

	for _, eq := range inserted {
		assert.NotEqual(t, "Baratza|Encore", eq.Key())
	}
}

func TestSeeder_InsertFailureDoesNotStopRemaining(t *testing.T) {
	repo := NewRepository(store.NewMemory(), zap.NewNop())
	seeder := NewSeeder(repo, zap.NewNop())

	// An invalid default cannot be inserted; the rest must still land.
	defaults := []BrewingMethod{
		{Name: "Espresso", Category: CategoryEspresso},
		{Name: ""},
		{Name: "Chemex", Category: CategoryPourOver},
	}

	inserted, err := seeder.ReconcileBrewingMethods(context.Background(), defaults)
	require.Error(t, err)
	assert.Len(t, inserted, 2)
}

func TestDefaults_KeysAreUnique(t *testing.T) {
	seed := Defaults("system")

	seen := map[string]bool{}
	for _, m := range seed.BrewingMethods {
		assert.False(t, seen[m.Key()], "duplicate brewing method %q", m.Key())
		seen[m.Key()] = true
	}
	seen = map[string]bool{}
	for _, b := range seed.CoffeeBeans {
		assert.False(t, seen[b.Key()], "duplicate coffee bean %q", b.Key())
		seen[b.Key()] = true
	}
	seen = map[string]bool{}
	for _, e := range seed.Equipment {
		assert.False(t, seen[e.Key()], "duplicate equipment %q", e.Key())
		seen[e.Key()] = true
	}

	assert.Len(t, seed.BrewingMethods, 5)
	assert.Len(t, seed.CoffeeBeans, 18)
	assert.Len(t, seed.Equipment, 15)
}
