package inventory

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/cache"
	"github.com/coffeeist/go-coffeeist-backend/internal/catalog"
	"github.com/coffeeist/go-coffeeist-backend/internal/preparations"
	"github.com/coffeeist/go-coffeeist-backend/internal/setups"
	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

type fixture struct {
	store *store.Memory
	preps *preparations.Repository
	agg   *Aggregator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := store.NewMemory()
	prepRepo := preparations.NewRepository(mem, zap.NewNop())
	return &fixture{
		store: mem,
		preps: prepRepo,
		agg:   NewAggregator(mem, prepRepo, cache.New(nil, 0), zap.NewNop()),
	}
}

func (f *fixture) addBean(t *testing.T, brand, name string) string {
	t.Helper()
	id, err := f.store.Create(context.Background(), catalog.CollectionCoffeeBeans,
		catalog.CoffeeBean{Brand: brand, Name: name, RoastLevel: catalog.RoastMedium})
	require.NoError(t, err)
	return id
}

func (f *fixture) addEquipment(t *testing.T, brand, model string) string {
	t.Helper()
	id, err := f.store.Create(context.Background(), catalog.CollectionEquipment,
		catalog.Equipment{Type: catalog.EquipmentGrinder, Brand: brand, Model: model})
	require.NoError(t, err)
	return id
}

func (f *fixture) addSetup(t *testing.T, userID string, equipment setups.SetupEquipment) string {
	t.Helper()
	id, err := f.store.Create(context.Background(), setups.Collection,
		setups.UserSetup{UserID: userID, Name: "rig", EquipmentIDs: equipment})
	require.NoError(t, err)
	return id
}

func (f *fixture) addPrep(t *testing.T, userID, beanID, setupID string) {
	t.Helper()
	p := &preparations.Preparation{
		UserID:          userID,
		CoffeeBeanID:    beanID,
		BrewingMethodID: "method-espresso",
		SetupID:         setupID,
	}
	_, err := f.preps.Create(context.Background(), p)
	require.NoError(t, err)
}

func TestUsedCoffeeBeans_DeduplicatesAndSortsByBrand(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stumptown := f.addBean(t, "Stumptown", "Hair Bender")
	blueBottle := f.addBean(t, "Blue Bottle", "Giant Steps")

	// Two preparations share a bean; three preparations, two distinct beans.
	f.addPrep(t, "u1", stumptown, "")
	f.addPrep(t, "u1", stumptown, "")
	f.addPrep(t, "u1", blueBottle, "")

	beans, err := f.agg.UsedCoffeeBeans(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, beans, 2)
	assert.Equal(t, "Blue Bottle", beans[0].Brand)
	assert.Equal(t, "Stumptown", beans[1].Brand)
}

func TestUsedCoffeeBeans_NoPreparations(t *testing.T) {
	f := newFixture(t)

	beans, err := f.agg.UsedCoffeeBeans(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, beans)
}

func TestUsedCoffeeBeans_DanglingBeanOmitted(t *testing.T) {
	f := newFixture(t)

	real := f.addBean(t, "Onyx Coffee Lab", "Geometry")
	f.addPrep(t, "u1", real, "")
	f.addPrep(t, "u1", "deleted-bean", "")

	beans, err := f.agg.UsedCoffeeBeans(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, beans, 1)
	assert.Equal(t, "Onyx Coffee Lab", beans[0].Brand)
}

func TestUsedCoffeeBeans_OtherUsersInvisible(t *testing.T) {
	f := newFixture(t)

	mine := f.addBean(t, "Counter Culture", "Hologram")
	theirs := f.addBean(t, "Intelligentsia", "Black Cat Classic")
	f.addPrep(t, "u1", mine, "")
	f.addPrep(t, "u2", theirs, "")

	beans, err := f.agg.UsedCoffeeBeans(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, beans, 1)
	assert.Equal(t, "Counter Culture", beans[0].Brand)
}

func TestUsedEquipment_TwoHopAggregation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	grinder := f.addEquipment(t, "Baratza", "Encore")
	machine := f.addEquipment(t, "Breville", "Barista Express")
	kettle := f.addEquipment(t, "Fellow", "Stagg EKG")
	bean := f.addBean(t, "Stumptown", "Hair Bender")

	// Two setups share the grinder; equipment must come out deduplicated.
	setupA := f.addSetup(t, "u1", setups.SetupEquipment{EspressoMachine: machine, Grinder: grinder})
	setupB := f.addSetup(t, "u1", setups.SetupEquipment{Grinder: grinder, Kettle: kettle})

	f.addPrep(t, "u1", bean, setupA)
	f.addPrep(t, "u1", bean, setupA)
	f.addPrep(t, "u1", bean, setupB)

	equipment, err := f.agg.UsedEquipment(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, equipment, 3)
	assert.Equal(t, "Baratza", equipment[0].Brand)
	assert.Equal(t, "Breville", equipment[1].Brand)
	assert.Equal(t, "Fellow", equipment[2].Brand)
}

func TestUsedEquipment_SortsByBrandThenModel(t *testing.T) {
	f := newFixture(t)

	pro := f.addEquipment(t, "Breville", "Barista Pro")
	express := f.addEquipment(t, "Breville", "Barista Express")
	bean := f.addBean(t, "Stumptown", "Hair Bender")

	setup := f.addSetup(t, "u1", setups.SetupEquipment{EspressoMachine: express, Grinder: pro})
	f.addPrep(t, "u1", bean, setup)

	equipment, err := f.agg.UsedEquipment(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, equipment, 2)
	assert.Equal(t, "Barista Express", equipment[0].Model)
	assert.Equal(t, "Barista Pro", equipment[1].Model)
}

func TestUsedEquipment_PreparationsWithoutSetup(t *testing.T) {
	f := newFixture(t)

	bean := f.addBean(t, "Stumptown", "Hair Bender")
	f.addPrep(t, "u1", bean, "")

	equipment, err := f.agg.UsedEquipment(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, equipment)
}

func TestUsedEquipment_DanglingSetupSkipped(t *testing.T) {
	f := newFixture(t)

	grinder := f.addEquipment(t, "Baratza", "Encore")
	bean := f.addBean(t, "Stumptown", "Hair Bender")
	setup := f.addSetup(t, "u1", setups.SetupEquipment{Grinder: grinder})

	f.addPrep(t, "u1", bean, setup)
	f.addPrep(t, "u1", bean, "setup-deleted-long-ago")

	equipment, err := f.agg.UsedEquipment(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, equipment, 1)
	assert.Equal(t, "Encore", equipment[0].Model)
}

func TestUsedEquipment_SameEquipmentInTwoSlots(t *testing.T) {
	f := newFixture(t)

	grinder := f.addEquipment(t, "Baratza", "Encore")
	bean := f.addBean(t, "Stumptown", "Hair Bender")

	// One id occupying two slots must still aggregate to a single entry.
	setup := f.addSetup(t, "u1", setups.SetupEquipment{Grinder: grinder, Scale: grinder})
	f.addPrep(t, "u1", bean, setup)

	equipment, err := f.agg.UsedEquipment(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, equipment, 1)
}

func TestAggregator_ServesFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := cache.New(client, 0)

	mem := store.NewMemory()
	prepRepo := preparations.NewRepository(mem, zap.NewNop())
	f := &fixture{store: mem, preps: prepRepo, agg: NewAggregator(mem, prepRepo, c, zap.NewNop())}
	ctx := context.Background()

	bean := f.addBean(t, "Stumptown", "Hair Bender")
	f.addPrep(t, "u1", bean, "")

	first, err := f.agg.UsedCoffeeBeans(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A new preparation does not show up until the cached aggregate expires.
	newer := f.addBean(t, "Blue Bottle", "Giant Steps")
	f.addPrep(t, "u1", newer, "")

	cached, err := f.agg.UsedCoffeeBeans(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, cached, 1, "second read comes from the cache")

	// Dropping the key forces a fresh aggregation.
	require.NoError(t, c.Delete(ctx, cache.UsedBeansKey("u1")))
	fresh, err := f.agg.UsedCoffeeBeans(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}
