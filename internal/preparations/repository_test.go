package preparations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

func newRepo(t *testing.T) (*Repository, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return NewRepository(mem, zap.NewNop()), mem
}

func validPrep(userID string) *Preparation {
	return &Preparation{
		UserID:            userID,
		CoffeeBeanID:      "bean-1",
		BrewingMethodID:   "method-1",
		PreparationRating: 8,
		CoffeeBeanRating:  7,
		Measurements: Measurements{
			GrindSize:          "Fine",
			GroundCoffeeWeight: "18g",
			ExtractionTime:     "28s",
			YieldWeight:        "36g",
		},
		Characteristics: Characteristics{Bitterness: 4, Acidity: 6, Sweetness: 7, Body: 8, Crema: 9, Aroma: 8, Aftertaste: 7},
	}
}

func TestCreate_SetsTimestampsAndID(t *testing.T) {
	repo, _ := newRepo(t)
	p := validPrep("u1")

	id, err := repo.Create(context.Background(), p)
	require.NoError(t, err)

	assert.NotEmpty(t, id)
	assert.Equal(t, id, p.ID)
	assert.False(t, p.Date.IsZero(), "date defaults to now")
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestCreate_KeepsExplicitBrewDate(t *testing.T) {
	repo, _ := newRepo(t)
	brewed := time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)
	p := validPrep("u1")
	p.Date = brewed

	_, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, brewed, p.Date)
}

func TestCreate_RejectsMissingReferences(t *testing.T) {
	repo, _ := newRepo(t)

	for name, breaker := range map[string]func(*Preparation){
		"no user":           func(p *Preparation) { p.UserID = "" },
		"no bean":           func(p *Preparation) { p.CoffeeBeanID = "" },
		"no brewing method": func(p *Preparation) { p.BrewingMethodID = "" },
		"rating too high":   func(p *Preparation) { p.PreparationRating = 11 },
		"score out of range": func(p *Preparation) {
			p.Characteristics.Crema = 12
		},
	} {
		t.Run(name, func(t *testing.T) {
			p := validPrep("u1")
			breaker(p)
			_, err := repo.Create(context.Background(), p)
			assert.Error(t, err)
		})
	}
}

func TestListByUser_NewestBrewFirst(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	old := validPrep("u1")
	old.Date = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	recent := validPrep("u1")
	recent.Date = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	other := validPrep("u2")

	for _, p := range []*Preparation{old, recent, other} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	got, err := repo.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, recent.ID, got[0].ID)
	assert.Equal(t, old.ID, got[1].ID)
}

func TestListPublic_OnlyPublicPreparations(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	private := validPrep("u1")
	public := validPrep("u2")
	public.IsPublic = true

	_, err := repo.Create(ctx, private)
	require.NoError(t, err)
	_, err = repo.Create(ctx, public)
	require.NoError(t, err)

	got, err := repo.ListPublic(ctx, 0)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, public.ID, got[0].ID)
}

func TestUpdate_PreservesDateAndCreatedAt(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	p := validPrep("u1")
	p.Date = time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)
	createdAt := p.CreatedAt

	edited := *p
	edited.Notes = "ran it slightly finer"
	edited.PreparationRating = 9
	require.NoError(t, repo.Update(ctx, edited))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, "ran it slightly finer", got.Notes)
	assert.Equal(t, 9, got.PreparationRating)
	assert.True(t, got.Date.Equal(p.Date), "brew date is immutable")
	assert.True(t, got.CreatedAt.Equal(createdAt))
	assert.True(t, got.UpdatedAt.After(createdAt) || got.UpdatedAt.Equal(createdAt))
}

func TestUpdate_RequiresID(t *testing.T) {
	repo, _ := newRepo(t)
	err := repo.Update(context.Background(), *validPrep("u1"))
	assert.Error(t, err)
}

func TestAllByUser_SkipsUndecodableDocuments(t *testing.T) {
	repo, mem := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, validPrep("u1"))
	require.NoError(t, err)

	// A legacy document missing its required references.
	require.NoError(t, mem.Set(ctx, Collection, "broken", map[string]any{"userId": "u1"}, false))

	got, err := repo.AllByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newRepo(t)
	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
