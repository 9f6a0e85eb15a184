package inventory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/coffeeist/go-coffeeist-backend/internal/cache"
	"github.com/coffeeist/go-coffeeist-backend/internal/catalog"
	"github.com/coffeeist/go-coffeeist-backend/internal/preparations"
	"github.com/coffeeist/go-coffeeist-backend/internal/setups"
	"github.com/coffeeist/go-coffeeist-backend/internal/store"
)

// setupFetchConcurrency bounds the parallel setup-document fetches inside
// UsedEquipment.
const setupFetchConcurrency = 4

// Aggregator reconstructs what a user has actually brewed with. Equipment
// usage is two hops away from a preparation (Preparation -> Setup ->
// Equipment), so both operations materialize a deduplicated id set before the
// final batched resolve.
type Aggregator struct {
	store store.Store
	preps *preparations.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewAggregator(s store.Store, preps *preparations.Repository, c *cache.Cache, log *zap.Logger) *Aggregator {
	return &Aggregator{store: s, preps: preps, cache: c, log: log}
}

// UsedCoffeeBeans returns the distinct coffee beans referenced by the user's
// preparations, sorted by brand. Beans whose documents no longer exist are
// omitted.
func (a *Aggregator) UsedCoffeeBeans(ctx context.Context, userID string) ([]catalog.CoffeeBean, error) {
	var cached []catalog.CoffeeBean
	if hit, err := a.cache.GetJSON(ctx, cache.UsedBeansKey(userID), &cached); err == nil && hit {
		return cached, nil
	}

	preps, err := a.preps.AllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idSet := make(map[string]struct{}, len(preps))
	for _, p := range preps {
		idSet[p.CoffeeBeanID] = struct{}{}
	}
	if len(idSet) == 0 {
		return []catalog.CoffeeBean{}, nil
	}

	docs, err := store.ResolveByIDs(ctx, a.store, catalog.CollectionCoffeeBeans, setToSlice(idSet))
	if err != nil {
		return nil, err
	}

	beans := make([]catalog.CoffeeBean, 0, len(docs))
	for _, doc := range docs {
		var bean catalog.CoffeeBean
		if err := doc.Decode(&bean); err != nil || !bean.Valid() {
			a.log.Warn("skipping undecodable coffee bean", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		bean.ID = doc.ID
		beans = append(beans, bean)
	}

	sort.SliceStable(beans, func(i, j int) bool { return beans[i].Brand < beans[j].Brand })

	if err := a.cache.SetJSON(ctx, cache.UsedBeansKey(userID), beans); err != nil {
		a.log.Warn("used beans not cached", zap.String("uid", userID), zap.Error(err))
	}
	return beans, nil
}

// UsedEquipment returns the distinct equipment referenced by the setups of
// the user's preparations, sorted by brand then model. Preparations without a
// setup, and setups that no longer resolve or decode, contribute nothing.
func (a *Aggregator) UsedEquipment(ctx context.Context, userID string) ([]catalog.Equipment, error) {
	var cached []catalog.Equipment
	if hit, err := a.cache.GetJSON(ctx, cache.UsedEquipmentKey(userID), &cached); err == nil && hit {
		return cached, nil
	}

	preps, err := a.preps.AllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// A handful of setups is typically shared by many preparations; fetch
	// each distinct setup once.
	setupIDs := make(map[string]struct{})
	for _, p := range preps {
		if p.SetupID != "" {
			setupIDs[p.SetupID] = struct{}{}
		}
	}

	equipmentIDs, err := a.collectEquipmentIDs(ctx, setupIDs)
	if err != nil {
		return nil, err
	}
	if len(equipmentIDs) == 0 {
		return []catalog.Equipment{}, nil
	}

	docs, err := store.ResolveByIDs(ctx, a.store, catalog.CollectionEquipment, setToSlice(equipmentIDs))
	if err != nil {
		return nil, err
	}

	equipment := make([]catalog.Equipment, 0, len(docs))
	for _, doc := range docs {
		var eq catalog.Equipment
		if err := doc.Decode(&eq); err != nil || !eq.Valid() {
			a.log.Warn("skipping undecodable equipment", zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		eq.ID = doc.ID
		equipment = append(equipment, eq)
	}

	sort.SliceStable(equipment, func(i, j int) bool {
		if equipment[i].Brand == equipment[j].Brand {
			return equipment[i].Model < equipment[j].Model
		}
		return equipment[i].Brand < equipment[j].Brand
	})

	if err := a.cache.SetJSON(ctx, cache.UsedEquipmentKey(userID), equipment); err != nil {
		a.log.Warn("used equipment not cached", zap.String("uid", userID), zap.Error(err))
	}
	return equipment, nil
}

// collectEquipmentIDs fetches each distinct setup concurrently and unions the
// slot ids into one set. A setup that fails to resolve or decode is skipped;
// only context cancellation aborts the collection.
func (a *Aggregator) collectEquipmentIDs(ctx context.Context, setupIDs map[string]struct{}) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	if len(setupIDs) == 0 {
		return out, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(setupFetchConcurrency)

	for setupID := range setupIDs {
		setupID := setupID
		g.Go(func() error {
			doc, err := a.store.Get(gctx, setups.Collection, setupID)
			if errors.Is(err, store.ErrNotFound) {
				a.log.Warn("preparation references missing setup", zap.String("setupId", setupID))
				return nil
			}
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				a.log.Warn("setup fetch failed", zap.String("setupId", setupID), zap.Error(err))
				return nil
			}

			var setup setups.UserSetup
			if err := doc.Decode(&setup); err != nil {
				a.log.Warn("skipping undecodable setup", zap.String("setupId", setupID), zap.Error(err))
				return nil
			}

			ids := setup.EquipmentIDs.IDs()
			mu.Lock()
			for _, id := range ids {
				out[id] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
