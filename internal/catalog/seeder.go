package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Seeder reconciles a default catalog against what already exists in the
// store, keyed by each type's natural composite key. Running it on every
// start is safe: entries whose key is already present are never re-inserted.
type Seeder struct {
	repo *Repository
	log  *zap.Logger
}

func NewSeeder(repo *Repository, log *zap.Logger) *Seeder {
	return &Seeder{repo: repo, log: log}
}

// Inserted reports what a Reconcile run actually wrote.
type Inserted struct {
	BrewingMethods []BrewingMethod
	CoffeeBeans    []CoffeeBean
	Equipment      []Equipment
}

func (i Inserted) Total() int {
	return len(i.BrewingMethods) + len(i.CoffeeBeans) + len(i.Equipment)
}

// Reconcile runs all three catalog reconciliations. Insert failures are
// best-effort per item; the joined error reports every failure without
// stopping the remaining inserts.
func (s *Seeder) Reconcile(ctx context.Context, seed Seed) (Inserted, error) {
	var out Inserted
	var errs []error

	methods, err := s.ReconcileBrewingMethods(ctx, seed.BrewingMethods)
	out.BrewingMethods = methods
	errs = append(errs, err)

	beans, err := s.ReconcileCoffeeBeans(ctx, seed.CoffeeBeans)
	out.CoffeeBeans = beans
	errs = append(errs, err)

	equipment, err := s.ReconcileEquipment(ctx, seed.Equipment)
	out.Equipment = equipment
	errs = append(errs, err)

	s.log.Info("catalog reconciled",
		zap.Int("brewing_methods", len(out.BrewingMethods)),
		zap.Int("coffee_beans", len(out.CoffeeBeans)),
		zap.Int("equipment", len(out.Equipment)))

	return out, errors.Join(errs...)
}

func (s *Seeder) ReconcileBrewingMethods(ctx context.Context, defaults []BrewingMethod) ([]BrewingMethod, error) {
	existing, err := s.repo.AllBrewingMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brewing methods: %w", err)
	}
	return reconcile(ctx, defaults, existing, BrewingMethod.Key, s.repo.CreateBrewingMethod)
}

func (s *Seeder) ReconcileCoffeeBeans(ctx context.Context, defaults []CoffeeBean) ([]CoffeeBean, error) {
	existing, err := s.repo.AllCoffeeBeans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coffee beans: %w", err)
	}
	return reconcile(ctx, defaults, existing, CoffeeBean.Key, s.repo.CreateCoffeeBean)
}

func (s *Seeder) ReconcileEquipment(ctx context.Context, defaults []Equipment) ([]Equipment, error) {
	existing, err := s.repo.AllEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return reconcile(ctx, defaults, existing, Equipment.Key, s.repo.CreateEquipment)
}

// reconcile is the single algorithm behind all three catalog types: build the
// set of existing natural keys, filter the defaults down to the missing ones
// in their original order, and insert each missing entry one at a time. An
// empty store is just the degenerate case where every default is missing.
func reconcile[T any](
	ctx context.Context,
	defaults, existing []T,
	key func(T) string,
	insert func(context.Context, T) (string, error),
) ([]T, error) {
	existingKeys := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		existingKeys[key(item)] = struct{}{}
	}

	var inserted []T
	var errs []error
	for _, item := range defaults {
		if _, ok := existingKeys[key(item)]; ok {
			continue
		}
		if _, err := insert(ctx, item); err != nil {
			errs = append(errs, fmt.Errorf("insert %q: %w", key(item), err))
			continue
		}
		inserted = append(inserted, item)
	}
	return inserted, errors.Join(errs...)
}
