package preparations

import (
	"context"

	"go.uber.org/zap"

	"github.com/coffeeist/go-coffeeist-backend/internal/cache"
	"github.com/coffeeist/go-coffeeist-backend/internal/users"
)

// Service layers the denormalized preparationsCount and inventory cache
// invalidation on top of the repository. Counter updates are independent
// remote calls; a failed increment leaves the count stale until the next
// maintenance pass, it never rolls back the preparation write.
type Service struct {
	repo  *Repository
	users *users.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewService(repo *Repository, userRepo *users.Repository, c *cache.Cache, log *zap.Logger) *Service {
	return &Service{repo: repo, users: userRepo, cache: c, log: log}
}

func (s *Service) Create(ctx context.Context, p *Preparation) (string, error) {
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return "", err
	}

	if err := s.users.Increment(ctx, p.UserID, users.FieldPreparationsCount, 1); err != nil {
		s.log.Warn("preparationsCount not incremented", zap.String("uid", p.UserID), zap.Error(err))
	}
	s.invalidate(ctx, p.UserID)
	return id, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Preparation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string, limit int) ([]Preparation, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *Service) ListPublic(ctx context.Context, limit int) ([]Preparation, error) {
	return s.repo.ListPublic(ctx, limit)
}

func (s *Service) Update(ctx context.Context, p Preparation) error {
	if err := s.authorize(ctx, p.UserID, p.ID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, p.UserID)
	return nil
}

// Delete removes a preparation owned by userID. The ownership read doubles as
// an existence check so the decrement below never fires for an id that was
// never counted.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.authorize(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.users.Increment(ctx, userID, users.FieldPreparationsCount, -1); err != nil {
		s.log.Warn("preparationsCount not decremented", zap.String("uid", userID), zap.Error(err))
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *Service) authorize(ctx context.Context, userID, id string) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, cache.InventoryKeys(userID)...); err != nil {
		s.log.Warn("inventory cache not invalidated", zap.String("uid", userID), zap.Error(err))
	}
}
