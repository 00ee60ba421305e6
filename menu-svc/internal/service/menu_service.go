package service

import (
	"context"
	"fmt"
	"strings"

	"menurank/logging"
	"menurank/menu-svc/internal/domain"
)

type MenuService struct {
	repo  MenuRepository
	cache MenuCache
}

func NewMenuService(repo MenuRepository, cache MenuCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	item.Normalize()
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx, item.RestaurantRef)
	return nil
}

func (s *MenuService) List(ctx context.Context, restaurantRef string) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, restaurantRef)
}

func (s *MenuService) Get(ctx context.Context, restaurantRef string, id int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, restaurantRef, id)
}

func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	item.Normalize()
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx, item.RestaurantRef)
	return nil
}

func (s *MenuService) Delete(ctx context.Context, restaurantRef string, id int) error {
	rows, err := s.repo.DeleteMenuItem(ctx, restaurantRef, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	s.invalidate(ctx, restaurantRef)
	return nil
}

// Import upserts a whole menu for one venue. Later entries win over earlier
// ones with the same name; stored sentiment and mention counts are kept.
func (s *MenuService) Import(ctx context.Context, restaurantRef string, items []domain.MenuItem) (int, error) {
	restaurantRef = strings.TrimSpace(restaurantRef)
	byName := make(map[string]int, len(items))
	unique := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		item.RestaurantRef = restaurantRef
		item.Normalize()
		if item.Name == "" {
			continue
		}
		key := strings.ToLower(item.Name)
		if i, ok := byName[key]; ok {
			unique[i] = item
			continue
		}
		byName[key] = len(unique)
		unique = append(unique, item)
	}
	if len(unique) == 0 {
		return 0, nil
	}

	if err := s.repo.UpsertMenuItems(ctx, restaurantRef, unique); err != nil {
		return 0, fmt.Errorf("failed to import menu: %w", err)
	}
	s.invalidate(ctx, restaurantRef)

	logging.Ctx(ctx).Info().Str("restaurant_ref", restaurantRef).Int("items", len(unique)).Msg("menu imported")
	return len(unique), nil
}

// invalidate never fails the write; a stale snapshot ages out with its TTL.
func (s *MenuService) invalidate(ctx context.Context, restaurantRef string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, restaurantRef); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("restaurant_ref", restaurantRef).Msg("failed to invalidate menu snapshot")
	}
}
