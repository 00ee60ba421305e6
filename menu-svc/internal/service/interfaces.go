package service

import (
	"context"

	"menurank/menu-svc/internal/domain"
)

type MenuRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, restaurantRef string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantRef string, id int) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, restaurantRef string, id int) (int64, error)
	UpsertMenuItems(ctx context.Context, restaurantRef string, items []domain.MenuItem) error
}

// MenuCache drops the recommender's cached snapshot of a venue's menu.
type MenuCache interface {
	Invalidate(ctx context.Context, restaurantRef string) error
}

type MenuServiceInterface interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	List(ctx context.Context, restaurantRef string) ([]domain.MenuItem, error)
	Get(ctx context.Context, restaurantRef string, id int) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, restaurantRef string, id int) error
	Import(ctx context.Context, restaurantRef string, items []domain.MenuItem) (int, error)
}

var _ MenuServiceInterface = (*MenuService)(nil)
