package service

import (
	"context"
	"fmt"
	"strings"

	"menurank/recommend-svc/internal/domain"
)

type FavoriteService struct {
	repository FavoriteRepository
}

func NewFavoriteService(repository FavoriteRepository) *FavoriteService {
	return &FavoriteService{repository: repository}
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]domain.FavoriteDish, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUserRequired
	}
	favs, err := s.repository.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favs, nil
}

func (s *FavoriteService) Add(ctx context.Context, fav *domain.FavoriteDish) error {
	if strings.TrimSpace(fav.UserID) == "" {
		return domain.ErrUserRequired
	}
	fav.DishName = strings.TrimSpace(fav.DishName)
	fav.RestaurantRef = strings.TrimSpace(fav.RestaurantRef)
	if fav.DishName == "" {
		return domain.ErrDishRequired
	}
	if err := s.repository.AddFavorite(ctx, fav); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (s *FavoriteService) Delete(ctx context.Context, userID string, id int) error {
	affected, err := s.repository.DeleteFavorite(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
