package service

import (
	"context"

	"menurank/rate-svc/internal/domain"
)

type RatingServiceInterface interface {
	CreateOrUpdate(ctx context.Context, rating *domain.Rating) error
	ListDishRatings(ctx context.Context, restaurantRef, dishName string) ([]domain.Rating, error)
	Distribution(ctx context.Context, restaurantRef string) (map[string]int, error)
}

type RatingRepository interface {
	DishOnMenu(ctx context.Context, restaurantRef, dishName string) (bool, error)
	GetExistingRatingID(ctx context.Context, rating *domain.Rating) (int, error)
	InsertRating(ctx context.Context, rating *domain.Rating) error
	UpdateRating(ctx context.Context, id int, rating *domain.Rating) error
	ListDishRatings(ctx context.Context, restaurantRef, dishName string) ([]domain.Rating, error)
	RatingDistribution(ctx context.Context, restaurantRef string) (map[string]int, error)
}

type RatingCache interface {
	RatingMarkerKey(rating *domain.Rating) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type RatingPublisher interface {
	PublishRating(ctx context.Context, event domain.RatingEvent) error
}

var _ RatingServiceInterface = (*RatingService)(nil)
