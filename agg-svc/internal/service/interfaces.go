package service

import (
	"context"

	"menurank/agg-svc/internal/domain"
	"menurank/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RefreshDishStats(ctx context.Context, restaurantRef, dishName string) (domain.DishStats, error)
	InvalidateMenu(ctx context.Context, restaurantRef string) error
	PromoteFavorite(ctx context.Context, userID, dishName, restaurantRef string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessRating(ctx context.Context, msg domain.RatingEvent) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
)
