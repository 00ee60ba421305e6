package storage

import (
	"context"
	"database/sql"
	"math"

	"menurank/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

// menuCacheKey matches the snapshot key recommend-svc reads.
func menuCacheKey(restaurantRef string) string {
	return "menu:" + restaurantRef
}

// RefreshDishStats recomputes a dish's sentiment and mention frequency from
// every stored rating and writes them onto its menu_items row.
func (s *Store) RefreshDishStats(ctx context.Context, restaurantRef, dishName string) (domain.DishStats, error) {
	stats := domain.DishStats{RestaurantRef: restaurantRef, DishName: dishName}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(rating::numeric), 0), COUNT(*)
		FROM dish_ratings
		WHERE restaurant_ref = $1 AND LOWER(dish_name) = LOWER($2)
	`, restaurantRef, dishName).Scan(&stats.AverageRating, &stats.RatingCount); err != nil {
		return stats, err
	}
	stats.AverageRating = math.Round(stats.AverageRating*100) / 100
	stats.Sentiment = domain.SentimentFor(stats.AverageRating, stats.RatingCount)

	_, err := s.db.ExecContext(ctx, `
		UPDATE menu_items
		SET customer_sentiment = $1, mention_frequency = $2
		WHERE restaurant_ref = $3 AND LOWER(name) = LOWER($4)
	`, stats.Sentiment, stats.RatingCount, restaurantRef, dishName)
	return stats, err
}

func (s *Store) InvalidateMenu(ctx context.Context, restaurantRef string) error {
	return s.rdb.Del(ctx, menuCacheKey(restaurantRef)).Err()
}

func (s *Store) PromoteFavorite(ctx context.Context, userID, dishName, restaurantRef string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorite_dishes (user_id, dish_name, restaurant_ref)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, dish_name, restaurant_ref) DO NOTHING
	`, userID, dishName, restaurantRef)
	return err
}
