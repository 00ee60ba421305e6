package storage

import (
	"context"
	"database/sql"
	"strconv"

	"menurank/rate-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) DishOnMenu(ctx context.Context, restaurantRef, dishName string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM menu_items
			WHERE restaurant_ref = $1 AND LOWER(name) = LOWER($2)
		)
	`, restaurantRef, dishName).Scan(&exists)
	return exists, err
}

// GetExistingRatingID returns sql.ErrNoRows when the diner never rated the dish.
func (r *PostgresRepository) GetExistingRatingID(ctx context.Context, rating *domain.Rating) (int, error) {
	var id int
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM dish_ratings
		WHERE restaurant_ref = $1 AND LOWER(dish_name) = LOWER($2) AND user_id = $3
	`, rating.RestaurantRef, rating.DishName, rating.UserID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) InsertRating(ctx context.Context, rating *domain.Rating) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO dish_ratings (restaurant_ref, dish_name, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, rating.RestaurantRef, rating.DishName, rating.UserID, rating.Rating, rating.Comment).
		Scan(&rating.ID, &rating.CreatedAt)
}

func (r *PostgresRepository) UpdateRating(ctx context.Context, id int, rating *domain.Rating) error {
	return r.DB.QueryRowContext(ctx, `
		UPDATE dish_ratings
		SET rating = $1, comment = $2, created_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING created_at
	`, rating.Rating, rating.Comment, id).Scan(&rating.CreatedAt)
}

func (r *PostgresRepository) ListDishRatings(ctx context.Context, restaurantRef, dishName string) ([]domain.Rating, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_ref, dish_name, user_id, rating, COALESCE(comment, ''), created_at
		FROM dish_ratings
		WHERE restaurant_ref = $1 AND LOWER(dish_name) = LOWER($2)
		ORDER BY created_at DESC
	`, restaurantRef, dishName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.RestaurantRef, &rt.DishName, &rt.UserID, &rt.Rating, &rt.Comment, &rt.CreatedAt); err != nil {
			continue
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

// RatingDistribution counts a venue's ratings per star, always reporting all five buckets.
func (r *PostgresRepository) RatingDistribution(ctx context.Context, restaurantRef string) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rating, COUNT(*) as count
		FROM dish_ratings
		WHERE restaurant_ref = $1
		GROUP BY rating
		ORDER BY rating
	`, restaurantRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			continue
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, rows.Err()
}
