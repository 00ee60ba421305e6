package storage

import (
	"context"
	"database/sql"

	"menurank/recommend-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// ListMenuItems returns the venue's menu, one row per dish name.
func (r *PostgresRepository) ListMenuItems(ctx context.Context, venue domain.Venue) ([]domain.MenuItemCandidate, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT DISTINCT ON (LOWER(name)) name, COALESCE(description, ''), COALESCE(category, ''),
			COALESCE(customer_sentiment, ''), COALESCE(mention_frequency, 0)
		FROM menu_items
		WHERE restaurant_ref = $1
		ORDER BY LOWER(name), mention_frequency DESC
	`, venue.Ref())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItemCandidate
	for rows.Next() {
		var (
			item                domain.MenuItemCandidate
			category, sentiment string
		)
		if err := rows.Scan(&item.Name, &item.Description, &category, &sentiment, &item.MentionFrequency); err != nil {
			return nil, err
		}
		item.Category = domain.ParseCategory(category)
		item.CustomerSentiment = domain.ParseSentiment(sentiment)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteDish, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, dish_name, COALESCE(restaurant_ref, ''), created_at
		FROM favorite_dishes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.FavoriteDish
	for rows.Next() {
		var fav domain.FavoriteDish
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.DishName, &fav.RestaurantRef, &fav.CreatedAt); err != nil {
			continue
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

func (r *PostgresRepository) AddFavorite(ctx context.Context, fav *domain.FavoriteDish) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO favorite_dishes (user_id, dish_name, restaurant_ref)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, dish_name, restaurant_ref) DO UPDATE SET dish_name = EXCLUDED.dish_name
		RETURNING id, created_at
	`, fav.UserID, fav.DishName, fav.RestaurantRef).Scan(&fav.ID, &fav.CreatedAt)
}

func (r *PostgresRepository) DeleteFavorite(ctx context.Context, userID string, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM favorite_dishes WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
