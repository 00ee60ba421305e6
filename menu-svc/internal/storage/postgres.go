package storage

import (
	"context"
	"database/sql"
	"errors"

	"menurank/menu-svc/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the postgres SQLSTATE for a unique index conflict.
const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func mapWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateItem
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (restaurant_ref, name, description, category, customer_sentiment, mention_frequency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		item.RestaurantRef, item.Name, item.Description, item.Category, item.CustomerSentiment, item.MentionFrequency,
	).Scan(&item.ID, &item.CreatedAt)
	return mapWriteError(err)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantRef string) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_ref, name, COALESCE(description, ''), COALESCE(category, 'main'),
			COALESCE(customer_sentiment, 'absent'), COALESCE(mention_frequency, 0), created_at
		FROM menu_items
		WHERE restaurant_ref = $1
		ORDER BY category, name`, restaurantRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantRef, &item.Name, &item.Description, &item.Category,
			&item.CustomerSentiment, &item.MentionFrequency, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, restaurantRef string, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_ref, name, COALESCE(description, ''), COALESCE(category, 'main'),
			COALESCE(customer_sentiment, 'absent'), COALESCE(mention_frequency, 0), created_at
		FROM menu_items
		WHERE restaurant_ref = $1 AND id = $2`, restaurantRef, id).
		Scan(&item.ID, &item.RestaurantRef, &item.Name, &item.Description, &item.Category,
			&item.CustomerSentiment, &item.MentionFrequency, &item.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, category = $3, customer_sentiment = $4, mention_frequency = $5
		WHERE restaurant_ref = $6 AND id = $7
		RETURNING created_at`,
		item.Name, item.Description, item.Category, item.CustomerSentiment, item.MentionFrequency,
		item.RestaurantRef, item.ID,
	).Scan(&item.CreatedAt)
	return mapWriteError(err)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, restaurantRef string, id int) (int64, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE restaurant_ref = $1 AND id = $2", restaurantRef, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpsertMenuItems writes a menu in one transaction. Existing rows keep their
// aggregated sentiment and mention frequency.
func (r *PostgresRepository) UpsertMenuItems(ctx context.Context, restaurantRef string, items []domain.MenuItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO menu_items (restaurant_ref, name, description, category, customer_sentiment, mention_frequency)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (restaurant_ref, (LOWER(name)))
		DO UPDATE SET description = EXCLUDED.description, category = EXCLUDED.category`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, restaurantRef, item.Name, item.Description, item.Category,
			item.CustomerSentiment, item.MentionFrequency); err != nil {
			return err
		}
	}
	return tx.Commit()
}
