package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"menurank/rate-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestPostgresRepository_DishOnMenu(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("R1", "pad thai").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.DishOnMenu(context.Background(), "R1", "pad thai")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPostgresRepository_GetExistingRatingID(t *testing.T) {
	rating := &domain.Rating{RestaurantRef: "R1", DishName: "Pho", UserID: "u1"}

	t.Run("found", func(t *testing.T) {
		repo, mock := setupTestDB(t)
		mock.ExpectQuery("SELECT id FROM dish_ratings").
			WithArgs("R1", "Pho", "u1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		id, err := repo.GetExistingRatingID(context.Background(), rating)

		require.NoError(t, err)
		assert.Equal(t, 42, id)
	})

	t.Run("not rated yet", func(t *testing.T) {
		repo, mock := setupTestDB(t)
		mock.ExpectQuery("SELECT id FROM dish_ratings").
			WithArgs("R1", "Pho", "u1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		id, err := repo.GetExistingRatingID(context.Background(), rating)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Zero(t, id)
	})
}

func TestPostgresRepository_InsertAndUpdateRating(t *testing.T) {
	repo, mock := setupTestDB(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	rating := &domain.Rating{RestaurantRef: "R1", DishName: "Pho", UserID: "u1", Rating: 4, Comment: "Rich broth"}

	mock.ExpectQuery("INSERT INTO dish_ratings").
		WithArgs("R1", "Pho", "u1", 4, "Rich broth").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, created))
	mock.ExpectQuery("UPDATE dish_ratings").
		WithArgs(2, "Broth was cold", 7).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(updated))

	require.NoError(t, repo.InsertRating(context.Background(), rating))
	assert.Equal(t, 7, rating.ID)
	assert.Equal(t, created, rating.CreatedAt)

	rating.Rating = 2
	rating.Comment = "Broth was cold"
	require.NoError(t, repo.UpdateRating(context.Background(), rating.ID, rating))
	assert.Equal(t, updated, rating.CreatedAt)
}

func TestPostgresRepository_ListDishRatings(t *testing.T) {
	repo, mock := setupTestDB(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM dish_ratings").
		WithArgs("R1", "Pho").
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_ref", "dish_name", "user_id", "rating", "comment", "created_at"}).
			AddRow(2, "R1", "Pho", "u2", 5, "", now).
			AddRow(1, "R1", "Pho", "u1", 3, "Salty", now.Add(-time.Hour)))

	got, err := repo.ListDishRatings(context.Background(), "R1", "Pho")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u2", got[0].UserID)
	assert.Equal(t, "Salty", got[1].Comment)
}

func TestPostgresRepository_RatingDistribution(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("GROUP BY rating").
		WithArgs("R1").
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).AddRow(4, 3).AddRow(5, 9))

	got, err := repo.RatingDistribution(context.Background(), "R1")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 3, "5": 9}, got)
}
