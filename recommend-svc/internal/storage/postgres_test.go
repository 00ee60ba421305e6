package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"menurank/recommend-svc/internal/domain"

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

func TestPostgresRepository_ListMenuItems(t *testing.T) {
	repo, mock := setupTestDB(t)
	rows := sqlmock.NewRows([]string{"name", "description", "category", "customer_sentiment", "mention_frequency"}).
		AddRow("Paneer Makhani", "Cottage cheese in tomato gravy", "Main", "positive", 4).
		AddRow("Mango Lassi", "", "drink", "", 0)
	mock.ExpectQuery("SELECT DISTINCT ON \\(LOWER\\(name\\)\\)").
		WithArgs("R1").
		WillReturnRows(rows)

	got, err := repo.ListMenuItems(context.Background(), domain.Venue{PlaceID: "R1", Name: "Curry House"})

	require.NoError(t, err)
	assert.Equal(t, []domain.MenuItemCandidate{
		{Name: "Paneer Makhani", Description: "Cottage cheese in tomato gravy", Category: domain.CategoryMain, CustomerSentiment: domain.SentimentPositive, MentionFrequency: 4},
		{Name: "Mango Lassi", Category: domain.CategoryMain, CustomerSentiment: domain.SentimentAbsent},
	}, got)
}

func TestPostgresRepository_ListMenuItemsByName(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("FROM menu_items").
		WithArgs("Curry House").
		WillReturnRows(sqlmock.NewRows([]string{"name", "description", "category", "customer_sentiment", "mention_frequency"}))

	got, err := repo.ListMenuItems(context.Background(), domain.Venue{Name: "Curry House"})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostgresRepository_ListMenuItemsError(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("FROM menu_items").WithArgs("R1").WillReturnError(errors.New("relation does not exist"))

	_, err := repo.ListMenuItems(context.Background(), domain.Venue{PlaceID: "R1"})

	assert.Error(t, err)
}

func TestPostgresRepository_Favorites(t *testing.T) {
	repo, mock := setupTestDB(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO favorite_dishes").
		WithArgs("u1", "Butter Chicken", "R1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, created))
	mock.ExpectQuery("SELECT id, user_id, dish_name").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "dish_name", "restaurant_ref", "created_at"}).
			AddRow(7, "u1", "Butter Chicken", "R1", created))
	mock.ExpectExec("DELETE FROM favorite_dishes").
		WithArgs(7, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	fav := &domain.FavoriteDish{UserID: "u1", DishName: "Butter Chicken", RestaurantRef: "R1"}
	require.NoError(t, repo.AddFavorite(context.Background(), fav))
	assert.Equal(t, 7, fav.ID)
	assert.Equal(t, created, fav.CreatedAt)

	list, err := repo.ListFavorites(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.FavoriteDish{*fav}, list)

	affected, err := repo.DeleteFavorite(context.Background(), "u1", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}
