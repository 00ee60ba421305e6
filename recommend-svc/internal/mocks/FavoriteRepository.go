package mocks

import (
	context "context"

	domain "menurank/recommend-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// FavoriteRepository is a mock type for the FavoriteRepository type
type FavoriteRepository struct {
	mock.Mock
}

// AddFavorite provides a mock function with given fields: ctx, fav
func (_m *FavoriteRepository) AddFavorite(ctx context.Context, fav *domain.FavoriteDish) error {
	ret := _m.Called(ctx, fav)
	return ret.Error(0)
}

// DeleteFavorite provides a mock function with given fields: ctx, userID, id
func (_m *FavoriteRepository) DeleteFavorite(ctx context.Context, userID string, id int) (int64, error) {
	ret := _m.Called(ctx, userID, id)
	return ret.Get(0).(int64), ret.Error(1)
}

// ListFavorites provides a mock function with given fields: ctx, userID
func (_m *FavoriteRepository) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteDish, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.FavoriteDish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.FavoriteDish)
	}

	return r0, ret.Error(1)
}

// NewFavoriteRepository creates a new instance of FavoriteRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewFavoriteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *FavoriteRepository {
	m := &FavoriteRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
